package email

import (
	"bytes"
	"html/template"
)

// Notice bodies are small enough to keep inline; html/template escapes the
// user-supplied values (names, titles, emails).

const baseStyle = `font-family: Arial, sans-serif; line-height: 1.6;`
const buttonStyle = `display: inline-block; padding: 10px 20px; background-color: #337ab7; color: white; text-decoration: none; border-radius: 4px;`
const greenButtonStyle = `display: inline-block; padding: 10px 20px; margin-right: 10px; background-color: #5cb85c; color: white; text-decoration: none; border-radius: 4px;`

var userActivatedTmpl = template.Must(template.New("userActivated").Parse(`<html><body style="` + baseStyle + `">
<h2 style="color: #5cb85c;">New User Activated</h2>
<p>A new user has activated their account:</p>
<table style="border-collapse: collapse; width: 100%; margin: 20px 0;">
<tr><td style="padding: 8px;"><strong>Email:</strong></td><td style="padding: 8px;">{{.Email}}</td></tr>
<tr><td style="padding: 8px;"><strong>Name:</strong></td><td style="padding: 8px;">{{.FullName}}</td></tr>
</table>
<p style="margin: 20px 0;"><a href="{{.UserCPURL}}" style="` + buttonStyle + `">View user in the control panel</a></p>
</body></html>`))

type UserActivatedData struct {
	Email     string
	FullName  string
	UserCPURL string
}

func RenderUserActivated(d UserActivatedData) (string, error) {
	return render(userActivatedTmpl, d)
}

var organizationCreatedTmpl = template.Must(template.New("organizationCreated").Parse(`<html><body style="` + baseStyle + `">
<h2 style="color: #5cb85c;">New Organization Added</h2>
<p>A new organization entry was created:</p>
<table style="border-collapse: collapse; width: 100%; margin: 20px 0;">
<tr><td style="padding: 8px;"><strong>Organization Name:</strong></td><td style="padding: 8px;">{{.Title}}</td></tr>
</table>
<p style="margin: 20px 0;">
{{if .PublicURL}}<a href="{{.PublicURL}}" style="` + greenButtonStyle + `">Visit public-facing organization page</a>{{end}}
<a href="{{.CPURL}}" style="` + buttonStyle + `">Edit this organization in the control panel</a>
</p>
</body></html>`))

type OrganizationCreatedData struct {
	Title     string
	PublicURL string
	CPURL     string
}

func RenderOrganizationCreated(d OrganizationCreatedData) (string, error) {
	return render(organizationCreatedTmpl, d)
}

var jobPublishedAdminTmpl = template.Must(template.New("jobPublishedAdmin").Parse(`<html><body style="` + baseStyle + `">
{{if .Invoice}}<h2 style="color: #d9534f;">Invoice Request - New Job Posting</h2>
<p>A new job posting has been submitted with invoice payment:</p>
{{else}}<h2 style="color: #5cb85c;">New Job Posting</h2>
<p>A new job posting has been created and paid:</p>
{{end}}
<table style="border-collapse: collapse; width: 100%; margin: 20px 0;">
<tr><td style="padding: 8px;"><strong>Job Title:</strong></td><td style="padding: 8px;">{{.Title}}</td></tr>
<tr><td style="padding: 8px;"><strong>School:</strong></td><td style="padding: 8px;">{{if .SchoolTitle}}{{.SchoolTitle}}{{else}}Not specified{{end}}</td></tr>
<tr><td style="padding: 8px;"><strong>Posted by Organization:</strong></td><td style="padding: 8px;">{{if .OrganizationTitle}}{{.OrganizationTitle}}{{else}}Unknown{{end}}</td></tr>
<tr><td style="padding: 8px;"><strong>Posted by User:</strong></td><td style="padding: 8px;">{{.PosterName}} ({{.PosterEmail}})</td></tr>
<tr><td style="padding: 8px;"><strong>Duration:</strong></td><td style="padding: 8px;">{{.DurationMonths}} month(s)</td></tr>
<tr><td style="padding: 8px;"><strong>Amount:</strong></td><td style="padding: 8px;">${{.Amount}}</td></tr>
<tr><td style="padding: 8px;"><strong>Payment Method:</strong></td><td style="padding: 8px;">{{.PaymentMethod}}</td></tr>
</table>
<p style="margin: 20px 0;">
{{if .JobURL}}<a href="{{.JobURL}}" style="` + greenButtonStyle + `">Visit public-facing job URL</a>{{end}}
<a href="{{.CPURL}}" style="` + buttonStyle + `">Edit this job in the control panel</a>
</p>
{{if .Invoice}}<div style="background-color: #fcf8e3; border: 2px solid #d9534f; padding: 15px; margin: 20px 0; border-radius: 4px;">
<h3 style="color: #d9534f; margin-top: 0;">ACTION REQUIRED</h3>
<p><strong>Please send an invoice for ${{.Amount}} to {{.PosterEmail}}</strong></p>
</div>
<p>The job posting is now live and will expire in {{.DurationMonths}} month(s).</p>
{{else if .GatewayRef}}<p><strong>Payment processed via Stripe</strong><br>Payment reference: {{.GatewayRef}}</p>
{{end}}
</body></html>`))

type JobPublishedAdminData struct {
	Title             string
	SchoolTitle       string
	OrganizationTitle string
	PosterName        string
	PosterEmail       string
	DurationMonths    int
	Amount            int
	PaymentMethod     string
	Invoice           bool
	JobURL            string
	CPURL             string
	GatewayRef        string
}

func RenderJobPublishedAdmin(d JobPublishedAdminData) (string, error) {
	return render(jobPublishedAdminTmpl, d)
}

var jobPublishedPosterTmpl = template.Must(template.New("jobPublishedPoster").Parse(`<html><body style="` + baseStyle + `">
<h2 style="color: #5cb85c;">Your job posting is live</h2>
<p>Thank you! Your posting <strong>{{.Title}}</strong> has been published and will run for {{.DurationMonths}} month(s).</p>
{{if .Invoice}}<p>An invoice for ${{.Amount}} will soon be sent to your email from a member of our staff.</p>
{{else}}<p>Your card was charged ${{.Amount}}.</p>
{{end}}
{{if .JobURL}}<p style="margin: 20px 0;"><a href="{{.JobURL}}" style="` + greenButtonStyle + `">View your job posting</a></p>{{end}}
</body></html>`))

type JobPublishedPosterData struct {
	Title          string
	DurationMonths int
	Amount         int
	Invoice        bool
	JobURL         string
}

func RenderJobPublishedPoster(d JobPublishedPosterData) (string, error) {
	return render(jobPublishedPosterTmpl, d)
}

func render(t *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
