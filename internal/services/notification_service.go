package services

import (
	"context"
	"fmt"

	"jobboard_backend/internal/email"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
)

// lastResortRecipient is used when neither the admin list nor the system
// email is configured. Update this if you don't set env vars.
const lastResortRecipient = "ed+bgs@theblueocean.com"

// NotifyConfig holds the addressing and link-building settings for admin
// notices.
type NotifyConfig struct {
	AdminEmails     []string
	SystemEmail     string
	SiteURL         string
	ControlPanelURL string
}

// EntrySave describes the lifecycle state of a content save, used to decide
// whether a "created" notice should fire at all.
type EntrySave struct {
	IsNew       bool
	IsDraft     bool
	IsRevision  bool
	Propagating bool
	Canonical   bool
}

// NotificationService sends admin and poster notices. Every send is
// best-effort: transport failures are logged and swallowed so they never
// fail the operation that triggered them.
type NotificationService interface {
	ResolveRecipients() []string
	NotifyUserActivated(ctx context.Context, user *models.User)
	NotifyOrganizationCreated(ctx context.Context, org *models.Organization, save EntrySave)
	NotifyJobPublished(ctx context.Context, job *models.JobPosting, amount, durationMonths int, paymentMethod models.PaymentType, gatewayRef string)
}

type notificationService struct {
	mailer email.Mailer
	cfg    NotifyConfig
}

func NewNotificationService(mailer email.Mailer, cfg NotifyConfig) NotificationService {
	return &notificationService{mailer: mailer, cfg: cfg}
}

// ResolveRecipients returns the admin recipient list: the configured list if
// any, else the system email, else a hardcoded last resort. Never empty.
func (s *notificationService) ResolveRecipients() []string {
	if len(s.cfg.AdminEmails) > 0 {
		return s.cfg.AdminEmails
	}
	if s.cfg.SystemEmail != "" {
		return []string{s.cfg.SystemEmail}
	}
	return []string{lastResortRecipient}
}

func (s *notificationService) NotifyUserActivated(ctx context.Context, user *models.User) {
	body, err := email.RenderUserActivated(email.UserActivatedData{
		Email:     user.Email,
		FullName:  user.FullName,
		UserCPURL: fmt.Sprintf("%s/users/%s", s.cfg.ControlPanelURL, user.ID),
	})
	if err != nil {
		logger.CtxWithError(ctx, "Failed to render user-activated notice", err, "user_id", user.ID)
		return
	}

	s.send(ctx, &email.Message{
		To:       s.ResolveRecipients(),
		Subject:  "New user activated: " + user.Email,
		HTMLBody: body,
	}, "user_activated", user.ID)
}

// ShouldNotifyOrganizationCreated filters out the save events that are not a
// genuine first creation of the canonical entry.
func ShouldNotifyOrganizationCreated(save EntrySave) bool {
	return save.IsNew && save.Canonical && !save.IsDraft && !save.IsRevision && !save.Propagating
}

func (s *notificationService) NotifyOrganizationCreated(ctx context.Context, org *models.Organization, save EntrySave) {
	if !ShouldNotifyOrganizationCreated(save) {
		return
	}

	body, err := email.RenderOrganizationCreated(email.OrganizationCreatedData{
		Title:     org.Title,
		PublicURL: fmt.Sprintf("%s/organizations/%s", s.cfg.SiteURL, org.Slug),
		CPURL:     fmt.Sprintf("%s/entries/organizations/%s", s.cfg.ControlPanelURL, org.ID),
	})
	if err != nil {
		logger.CtxWithError(ctx, "Failed to render organization-created notice", err, "organization_id", org.ID)
		return
	}

	s.send(ctx, &email.Message{
		To:       s.ResolveRecipients(),
		Subject:  "New organization added: " + org.Title,
		HTMLBody: body,
	}, "organization_created", org.ID)
}

// NotifyJobPublished sends two independent notices: one to the admins (with
// an invoice ACTION REQUIRED block when applicable) and one confirmation to
// the poster. Either can fail without affecting the other.
func (s *notificationService) NotifyJobPublished(ctx context.Context, job *models.JobPosting, amount, durationMonths int, paymentMethod models.PaymentType, gatewayRef string) {
	invoice := paymentMethod == models.PaymentTypeInvoice
	jobURL := fmt.Sprintf("%s/jobs/%s", s.cfg.SiteURL, job.Slug)

	var schoolTitle, orgTitle string
	if job.School != nil {
		schoolTitle = job.School.Title
	}
	if job.Organization != nil {
		orgTitle = job.Organization.Title
	}

	var posterName, posterEmail string
	if job.Author != nil {
		posterName = job.Author.FullName
		posterEmail = job.Author.Email
	}

	adminBody, err := email.RenderJobPublishedAdmin(email.JobPublishedAdminData{
		Title:             job.Title,
		SchoolTitle:       schoolTitle,
		OrganizationTitle: orgTitle,
		PosterName:        posterName,
		PosterEmail:       posterEmail,
		DurationMonths:    durationMonths,
		Amount:            amount,
		PaymentMethod:     string(paymentMethod),
		Invoice:           invoice,
		JobURL:            jobURL,
		CPURL:             fmt.Sprintf("%s/entries/jobs/%s", s.cfg.ControlPanelURL, job.ID),
		GatewayRef:        gatewayRef,
	})
	if err != nil {
		logger.CtxWithError(ctx, "Failed to render admin job notice", err, "job_id", job.ID)
	} else {
		subject := "New job posting: " + job.Title
		if invoice {
			subject = "Invoice request - new job posting: " + job.Title
		}
		s.send(ctx, &email.Message{
			To:       s.ResolveRecipients(),
			Subject:  subject,
			HTMLBody: adminBody,
		}, "job_published_admin", job.ID)
	}

	if posterEmail == "" {
		logger.CtxWarn(ctx, "Job has no author email, skipping poster confirmation", "job_id", job.ID)
		return
	}

	posterBody, err := email.RenderJobPublishedPoster(email.JobPublishedPosterData{
		Title:          job.Title,
		DurationMonths: durationMonths,
		Amount:         amount,
		Invoice:        invoice,
		JobURL:         jobURL,
	})
	if err != nil {
		logger.CtxWithError(ctx, "Failed to render poster job notice", err, "job_id", job.ID)
		return
	}

	s.send(ctx, &email.Message{
		To:       []string{posterEmail},
		Subject:  "Your job posting is live: " + job.Title,
		HTMLBody: posterBody,
	}, "job_published_poster", job.ID)
}

func (s *notificationService) send(ctx context.Context, m *email.Message, notice, subjectID string) {
	if err := s.mailer.Send(m); err != nil {
		logger.CtxWithError(ctx, "Failed to send notification email", err,
			"notice", notice,
			"subject_id", subjectID,
			"recipients", len(m.To),
		)
		return
	}
	logger.CtxInfo(ctx, "Notification email sent", "notice", notice, "subject_id", subjectID)
}
