package services

import (
	"context"
	"time"

	"jobboard_backend/internal/email"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/payments"
	"jobboard_backend/internal/repositories"
)

// In-memory test doubles for the repository and transport interfaces.

type fakeJobRepo struct {
	jobs      map[string]*models.JobPosting
	saveErr   error
	saveCalls int
}

func newFakeJobRepo(jobs ...*models.JobPosting) *fakeJobRepo {
	r := &fakeJobRepo{jobs: make(map[string]*models.JobPosting)}
	for _, j := range jobs {
		r.jobs[j.ID] = j
	}
	return r
}

func (r *fakeJobRepo) FindByID(id string, includeDisabled bool) (*models.JobPosting, error) {
	job, ok := r.jobs[id]
	if !ok || (!includeDisabled && !job.Enabled) {
		return nil, repositories.ErrJobNotFound
	}
	return job, nil
}

func (r *fakeJobRepo) Create(job *models.JobPosting) error {
	if job.ID == "" {
		job.ID = "job-" + job.Slug
	}
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) Save(job *models.JobPosting) error {
	r.saveCalls++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) SlugExists(slug string) (bool, error) {
	for _, j := range r.jobs {
		if j.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeJobRepo) FindByAuthor(authorID string, limit, offset int) ([]models.JobPosting, error) {
	var out []models.JobPosting
	for _, j := range r.jobs {
		if j.AuthorID == authorID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) FindWithoutOrganization(limit int) ([]models.JobPosting, error) {
	var out []models.JobPosting
	for _, j := range r.jobs {
		if j.OrganizationID == nil {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) CountWithoutOrganization() (int64, error) {
	jobs, _ := r.FindWithoutOrganization(0)
	return int64(len(jobs)), nil
}

func (r *fakeJobRepo) DisableExpired(now time.Time) (int64, error) {
	var n int64
	for _, j := range r.jobs {
		if j.Enabled && j.ExpiryDate != nil && j.ExpiryDate.Before(now) {
			j.Enabled = false
			n++
		}
	}
	return n, nil
}

type fakePaymentRepo struct {
	created []*models.PaymentTransaction
}

func (r *fakePaymentRepo) Create(tx *models.PaymentTransaction) error {
	r.created = append(r.created, tx)
	return nil
}

func (r *fakePaymentRepo) FindByJob(jobID string) ([]models.PaymentTransaction, error) {
	var out []models.PaymentTransaction
	for _, tx := range r.created {
		if tx.JobID == jobID {
			out = append(out, *tx)
		}
	}
	return out, nil
}

type fakeGateway struct {
	intent     *payments.Intent
	intentErr  error
	session    *payments.CheckoutSession
	sessionErr error

	lastIntentParams payments.CreateIntentParams
	lastConfirmedID  string
}

func (g *fakeGateway) CreateIntent(_ context.Context, p payments.CreateIntentParams) (*payments.Intent, error) {
	g.lastIntentParams = p
	if g.intentErr != nil {
		return nil, g.intentErr
	}
	return g.intent, nil
}

func (g *fakeGateway) ConfirmIntent(_ context.Context, intentID string) (*payments.Intent, error) {
	g.lastConfirmedID = intentID
	if g.intentErr != nil {
		return nil, g.intentErr
	}
	return g.intent, nil
}

func (g *fakeGateway) GetCheckoutSession(_ context.Context, _ string) (*payments.CheckoutSession, error) {
	if g.sessionErr != nil {
		return nil, g.sessionErr
	}
	return g.session, nil
}

type fakeMailer struct {
	sent    []*email.Message
	sendErr error
}

func (m *fakeMailer) Send(msg *email.Message) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, msg)
	return nil
}

type jobNotice struct {
	jobID          string
	amount         int
	durationMonths int
	method         models.PaymentType
}

type fakeNotifier struct {
	jobNotices []jobNotice
	userIDs    []string
	orgIDs     []string
}

func (n *fakeNotifier) ResolveRecipients() []string { return []string{"admin@test.local"} }

func (n *fakeNotifier) NotifyUserActivated(_ context.Context, user *models.User) {
	n.userIDs = append(n.userIDs, user.ID)
}

func (n *fakeNotifier) NotifyOrganizationCreated(_ context.Context, org *models.Organization, save EntrySave) {
	if ShouldNotifyOrganizationCreated(save) {
		n.orgIDs = append(n.orgIDs, org.ID)
	}
}

func (n *fakeNotifier) NotifyJobPublished(_ context.Context, job *models.JobPosting, amount, durationMonths int, method models.PaymentType, _ string) {
	n.jobNotices = append(n.jobNotices, jobNotice{
		jobID:          job.ID,
		amount:         amount,
		durationMonths: durationMonths,
		method:         method,
	})
}

type fakeUserRepo struct {
	users  map[string]*models.User
	groups map[string]*models.UserGroup

	assignedGroups map[string][]models.UserGroup
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{
		users:          make(map[string]*models.User),
		groups:         make(map[string]*models.UserGroup),
		assignedGroups: make(map[string][]models.UserGroup),
	}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(emailAddr string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == emailAddr {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(u *models.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if u.ID == "" {
		u.ID = "user-" + u.Email
	}
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Update(u *models.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) UpdateStatus(userID string, status models.UserStatus) error {
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.Status = status
	return nil
}

func (r *fakeUserRepo) VerifyUser(userID string) error {
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.IsVerified = true
	u.Status = models.UserStatusActive
	u.VerificationToken = ""
	return nil
}

func (r *fakeUserRepo) FindByVerificationToken(token string) (*models.User, error) {
	for _, u := range r.users {
		if u.VerificationToken != "" && u.VerificationToken == token {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) SetOrganization(userID, organizationID string) error {
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.OrganizationID = &organizationID
	return nil
}

func (r *fakeUserRepo) FindGroupByHandle(handle string) (*models.UserGroup, error) {
	g, ok := r.groups[handle]
	if !ok {
		return nil, repositories.ErrGroupNotFound
	}
	return g, nil
}

func (r *fakeUserRepo) CreateGroup(g *models.UserGroup) error {
	if g.ID == "" {
		g.ID = "group-" + g.Handle
	}
	r.groups[g.Handle] = g
	return nil
}

func (r *fakeUserRepo) GetUserGroups(userID string) ([]models.UserGroup, error) {
	if _, ok := r.users[userID]; !ok {
		return nil, repositories.ErrUserNotFound
	}
	return r.assignedGroups[userID], nil
}

func (r *fakeUserRepo) AssignUserToGroups(userID string, groups []models.UserGroup) error {
	r.assignedGroups[userID] = groups
	return nil
}

type fakeSchoolRepo struct {
	schools map[string]*models.School
}

func (r *fakeSchoolRepo) FindByID(id string) (*models.School, error) {
	s, ok := r.schools[id]
	if !ok {
		return nil, repositories.ErrSchoolNotFound
	}
	return s, nil
}

func (r *fakeSchoolRepo) FindAll() ([]models.School, error) { return nil, nil }

func (r *fakeSchoolRepo) Create(s *models.School) error {
	r.schools[s.ID] = s
	return nil
}

type fakeRegionRepo struct {
	regions map[string]*models.RegionCategory
}

func newFakeRegionRepo(slugs ...string) *fakeRegionRepo {
	r := &fakeRegionRepo{regions: make(map[string]*models.RegionCategory)}
	for _, slug := range slugs {
		r.regions[slug] = &models.RegionCategory{
			BaseModel: models.BaseModel{ID: "region-" + slug},
			Slug:      slug,
			Title:     slug,
		}
	}
	return r
}

func (r *fakeRegionRepo) FindBySlug(slug string) (*models.RegionCategory, error) {
	reg, ok := r.regions[slug]
	if !ok {
		return nil, repositories.ErrRegionNotFound
	}
	return reg, nil
}

func (r *fakeRegionRepo) FindAll() ([]models.RegionCategory, error) { return nil, nil }

func (r *fakeRegionRepo) Upsert(reg *models.RegionCategory) error {
	r.regions[reg.Slug] = reg
	return nil
}

type fakeOrgRepo struct {
	orgs map[string]*models.Organization
}

func newFakeOrgRepo() *fakeOrgRepo {
	return &fakeOrgRepo{orgs: make(map[string]*models.Organization)}
}

func (r *fakeOrgRepo) FindByID(id string) (*models.Organization, error) {
	o, ok := r.orgs[id]
	if !ok {
		return nil, repositories.ErrOrganizationNotFound
	}
	return o, nil
}

func (r *fakeOrgRepo) FindBySlug(slug string) (*models.Organization, error) {
	for _, o := range r.orgs {
		if o.Slug == slug {
			return o, nil
		}
	}
	return nil, repositories.ErrOrganizationNotFound
}

func (r *fakeOrgRepo) FindByAuthor(authorID string) (*models.Organization, error) {
	for _, o := range r.orgs {
		if o.AuthorID != nil && *o.AuthorID == authorID {
			return o, nil
		}
	}
	return nil, repositories.ErrOrganizationNotFound
}

func (r *fakeOrgRepo) Create(o *models.Organization) error {
	if o.ID == "" {
		o.ID = "org-" + o.Slug
	}
	r.orgs[o.ID] = o
	return nil
}

func (r *fakeOrgRepo) SlugExists(slug string) (bool, error) {
	_, err := r.FindBySlug(slug)
	return err == nil, nil
}
