package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/dto"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/session"
)

func newTestJobService(jobRepo *fakeJobRepo, userRepo *fakeUserRepo, store session.Store) (JobService, *fakeSchoolRepo, *fakeRegionRepo) {
	schoolRepo := &fakeSchoolRepo{schools: map[string]*models.School{
		"school-1": {
			BaseModel: models.BaseModel{ID: "school-1"},
			Title:     "St. Mark's School",
			Slug:      "st-marks",
		},
	}}
	regionRepo := newFakeRegionRepo("tri-state-ny-nj-pa", "international")
	return NewJobService(jobRepo, userRepo, schoolRepo, regionRepo, store), schoolRepo, regionRepo
}

func TestCreateJob_SlugRegionAndStash(t *testing.T) {
	ctx := context.Background()
	jobRepo := newFakeJobRepo()
	userRepo := newFakeUserRepo(&models.User{BaseModel: models.BaseModel{ID: "u1"}})
	store := session.NewMemoryStore()
	svc, _, _ := newTestJobService(jobRepo, userRepo, store)

	resp, err := svc.CreateJob(ctx, "u1", &dto.CreateJobRequest{
		Title:    "Choir Director!",
		Body:     "Lead our choir.",
		SchoolID: "school-1",
		Country:  string(models.CountryUnitedStates),
		State:    "NY",
	})
	require.NoError(t, err)

	assert.Equal(t, "st-marks_choir-director", resp.Slug)
	assert.Equal(t, "tri-state-ny-nj-pa", resp.Region)
	assert.False(t, resp.Enabled)
	assert.False(t, resp.Paid)

	// Payment step finds the posting via the session stash
	val, err := store.Get(ctx, "u1", session.KeyPendingJob)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, val)
}

func TestCreateJob_SlugCollisionGetsCounter(t *testing.T) {
	ctx := context.Background()
	jobRepo := newFakeJobRepo(&models.JobPosting{
		BaseModel: models.BaseModel{ID: "existing"},
		Slug:      "st-marks_choir-director",
		AuthorID:  "other",
	})
	userRepo := newFakeUserRepo(&models.User{BaseModel: models.BaseModel{ID: "u1"}})
	svc, _, _ := newTestJobService(jobRepo, userRepo, session.NewMemoryStore())

	resp, err := svc.CreateJob(ctx, "u1", &dto.CreateJobRequest{
		Title:    "Choir Director",
		Body:     "x",
		SchoolID: "school-1",
		Country:  string(models.CountryUnitedStates),
		State:    "NY",
	})
	require.NoError(t, err)
	assert.Equal(t, "st-marks_choir-director-2", resp.Slug)
}

func TestCreateJob_InternationalRegion(t *testing.T) {
	userRepo := newFakeUserRepo(&models.User{BaseModel: models.BaseModel{ID: "u1"}})
	svc, _, _ := newTestJobService(newFakeJobRepo(), userRepo, session.NewMemoryStore())

	resp, err := svc.CreateJob(context.Background(), "u1", &dto.CreateJobRequest{
		Title:   "Organist",
		Body:    "x",
		Country: string(models.CountryInternational),
	})
	require.NoError(t, err)
	assert.Equal(t, "international", resp.Region)
}

func TestCreateJob_MissingRegionCategoryIsSkipped(t *testing.T) {
	ctx := context.Background()
	jobRepo := newFakeJobRepo()
	userRepo := newFakeUserRepo(&models.User{BaseModel: models.BaseModel{ID: "u1"}})
	store := session.NewMemoryStore()
	svc, _, regionRepo := newTestJobService(jobRepo, userRepo, store)
	delete(regionRepo.regions, "tri-state-ny-nj-pa")

	resp, err := svc.CreateJob(ctx, "u1", &dto.CreateJobRequest{
		Title:   "Organist",
		Body:    "x",
		Country: string(models.CountryUnitedStates),
		State:   "NY",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Region)
}

func TestCreateJob_DefaultsToUsersOrganization(t *testing.T) {
	orgID := "org-1"
	userRepo := newFakeUserRepo(&models.User{
		BaseModel:      models.BaseModel{ID: "u1"},
		OrganizationID: &orgID,
	})
	jobRepo := newFakeJobRepo()
	svc, _, _ := newTestJobService(jobRepo, userRepo, session.NewMemoryStore())

	resp, err := svc.CreateJob(context.Background(), "u1", &dto.CreateJobRequest{
		Title:   "Organist",
		Body:    "x",
		Country: string(models.CountryInternational),
	})
	require.NoError(t, err)

	job := jobRepo.jobs[resp.ID]
	require.NotNil(t, job.OrganizationID)
	assert.Equal(t, orgID, *job.OrganizationID)
}

func TestCreateJob_DraftSkipsStash(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo(&models.User{BaseModel: models.BaseModel{ID: "u1"}})
	store := session.NewMemoryStore()
	svc, _, _ := newTestJobService(newFakeJobRepo(), userRepo, store)

	resp, err := svc.CreateJob(ctx, "u1", &dto.CreateJobRequest{
		Title:       "Organist",
		Body:        "x",
		Country:     string(models.CountryInternational),
		SaveAsDraft: true,
	})
	require.NoError(t, err)
	assert.True(t, resp.Draft)

	val, err := store.Get(ctx, "u1", session.KeyPendingJob)
	require.NoError(t, err)
	assert.Empty(t, val)
}

func TestUnassignedOrganizations(t *testing.T) {
	orgID := "org-1"
	jobRepo := newFakeJobRepo(
		&models.JobPosting{BaseModel: models.BaseModel{ID: "job-1"}, Slug: "a", AuthorID: "u1"},
		&models.JobPosting{BaseModel: models.BaseModel{ID: "job-2"}, Slug: "b", AuthorID: "u1", OrganizationID: &orgID},
		&models.JobPosting{BaseModel: models.BaseModel{ID: "job-3"}, Slug: "c", AuthorID: "u2"},
	)
	userRepo := newFakeUserRepo(&models.User{BaseModel: models.BaseModel{ID: "u1"}})
	svc, _, _ := newTestJobService(jobRepo, userRepo, session.NewMemoryStore())

	resp, err := svc.UnassignedOrganizations(context.Background(), 50)
	require.NoError(t, err)

	assert.Equal(t, int64(2), resp.Count)
	assert.Len(t, resp.Jobs, 2)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Choir Director", "choir-director"},
		{"St. Mark's School", "st-mark-s-school"},
		{"  Organist / Pianist  ", "organist-pianist"},
		{"2026 Summer Intern", "2026-summer-intern"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slugify(tt.in), "slugify(%q)", tt.in)
	}
}
