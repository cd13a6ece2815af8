package services

import (
	"context"
	"errors"
	"fmt"

	"jobboard_backend/internal/dto"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/regions"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/session"
	"jobboard_backend/pkg/apperrors"
)

// JobService handles posting submission: slugging, region assignment,
// organization defaulting and the pending-job stash the payment step picks
// up. New postings always start disabled; activation is a separate step.
type JobService interface {
	CreateJob(ctx context.Context, userID string, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	GetJob(ctx context.Context, id string, includeDisabled bool) (*dto.JobResponse, error)
	// UnassignedOrganizations reports postings that still lack an
	// organization relation, for the admin cleanup view.
	UnassignedOrganizations(ctx context.Context, limit int) (*dto.UnassignedOrganizationsResponse, error)
}

type jobService struct {
	jobRepo    repositories.JobRepository
	userRepo   repositories.UserRepository
	schoolRepo repositories.SchoolRepository
	regionRepo repositories.RegionRepository
	sessions   session.Store
}

func NewJobService(
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	schoolRepo repositories.SchoolRepository,
	regionRepo repositories.RegionRepository,
	sessions session.Store,
) JobService {
	return &jobService{
		jobRepo:    jobRepo,
		userRepo:   userRepo,
		schoolRepo: schoolRepo,
		regionRepo: regionRepo,
		sessions:   sessions,
	}
}

func (s *jobService) CreateJob(ctx context.Context, userID string, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "users", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	job := &models.JobPosting{
		Title:    req.Title,
		Body:     req.Body,
		AuthorID: userID,
		Enabled:  false,
		Draft:    req.SaveAsDraft,
		Country:  req.Country,
		State:    req.State,
	}

	var school *models.School
	if req.SchoolID != "" {
		school, err = s.schoolRepo.FindByID(req.SchoolID)
		if err != nil {
			if errors.Is(err, repositories.ErrSchoolNotFound) {
				return nil, apperrors.ErrNotFound(err, "schools", "School not found")
			}
			return nil, apperrors.InternalError(err)
		}
		job.SchoolID = &school.ID
	}

	// Organization: explicit choice wins, otherwise default to the
	// poster's own organization when they have one.
	if req.OrganizationID != "" {
		job.OrganizationID = &req.OrganizationID
	} else if user.OrganizationID != nil {
		job.OrganizationID = user.OrganizationID
	}

	s.applyRegion(ctx, job)

	job.Slug, err = s.uniqueSlug(school, req.Title)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.ErrPersistence(err, "Could not save job posting", nil)
	}

	logger.CtxInfo(ctx, "Job posting created",
		"job_id", job.ID,
		"slug", job.Slug,
		"draft", job.Draft,
	)

	// Stash the id so the payment step knows which posting to activate.
	// Drafts skip payment entirely.
	if !job.Draft {
		if err := s.sessions.Set(ctx, userID, session.KeyPendingJob, job.ID); err != nil {
			logger.CtxWithError(ctx, "Failed to stash pending job in session", err, "job_id", job.ID)
		}
	}

	return s.toResponse(job), nil
}

func (s *jobService) GetJob(ctx context.Context, id string, includeDisabled bool) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(id, includeDisabled)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return s.toResponse(job), nil
}

func (s *jobService) UnassignedOrganizations(ctx context.Context, limit int) (*dto.UnassignedOrganizationsResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	count, err := s.jobRepo.CountWithoutOrganization()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	jobs, err := s.jobRepo.FindWithoutOrganization(limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.UnassignedOrganizationsResponse{Count: count}
	for i := range jobs {
		resp.Jobs = append(resp.Jobs, *s.toResponse(&jobs[i]))
	}
	return resp, nil
}

// applyRegion assigns the region category matching the posting's location.
// Unresolvable input is logged and skipped, never an error: a posting
// without a region is still publishable.
func (s *jobService) applyRegion(ctx context.Context, job *models.JobPosting) {
	slug, ok := regions.Resolve(job.Country, job.State)
	if !ok {
		if job.Country != "" {
			logger.CtxWarn(ctx, "No region matches location, leaving unset",
				"country", job.Country, "state", job.State)
		}
		return
	}

	region, err := s.regionRepo.FindBySlug(string(slug))
	if err != nil {
		logger.CtxWithError(ctx, "Region category missing, leaving unset", err, "slug", string(slug))
		return
	}

	job.RegionID = &region.ID
	job.Region = region
}

// uniqueSlug builds schoolSlug_titleSlug, suffixing a counter on collision.
func (s *jobService) uniqueSlug(school *models.School, title string) (string, error) {
	base := slugify(title)
	if school != nil {
		base = school.Slug + "_" + base
	}

	slug := base
	for i := 2; ; i++ {
		exists, err := s.jobRepo.SlugExists(slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

func (s *jobService) toResponse(job *models.JobPosting) *dto.JobResponse {
	resp := &dto.JobResponse{
		ID:         job.ID,
		Title:      job.Title,
		Slug:       job.Slug,
		Enabled:    job.Enabled,
		Draft:      job.Draft,
		Paid:       job.Paid,
		Country:    job.Country,
		State:      job.State,
		ExpiryDate: job.ExpiryDate,
	}
	if job.Region != nil {
		resp.Region = job.Region.Slug
	}
	return resp
}
