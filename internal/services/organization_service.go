package services

import (
	"context"
	"errors"
	"fmt"

	"jobboard_backend/internal/dto"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/pkg/apperrors"
)

type OrganizationService interface {
	CreateOrganization(ctx context.Context, userID string, req *dto.CreateOrganizationRequest) (*dto.OrganizationResponse, error)
	GetOrganization(ctx context.Context, id string) (*dto.OrganizationResponse, error)
}

type organizationService struct {
	orgRepo  repositories.OrganizationRepository
	userRepo repositories.UserRepository
	notifier NotificationService
}

func NewOrganizationService(
	orgRepo repositories.OrganizationRepository,
	userRepo repositories.UserRepository,
	notifier NotificationService,
) OrganizationService {
	return &organizationService{
		orgRepo:  orgRepo,
		userRepo: userRepo,
		notifier: notifier,
	}
}

func (s *organizationService) CreateOrganization(ctx context.Context, userID string, req *dto.CreateOrganizationRequest) (*dto.OrganizationResponse, error) {
	slug, err := s.uniqueSlug(req.Title)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	org := &models.Organization{
		Title:    req.Title,
		Slug:     slug,
		Website:  req.Website,
		AuthorID: &userID,
	}

	if err := s.orgRepo.Create(org); err != nil {
		return nil, apperrors.ErrPersistence(err, "Could not save organization", nil)
	}

	logger.CtxInfo(ctx, "Organization created", "organization_id", org.ID, "slug", org.Slug)

	// Link the creator to their organization when they have none yet.
	if user, err := s.userRepo.FindByID(userID); err == nil && user.OrganizationID == nil {
		if err := s.userRepo.SetOrganization(userID, org.ID); err != nil {
			logger.CtxWithError(ctx, "Failed to link user to new organization", err, "organization_id", org.ID)
		}
	}

	// A direct create is always a fresh canonical entry.
	s.notifier.NotifyOrganizationCreated(ctx, org, EntrySave{IsNew: true, Canonical: true})

	return s.toResponse(org), nil
}

func (s *organizationService) GetOrganization(ctx context.Context, id string) (*dto.OrganizationResponse, error) {
	org, err := s.orgRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrOrganizationNotFound) {
			return nil, apperrors.ErrNotFound(err, "organizations", "Organization not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return s.toResponse(org), nil
}

func (s *organizationService) uniqueSlug(title string) (string, error) {
	base := slugify(title)
	slug := base
	for i := 2; ; i++ {
		exists, err := s.orgRepo.SlugExists(slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

func (s *organizationService) toResponse(org *models.Organization) *dto.OrganizationResponse {
	return &dto.OrganizationResponse{
		ID:      org.ID,
		Title:   org.Title,
		Slug:    org.Slug,
		Website: org.Website,
	}
}
