package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/dto"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/session"
	"jobboard_backend/pkg/apperrors"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	// VerifyEmail activates the account behind the token: the user becomes
	// active, lands in the job-posters group and the admins get a notice.
	VerifyEmail(ctx context.Context, token string) (*dto.UserResponse, error)
}

type authService struct {
	userRepo repositories.UserRepository
	groups   GroupService
	notifier NotificationService
	mailer   email.Mailer
	sessions session.Store
	siteURL  string
}

func NewAuthService(
	userRepo repositories.UserRepository,
	groups GroupService,
	notifier NotificationService,
	mailer email.Mailer,
	sessions session.Store,
	siteURL string,
) AuthService {
	return &authService{
		userRepo: userRepo,
		groups:   groups,
		notifier: notifier,
		mailer:   mailer,
		sessions: sessions,
		siteURL:  siteURL,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:             req.Email,
		PasswordHash:      hash,
		FullName:          req.FullName,
		Status:            models.UserStatusPending,
		VerificationToken: uuid.NewString(),
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "User registered", "user_id", user.ID)

	// Front-end signups are job posters from the start; the guard is
	// idempotent, so verification re-running it later is harmless.
	if err := s.groups.EnsureMember(ctx, user.ID, models.GroupJobPosters); err != nil {
		logger.CtxWithError(ctx, "Failed to add new user to job posters", err, "user_id", user.ID)
	}

	s.sendVerificationEmail(ctx, user)

	return toUserResponse(user), nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.CtxWarn(ctx, "Failed login attempt", "email", req.Email)
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.IsAdmin)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if user.OrganizationID == nil {
		if err := session.SetNotice(ctx, s.sessions, user.ID, "Create your organization to finish setting up your account."); err != nil {
			logger.CtxWithError(ctx, "Failed to set organization reminder notice", err, "user_id", user.ID)
		}
	}

	return &dto.AuthResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func (s *authService) VerifyEmail(ctx context.Context, token string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByVerificationToken(token)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.VerifyUser(user.ID); err != nil {
		return nil, apperrors.InternalError(err)
	}
	user.IsVerified = true
	user.Status = models.UserStatusActive

	logger.CtxInfo(ctx, "User activated", "user_id", user.ID)

	// Activated accounts must be able to post jobs, whatever groups they
	// already hold.
	if err := s.groups.EnsureMember(ctx, user.ID, models.GroupJobPosters); err != nil {
		logger.CtxWithError(ctx, "Failed to add activated user to job posters", err, "user_id", user.ID)
	}

	s.notifier.NotifyUserActivated(ctx, user)

	// Greets the user on their next page view.
	if err := session.SetNotice(ctx, s.sessions, user.ID, "Your account is now active. Welcome!"); err != nil {
		logger.CtxWithError(ctx, "Failed to set first-login notice", err, "user_id", user.ID)
	}

	return toUserResponse(user), nil
}

// sendVerificationEmail is best-effort; registration succeeds regardless.
func (s *authService) sendVerificationEmail(ctx context.Context, user *models.User) {
	verifyURL := fmt.Sprintf("%s/auth/verify-email?token=%s", s.siteURL, user.VerificationToken)
	body := fmt.Sprintf(
		`<html><body><p>Welcome! Please confirm your email address:</p><p><a href="%s">Verify my email</a></p></body></html>`,
		verifyURL,
	)

	msg := &email.Message{
		To:       []string{user.Email},
		Subject:  "Verify your email address",
		HTMLBody: body,
	}
	if err := s.mailer.Send(msg); err != nil {
		logger.CtxWithError(ctx, "Failed to send verification email", err, "user_id", user.ID)
	}
}

func toUserResponse(user *models.User) *dto.UserResponse {
	groups := make([]string, 0, len(user.Groups))
	for _, g := range user.Groups {
		groups = append(groups, g.Handle)
	}
	return &dto.UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		FullName:   user.FullName,
		Status:     string(user.Status),
		IsVerified: user.IsVerified,
		Groups:     groups,
	}
}
