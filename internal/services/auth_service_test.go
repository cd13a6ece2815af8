package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/dto"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/session"
	"jobboard_backend/pkg/apperrors"
)

func newTestAuthService(userRepo *fakeUserRepo, mailer *fakeMailer, notifier *fakeNotifier, store session.Store) AuthService {
	return NewAuthService(userRepo, NewGroupService(userRepo), notifier, mailer, store, "https://jobs.test")
}

func TestRegister_CreatesPendingUserAndSendsVerification(t *testing.T) {
	userRepo := newFakeUserRepo()
	require.NoError(t, userRepo.CreateGroup(&models.UserGroup{Handle: models.GroupJobPosters, Name: "Job Posters"}))
	mailer := &fakeMailer{}
	svc := newTestAuthService(userRepo, mailer, &fakeNotifier{}, session.NewMemoryStore())

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "poster@test",
		Password: "long-enough-pw",
		FullName: "Pat Poster",
	})
	require.NoError(t, err)

	assert.Equal(t, string(models.UserStatusPending), resp.Status)
	assert.False(t, resp.IsVerified)

	user, err := userRepo.FindByEmail("poster@test")
	require.NoError(t, err)
	assert.NotEmpty(t, user.VerificationToken)
	assert.NotEqual(t, "long-enough-pw", user.PasswordHash)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, []string{"poster@test"}, mailer.sent[0].To)
	assert.Contains(t, mailer.sent[0].HTMLBody, user.VerificationToken)

	// Signed up straight into the job posters group
	groups, err := userRepo.GetUserGroups(user.ID)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, models.GroupJobPosters, groups[0].Handle)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo := newFakeUserRepo(&models.User{
		BaseModel: models.BaseModel{ID: "u1"},
		Email:     "poster@test",
	})
	svc := newTestAuthService(userRepo, &fakeMailer{}, &fakeNotifier{}, session.NewMemoryStore())

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "poster@test",
		Password: "long-enough-pw",
		FullName: "Pat",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	auth.InitJWT("test-secret", 60)
	hash, err := auth.HashPassword("correct-password")
	require.NoError(t, err)

	userRepo := newFakeUserRepo(&models.User{
		BaseModel:    models.BaseModel{ID: "u1"},
		Email:        "poster@test",
		PasswordHash: hash,
	})
	store := session.NewMemoryStore()
	svc := newTestAuthService(userRepo, &fakeMailer{}, &fakeNotifier{}, store)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "poster@test",
		Password: "correct-password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	claims, err := auth.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)

	// No organization yet, so a reminder notice waits in the session
	notice, _, err := session.TakeFlashes(context.Background(), store, "u1")
	require.NoError(t, err)
	assert.Contains(t, notice, "organization")

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "poster@test",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_WithOrganizationSetsNoNotice(t *testing.T) {
	auth.InitJWT("test-secret", 60)
	hash, err := auth.HashPassword("correct-password")
	require.NoError(t, err)

	orgID := "org-1"
	userRepo := newFakeUserRepo(&models.User{
		BaseModel:      models.BaseModel{ID: "u1"},
		Email:          "poster@test",
		PasswordHash:   hash,
		OrganizationID: &orgID,
	})
	store := session.NewMemoryStore()
	svc := newTestAuthService(userRepo, &fakeMailer{}, &fakeNotifier{}, store)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "poster@test",
		Password: "correct-password",
	})
	require.NoError(t, err)

	notice, _, err := session.TakeFlashes(context.Background(), store, "u1")
	require.NoError(t, err)
	assert.Empty(t, notice)
}

func TestVerifyEmail_ActivatesGroupsAndNotifies(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo(&models.User{
		BaseModel:         models.BaseModel{ID: "u1"},
		Email:             "poster@test",
		Status:            models.UserStatusPending,
		VerificationToken: "tok-123",
	})
	require.NoError(t, userRepo.CreateGroup(&models.UserGroup{Handle: models.GroupJobPosters, Name: "Job Posters"}))

	notifier := &fakeNotifier{}
	store := session.NewMemoryStore()
	svc := newTestAuthService(userRepo, &fakeMailer{}, notifier, store)

	resp, err := svc.VerifyEmail(ctx, "tok-123")
	require.NoError(t, err)

	assert.True(t, resp.IsVerified)
	assert.Equal(t, string(models.UserStatusActive), resp.Status)

	// Landed in the job posters group
	groups, err := userRepo.GetUserGroups("u1")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, models.GroupJobPosters, groups[0].Handle)

	// Admin notice fired
	assert.Equal(t, []string{"u1"}, notifier.userIDs)

	// First-login greeting waits in the session
	notice, _, err := session.TakeFlashes(ctx, store, "u1")
	require.NoError(t, err)
	assert.NotEmpty(t, notice)
}

func TestVerifyEmail_BadToken(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo(), &fakeMailer{}, &fakeNotifier{}, session.NewMemoryStore())

	_, err := svc.VerifyEmail(context.Background(), "nope")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
