package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"

	"jobboard_backend/internal/dto"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/payments"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/session"
	"jobboard_backend/pkg/apperrors"
)

const (
	ActivationStatusActivated     = "activated"
	ActivationStatusAlreadyActive = "already_active"
)

// PricingConfig is the posting price table in whole dollars.
type PricingConfig struct {
	TwelveMonth int
	SixMonth    int
}

// ActivationService turns a submitted posting into a live one: it takes the
// payment (invoice promise or card charge), stamps the expiry date, flips
// the posting on and fires the notices.
type ActivationService interface {
	// ActivateWithInvoice publishes the posting immediately and asks the
	// admins to send an invoice.
	ActivateWithInvoice(ctx context.Context, userID, jobID string, durationMonths int) (*dto.ActivationResult, error)

	// ProcessCardPayment charges the card for the user's pending job. When
	// the gateway demands extra authentication the outcome carries the
	// intent reference for the browser SDK and no activation happens yet.
	ProcessCardPayment(ctx context.Context, userID string, req *dto.ProcessPaymentRequest) (*dto.CardPaymentOutcome, error)

	// CompleteCheckout finalizes a hosted-checkout return: it verifies the
	// session was paid and derives the duration from the amount charged.
	CompleteCheckout(ctx context.Context, userID, jobID, sessionID string) (*dto.ActivationResult, error)

	// PriceFor returns the dollar amount for a duration.
	PriceFor(durationMonths int) int
}

type activationService struct {
	jobRepo     repositories.JobRepository
	userRepo    repositories.UserRepository
	paymentRepo repositories.PaymentRepository
	gateway     payments.Gateway
	sessions    session.Store
	notifier    NotificationService
	pricing     PricingConfig

	// now is swapped out in tests
	now func() time.Time
}

func NewActivationService(
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	paymentRepo repositories.PaymentRepository,
	gateway payments.Gateway,
	sessions session.Store,
	notifier NotificationService,
	pricing PricingConfig,
) ActivationService {
	return &activationService{
		jobRepo:     jobRepo,
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
		gateway:     gateway,
		sessions:    sessions,
		notifier:    notifier,
		pricing:     pricing,
		now:         time.Now,
	}
}

func (s *activationService) PriceFor(durationMonths int) int {
	if durationMonths == 12 {
		return s.pricing.TwelveMonth
	}
	return s.pricing.SixMonth
}

// durationForAmount is the inverse of PriceFor, used when only the charged
// amount survives the checkout round-trip.
func (s *activationService) durationForAmount(amount int) int {
	if amount == s.pricing.TwelveMonth {
		return 12
	}
	return 6
}

func (s *activationService) ActivateWithInvoice(ctx context.Context, userID, jobID string, durationMonths int) (*dto.ActivationResult, error) {
	job, err := s.loadOwnedJob(ctx, userID, jobID)
	if err != nil {
		return nil, err
	}

	if job.Paid {
		logger.CtxInfo(ctx, "Job already paid, skipping activation", "job_id", job.ID)
		return s.alreadyActive(job), nil
	}

	amount := s.PriceFor(durationMonths)
	return s.activate(ctx, userID, job, durationMonths, amount, models.PaymentTypeInvoice, "")
}

func (s *activationService) ProcessCardPayment(ctx context.Context, userID string, req *dto.ProcessPaymentRequest) (*dto.CardPaymentOutcome, error) {
	if req.PaymentMethodID == "" && req.PaymentIntentID == "" {
		return nil, apperrors.NewBadRequestError("Missing payment_method_id or payment_intent_id")
	}

	jobID, err := s.sessions.Get(ctx, userID, session.KeyPendingJob)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if jobID == "" {
		return nil, apperrors.ErrNoPendingJob
	}

	job, err := s.loadOwnedJob(ctx, userID, jobID)
	if err != nil {
		return nil, err
	}

	if job.Paid {
		logger.CtxInfo(ctx, "Job already paid, skipping charge", "job_id", job.ID)
		return &dto.CardPaymentOutcome{Success: true, Activation: s.alreadyActive(job)}, nil
	}

	amount := s.PriceFor(req.Duration)

	var intent *payments.Intent
	if req.PaymentIntentID != "" {
		// The browser SDK finished the extra authentication step, pick the
		// existing intent back up.
		intent, err = s.gateway.ConfirmIntent(ctx, req.PaymentIntentID)
	} else {
		intent, err = s.gateway.CreateIntent(ctx, payments.CreateIntentParams{
			AmountCents:     int64(amount) * 100,
			PaymentMethodID: req.PaymentMethodID,
			Metadata: map[string]string{
				"job_id":  job.ID,
				"user_id": userID,
			},
		})
	}
	if err != nil {
		var declined *payments.CardDeclinedError
		if errors.As(err, &declined) {
			return nil, apperrors.ErrPaymentDeclined
		}
		return nil, apperrors.ErrGateway(err, "Payment processing failed")
	}

	if intent.NextActionUsesSDK {
		// Hand the intent back so the frontend can run 3-D Secure; the
		// client retries this endpoint once the action completes.
		return &dto.CardPaymentOutcome{
			RequiresAction: true,
			PaymentIntent: &dto.PaymentIntentRef{
				ID:           intent.ID,
				ClientSecret: intent.ClientSecret,
			},
		}, nil
	}

	if !intent.Succeeded {
		logger.CtxWarn(ctx, "Payment intent in unexpected state", "status", intent.Status, "intent_id", intent.ID)
		return nil, apperrors.ErrGateway(errors.New("payment intent not succeeded: "+intent.Status), "Payment could not be completed")
	}

	result, err := s.activate(ctx, userID, job, req.Duration, amount, models.PaymentTypeStripe, intent.ID)
	if err != nil {
		return nil, err
	}
	return &dto.CardPaymentOutcome{Success: true, Activation: result}, nil
}

func (s *activationService) CompleteCheckout(ctx context.Context, userID, jobID, sessionID string) (*dto.ActivationResult, error) {
	job, err := s.loadOwnedJob(ctx, userID, jobID)
	if err != nil {
		return nil, err
	}

	if job.Paid {
		logger.CtxInfo(ctx, "Job already paid, checkout return is a no-op", "job_id", job.ID)
		return s.alreadyActive(job), nil
	}

	checkout, err := s.gateway.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return nil, apperrors.ErrGateway(err, "Could not verify payment session")
	}
	if !checkout.Paid {
		return nil, apperrors.ErrPaymentDeclined
	}

	amount := int(checkout.AmountTotal / 100)
	durationMonths := s.durationForAmount(amount)

	job.StripeSessionID = checkout.ID
	return s.activate(ctx, userID, job, durationMonths, amount, models.PaymentTypeStripe, checkout.ID)
}

// loadOwnedJob fetches the posting regardless of enabled state and checks
// the acting user may manage it. Admins may activate any posting.
func (s *activationService) loadOwnedJob(ctx context.Context, userID, jobID string) (*models.JobPosting, error) {
	job, err := s.jobRepo.FindByID(jobID, true)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if job.AuthorID != userID {
		user, err := s.userRepo.FindByID(userID)
		if err != nil || !user.IsAdmin {
			logger.CtxWarn(ctx, "User tried to activate a job they do not own", "job_id", jobID, "author_id", job.AuthorID)
			return nil, apperrors.ErrNotJobOwner
		}
	}

	return job, nil
}

func (s *activationService) alreadyActive(job *models.JobPosting) *dto.ActivationResult {
	return &dto.ActivationResult{
		Status: ActivationStatusAlreadyActive,
		JobID:  job.ID,
	}
}

// activate applies the state change that publishes a posting. Expiry is
// calendar months from now (AddDate), so Jan 31 + 1 month normalizes past
// Feb.
func (s *activationService) activate(ctx context.Context, userID string, job *models.JobPosting, durationMonths, amount int, method models.PaymentType, gatewayRef string) (*dto.ActivationResult, error) {
	now := s.now()
	expiry := now.AddDate(0, durationMonths, 0)

	job.Enabled = true
	job.Draft = false
	job.Paid = true
	job.PaymentType = method
	job.ExpiryDate = &expiry

	if err := s.jobRepo.Save(job); err != nil {
		return nil, apperrors.ErrPersistence(err, "Could not save job posting", nil)
	}

	logger.CtxInfo(ctx, "Job activated",
		"job_id", job.ID,
		"duration_months", durationMonths,
		"amount", amount,
		"payment_method", string(method),
		"expiry_date", expiry,
	)

	s.recordTransaction(ctx, userID, job, durationMonths, amount, method, gatewayRef, now)
	s.notifier.NotifyJobPublished(ctx, job, amount, durationMonths, method, gatewayRef)

	if err := s.sessions.Remove(ctx, userID, session.KeyPendingJob); err != nil {
		logger.CtxWithError(ctx, "Failed to clear pending job from session", err, "job_id", job.ID)
	}

	return &dto.ActivationResult{
		Status:         ActivationStatusActivated,
		JobID:          job.ID,
		Amount:         amount,
		DurationMonths: durationMonths,
	}, nil
}

// recordTransaction is bookkeeping, never a reason to fail the activation.
func (s *activationService) recordTransaction(ctx context.Context, userID string, job *models.JobPosting, durationMonths, amount int, method models.PaymentType, gatewayRef string, paidAt time.Time) {
	meta, _ := json.Marshal(map[string]string{
		"job_slug": job.Slug,
	})

	tx := &models.PaymentTransaction{
		JobID:          job.ID,
		UserID:         userID,
		Amount:         amount,
		DurationMonths: durationMonths,
		Method:         method,
		GatewayRef:     gatewayRef,
		Metadata:       datatypes.JSON(meta),
		PaidAt:         paidAt,
	}

	if err := s.paymentRepo.Create(tx); err != nil {
		logger.CtxWithError(ctx, "Failed to record payment transaction", err, "job_id", job.ID)
	}
}
