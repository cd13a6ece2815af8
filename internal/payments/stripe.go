package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/paymentintent"

	"jobboard_backend/internal/logger"
)

// StripeGateway charges cards through Stripe using manually confirmed
// PaymentIntents, so the caller can bounce requires_action outcomes back to
// the browser SDK.
type StripeGateway struct{}

func NewStripeGateway(secretKey string) *StripeGateway {
	stripe.Key = secretKey
	return &StripeGateway{}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, p CreateIntentParams) (*Intent, error) {
	currency := p.Currency
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(p.AmountCents),
		Currency:           stripe.String(currency),
		PaymentMethod:      stripe.String(p.PaymentMethodID),
		Confirm:            stripe.Bool(true),
		ConfirmationMethod: stripe.String(string(stripe.PaymentIntentConfirmationMethodManual)),
	}
	if p.ReturnURL != "" {
		params.ReturnURL = stripe.String(p.ReturnURL)
	}
	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, g.mapError(ctx, err, "create payment intent")
	}

	return toIntent(pi), nil
}

func (g *StripeGateway) ConfirmIntent(ctx context.Context, intentID string) (*Intent, error) {
	params := &stripe.PaymentIntentConfirmParams{}
	params.Context = ctx

	pi, err := paymentintent.Confirm(intentID, params)
	if err != nil {
		return nil, g.mapError(ctx, err, "confirm payment intent")
	}

	return toIntent(pi), nil
}

func (g *StripeGateway) mapError(ctx context.Context, err error, op string) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
		logger.CtxWarn(ctx, "Card declined", "code", stripeErr.Code, "decline_code", stripeErr.DeclineCode)
		return &CardDeclinedError{Message: stripeErr.Msg}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func toIntent(pi *stripe.PaymentIntent) *Intent {
	return &Intent{
		ID:                pi.ID,
		ClientSecret:      pi.ClientSecret,
		Status:            string(pi.Status),
		Succeeded:         pi.Status == stripe.PaymentIntentStatusSucceeded,
		NextActionUsesSDK: pi.Status == stripe.PaymentIntentStatusRequiresAction && pi.NextAction != nil && pi.NextAction.Type == "use_stripe_sdk",
	}
}

func (g *StripeGateway) GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := session.Get(sessionID, params)
	if err != nil {
		return nil, fmt.Errorf("retrieve checkout session: %w", err)
	}

	return &CheckoutSession{
		ID:          s.ID,
		AmountTotal: s.AmountTotal,
		Paid:        s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
	}, nil
}
