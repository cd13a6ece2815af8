package payments

import "context"

// CreateIntentParams describes a single manual-confirmation charge attempt.
type CreateIntentParams struct {
	AmountCents     int64
	Currency        string
	PaymentMethodID string
	ReturnURL       string
	Metadata        map[string]string
}

// Intent is the gateway's view of a charge attempt. When NextActionUsesSDK is
// set, the client has to run the gateway's browser SDK (3-D Secure etc.)
// before the charge can complete.
type Intent struct {
	ID                string
	ClientSecret      string
	Status            string
	Succeeded         bool
	NextActionUsesSDK bool
}

// CheckoutSession is a completed (or pending) hosted-checkout session.
type CheckoutSession struct {
	ID          string
	AmountTotal int64
	Paid        bool
}

// Gateway abstracts the card processor so services and tests never touch the
// vendor client directly.
type Gateway interface {
	CreateIntent(ctx context.Context, params CreateIntentParams) (*Intent, error)
	// ConfirmIntent retries an intent the browser SDK finished
	// authenticating.
	ConfirmIntent(ctx context.Context, intentID string) (*Intent, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
}

// CardDeclinedError reports a decline the cardholder can act on, as opposed
// to a transport or configuration failure.
type CardDeclinedError struct {
	Message string
}

func (e *CardDeclinedError) Error() string {
	if e.Message == "" {
		return "card declined"
	}
	return e.Message
}
