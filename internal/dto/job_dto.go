package dto

import "time"

type CreateJobRequest struct {
	Title          string `json:"title" binding:"required"`
	Body           string `json:"body" binding:"required"`
	SchoolID       string `json:"school_id"`
	OrganizationID string `json:"organization_id"`
	Country        string `json:"country" binding:"required" validate:"country_option"`
	State          string `json:"state" validate:"omitempty,state_code"`
	SaveAsDraft    bool   `json:"save_as_draft"`
}

type JobResponse struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Slug       string     `json:"slug"`
	Enabled    bool       `json:"enabled"`
	Draft      bool       `json:"draft"`
	Paid       bool       `json:"paid"`
	Country    string     `json:"country"`
	State      string     `json:"state,omitempty"`
	Region     string     `json:"region,omitempty"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
}

// UnassignedOrganizationsResponse lists postings missing an organization
// relation. Count is the full total; Jobs is capped by the query limit.
type UnassignedOrganizationsResponse struct {
	Count int64         `json:"count"`
	Jobs  []JobResponse `json:"jobs"`
}

type ActivateJobRequest struct {
	JobID         string `json:"job_id" form:"job_id" binding:"required"`
	Duration      int    `json:"duration" form:"duration" binding:"required" validate:"job_duration"`
	PaymentMethod string `json:"payment_method" form:"payment_method" binding:"required,oneof=invoice credit"`
	Redirect      string `json:"redirect" form:"redirect"`
}

// ActivationResult reports what the activation call actually did.
// Status is "activated" on the first successful call and "already_active"
// when the posting was paid before this call ran.
type ActivationResult struct {
	Status         string `json:"status"`
	JobID          string `json:"job_id"`
	Amount         int    `json:"amount"`
	DurationMonths int    `json:"duration_months"`
}

type ProcessPaymentRequest struct {
	PaymentMethodID string `json:"payment_method_id"`
	PaymentIntentID string `json:"payment_intent_id"`
	Duration        int    `json:"duration" binding:"required" validate:"job_duration"`
}

// CardPaymentOutcome mirrors the gateway's manual-confirmation flow: either
// the charge succeeded, or the browser SDK has to finish an extra
// authentication step first.
type CardPaymentOutcome struct {
	Success        bool              `json:"success"`
	RequiresAction bool              `json:"requires_action,omitempty"`
	PaymentIntent  *PaymentIntentRef `json:"payment_intent,omitempty"`
	Activation     *ActivationResult `json:"activation,omitempty"`
}

type PaymentIntentRef struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}
