package models

type UserStatus string
type PaymentType string
type CountryOption string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"

	PaymentTypeInvoice PaymentType = "invoice"
	PaymentTypeStripe  PaymentType = "stripe"

	CountryUnitedStates  CountryOption = "unitedStates"
	CountryInternational CountryOption = "international"
)

// GroupJobPosters is the permission group every publicly registered or
// activated user must end up in.
const GroupJobPosters = "jobPosters"
