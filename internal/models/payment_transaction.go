package models

import (
	"time"

	"gorm.io/datatypes"
)

// PaymentTransaction records a settled activation payment. Invoice
// activations are recorded too, with no gateway reference, so staff can
// reconcile manual invoices against postings.
type PaymentTransaction struct {
	BaseModel
	JobID          string      `gorm:"not null;index"`
	UserID         string      `gorm:"not null;index"`
	Amount         int         `gorm:"not null"` // whole dollars
	DurationMonths int         `gorm:"not null"`
	Method         PaymentType `gorm:"type:varchar(20);not null"`
	GatewayRef     string      // payment intent or checkout session id
	Metadata       datatypes.JSON
	PaidAt         time.Time
}
