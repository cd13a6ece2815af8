package models

import "time"

// JobPosting is the content record at the center of the activation workflow.
// Invariant: Enabled implies Paid and a set ExpiryDate.
type JobPosting struct {
	BaseModel
	Title string `gorm:"not null"`
	Slug  string `gorm:"uniqueIndex;not null"`
	Body  string

	AuthorID string `gorm:"not null;index"`
	Author   *User  `gorm:"foreignKey:AuthorID"`

	OrganizationID *string
	Organization   *Organization `gorm:"foreignKey:OrganizationID"`
	SchoolID       *string
	School         *School `gorm:"foreignKey:SchoolID"`

	Enabled     bool        `gorm:"default:false;index"`
	Draft       bool        `gorm:"default:false"`
	Paid        bool        `gorm:"default:false"`
	PaymentType PaymentType `gorm:"type:varchar(20)"`
	ExpiryDate  *time.Time  `gorm:"index"`

	Country string `gorm:"type:varchar(30)"`
	State   string `gorm:"type:varchar(2)"` // two-letter US state code, empty for international

	RegionID *string
	Region   *RegionCategory `gorm:"foreignKey:RegionID"`

	StripeSessionID string
}
