package models

type User struct {
	BaseModel
	Email             string     `gorm:"uniqueIndex;not null"`
	PasswordHash      string     `gorm:"not null"`
	FullName          string
	Status            UserStatus `gorm:"type:varchar(20);default:'pending'"`
	IsAdmin           bool       `gorm:"default:false"`
	IsVerified        bool       `gorm:"default:false"`
	VerificationToken string

	// Relations
	OrganizationID *string
	Organization   *Organization `gorm:"foreignKey:OrganizationID"`
	Groups         []UserGroup   `gorm:"many2many:user_group_memberships;"`
}

// UserGroup is a named permission group; membership is a many-to-many
// relation assigned as a whole set.
type UserGroup struct {
	BaseModel
	Handle string `gorm:"uniqueIndex;not null"`
	Name   string `gorm:"not null"`
}
