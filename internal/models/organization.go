package models

type Organization struct {
	BaseModel
	Title    string `gorm:"not null"`
	Slug     string `gorm:"uniqueIndex;not null"`
	Website  string
	AuthorID *string
	Author   *User `gorm:"foreignKey:AuthorID"`
}

// School is a reference entry job postings relate to; its slug prefixes the
// job slug.
type School struct {
	BaseModel
	Title string `gorm:"not null"`
	Slug  string `gorm:"uniqueIndex;not null"`
}
