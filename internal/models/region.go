package models

// RegionCategory is static reference data: one row per named region, seeded
// at startup and never created or destroyed at runtime.
type RegionCategory struct {
	BaseModel
	Slug  string `gorm:"uniqueIndex;not null"`
	Title string `gorm:"not null"`
}
