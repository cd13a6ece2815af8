package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrRegionNotFound = errors.New("region category not found")

type RegionRepository interface {
	FindBySlug(slug string) (*models.RegionCategory, error)
	FindAll() ([]models.RegionCategory, error)
	// Upsert creates the category when no row with its slug exists yet.
	Upsert(region *models.RegionCategory) error
}

type RegionRepositoryImpl struct {
	db *gorm.DB
}

func NewRegionRepository(db *gorm.DB) RegionRepository {
	return &RegionRepositoryImpl{db: db}
}

func (r *RegionRepositoryImpl) FindBySlug(slug string) (*models.RegionCategory, error) {
	var region models.RegionCategory
	err := r.db.First(&region, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRegionNotFound
		}
		return nil, err
	}
	return &region, nil
}

func (r *RegionRepositoryImpl) FindAll() ([]models.RegionCategory, error) {
	var regions []models.RegionCategory
	err := r.db.Order("title ASC").Find(&regions).Error
	return regions, err
}

func (r *RegionRepositoryImpl) Upsert(region *models.RegionCategory) error {
	var existing models.RegionCategory
	err := r.db.First(&existing, "slug = ?", region.Slug).Error
	if err == nil {
		region.ID = existing.ID
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(region).Error
}
