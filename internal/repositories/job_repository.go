package repositories

import (
	"errors"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job posting not found")

type JobRepository interface {
	// FindByID loads a posting with its author, organization and school.
	// Disabled postings are only returned when includeDisabled is set.
	FindByID(id string, includeDisabled bool) (*models.JobPosting, error)
	Create(job *models.JobPosting) error
	Save(job *models.JobPosting) error
	SlugExists(slug string) (bool, error)
	FindByAuthor(authorID string, limit, offset int) ([]models.JobPosting, error)

	// Backfill support
	FindWithoutOrganization(limit int) ([]models.JobPosting, error)
	CountWithoutOrganization() (int64, error)

	// DisableExpired turns off postings whose expiry date has passed and
	// returns how many rows changed.
	DisableExpired(now time.Time) (int64, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) FindByID(id string, includeDisabled bool) (*models.JobPosting, error) {
	query := r.db.Preload("Author").Preload("Organization").Preload("School").Preload("Region")
	if !includeDisabled {
		query = query.Where("enabled = ?", true)
	}

	var job models.JobPosting
	err := query.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Create(job *models.JobPosting) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) Save(job *models.JobPosting) error {
	result := r.db.Save(job)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.JobPosting{}).Where("slug = ?", slug).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *JobRepositoryImpl) FindByAuthor(authorID string, limit, offset int) ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	err := r.db.Where("author_id = ?", authorID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindWithoutOrganization(limit int) ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	query := r.db.Preload("Author").Where("organization_id IS NULL")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Order("created_at ASC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) CountWithoutOrganization() (int64, error) {
	var count int64
	err := r.db.Model(&models.JobPosting{}).Where("organization_id IS NULL").Count(&count).Error
	return count, err
}

func (r *JobRepositoryImpl) DisableExpired(now time.Time) (int64, error) {
	result := r.db.Model(&models.JobPosting{}).
		Where("enabled = ? AND expiry_date IS NOT NULL AND expiry_date < ?", true, now).
		Updates(map[string]interface{}{
			"enabled":    false,
			"updated_at": now,
		})
	return result.RowsAffected, result.Error
}
