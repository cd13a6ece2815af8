package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSchoolNotFound = errors.New("school not found")

type SchoolRepository interface {
	FindByID(id string) (*models.School, error)
	FindAll() ([]models.School, error)
	Create(school *models.School) error
}

type SchoolRepositoryImpl struct {
	db *gorm.DB
}

func NewSchoolRepository(db *gorm.DB) SchoolRepository {
	return &SchoolRepositoryImpl{db: db}
}

func (r *SchoolRepositoryImpl) FindByID(id string) (*models.School, error) {
	var school models.School
	err := r.db.First(&school, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSchoolNotFound
		}
		return nil, err
	}
	return &school, nil
}

func (r *SchoolRepositoryImpl) FindAll() ([]models.School, error) {
	var schools []models.School
	err := r.db.Order("title ASC").Find(&schools).Error
	return schools, err
}

func (r *SchoolRepositoryImpl) Create(school *models.School) error {
	return r.db.Create(school).Error
}
