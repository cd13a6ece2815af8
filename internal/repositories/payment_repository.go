package repositories

import (
	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(tx *models.PaymentTransaction) error
	FindByJob(jobID string) ([]models.PaymentTransaction, error)
}

type PaymentRepositoryImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &PaymentRepositoryImpl{db: db}
}

func (r *PaymentRepositoryImpl) Create(tx *models.PaymentTransaction) error {
	return r.db.Create(tx).Error
}

func (r *PaymentRepositoryImpl) FindByJob(jobID string) ([]models.PaymentTransaction, error) {
	var txs []models.PaymentTransaction
	err := r.db.Where("job_id = ?", jobID).Order("created_at DESC").Find(&txs).Error
	return txs, err
}
