package services

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostel-backend/models"
)

type PaymentService struct {
	DB *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db}
}

func (s *PaymentService) GetAll() ([]models.Payment, error) {
	var payments []models.Payment
	err := s.DB.Order("paid_at DESC").Find(&payments).Error
	return payments, err
}

func (s *PaymentService) Create(p models.Payment) (models.Payment, error) {
	if p.UUID == "" {
		p.UUID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = models.PaymentCompleted
	}
	if err := s.DB.Create(&p).Error; err != nil {
		return models.Payment{}, fmt.Errorf("create payment: %w", err)
	}
	return p, nil
}
