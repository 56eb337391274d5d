package services

import (
	"supplier-backend/models"

	"gorm.io/gorm"
)

// historyListLimit is a hard cap; the history endpoint never pages.
const historyListLimit = 100

type HistoryService struct {
	DB *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{DB: db}
}

// List returns the most recently delivered entries, capped at 100.
func (s *HistoryService) List() ([]models.DeliveryHistory, error) {
	entries := []models.DeliveryHistory{}
	err := s.DB.
		Order("delivered_at DESC").
		Order("id DESC").
		Limit(historyListLimit).
		Find(&entries).Error
	return entries, err
}

// Delete removes a history entry outright. Audit trim only, nothing cascades.
func (s *HistoryService) Delete(id uint) error {
	result := s.DB.Delete(&models.DeliveryHistory{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
