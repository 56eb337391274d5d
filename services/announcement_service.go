package services

import (
	"errors"
	"strings"
	"time"

	"supplier-backend/models"

	"gorm.io/gorm"
)

type AnnouncementService struct {
	DB *gorm.DB
}

func NewAnnouncementService(db *gorm.DB) *AnnouncementService {
	return &AnnouncementService{DB: db}
}

// AnnouncementPublic is what unauthenticated clients see: no active flag.
type AnnouncementPublic struct {
	ID        uint      `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// List returns every announcement, newest first (admin view).
func (s *AnnouncementService) List() ([]models.Announcement, error) {
	announcements := []models.Announcement{}
	err := s.DB.
		Order("created_at DESC").
		Order("id DESC").
		Find(&announcements).Error
	return announcements, err
}

// ListActive returns only active announcements, newest first.
func (s *AnnouncementService) ListActive() ([]AnnouncementPublic, error) {
	announcements := []AnnouncementPublic{}
	err := s.DB.Model(&models.Announcement{}).
		Select("id", "message", "created_at").
		Where("active = ?", true).
		Order("created_at DESC").
		Order("id DESC").
		Find(&announcements).Error
	return announcements, err
}

// Create stores a new announcement, active by default.
func (s *AnnouncementService) Create(message string) (*models.Announcement, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, &ValidationError{Message: "message is required"}
	}

	announcement := models.Announcement{Message: message, Active: true}
	if err := s.DB.Create(&announcement).Error; err != nil {
		return nil, err
	}
	return &announcement, nil
}

// Update applies message and/or active independently, only when present in
// fields. A missing id is NotFound, same rule as everywhere else.
func (s *AnnouncementService) Update(id uint, fields map[string]interface{}) error {
	var announcement models.Announcement
	if err := s.DB.First(&announcement, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	updates := map[string]interface{}{}
	for key, raw := range fields {
		switch key {
		case "message":
			value, ok := raw.(string)
			value = strings.TrimSpace(value)
			if !ok || value == "" {
				return &ValidationError{Message: "message cannot be empty"}
			}
			updates["message"] = value

		case "active":
			value, ok := raw.(bool)
			if !ok {
				return &ValidationError{Message: "active must be a boolean"}
			}
			updates["active"] = value
		}
	}

	if len(updates) == 0 {
		return nil
	}

	return s.DB.Model(&models.Announcement{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes an announcement by id.
func (s *AnnouncementService) Delete(id uint) error {
	result := s.DB.Delete(&models.Announcement{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
