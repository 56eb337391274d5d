package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"supplier-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StatusOnHold is the status every new supplier starts in. Status is an open
// string beyond that (shipped, delayed, whatever the admin types).
const StatusOnHold = "on_hold"

// SupplierService wraps *gorm.DB with the supplier lifecycle logic.
type SupplierService struct {
	DB *gorm.DB
}

func NewSupplierService(db *gorm.DB) *SupplierService {
	return &SupplierService{DB: db}
}

// SupplierPublic is the search result shape exposed to unauthenticated
// clients. It never carries the row id.
type SupplierPublic struct {
	Name        string          `json:"name"`
	Product     string          `json:"product"`
	Status      string          `json:"status"`
	Note        string          `json:"note"`
	EstDelivery *datatypes.Date `json:"est_delivery"`
	AddedAt     time.Time       `json:"added_at"`
}

// Search performs a case-insensitive substring match on supplier names,
// newest first. An empty or whitespace-only query returns an empty list
// without touching the database.
func (s *SupplierService) Search(query string) ([]SupplierPublic, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return []SupplierPublic{}, nil
	}

	results := []SupplierPublic{}
	err := s.DB.Model(&models.Supplier{}).
		Select("name", "product", "status", "note", "est_delivery", "added_at").
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%").
		Order("added_at DESC").
		Order("id DESC").
		Find(&results).Error
	return results, err
}

// List returns every supplier with all fields, newest first (admin view).
func (s *SupplierService) List() ([]models.Supplier, error) {
	suppliers := []models.Supplier{}
	err := s.DB.
		Order("added_at DESC").
		Order("id DESC").
		Find(&suppliers).Error
	return suppliers, err
}

// Create stores a new supplier. Name and product are required after
// trimming; status always starts as on_hold.
func (s *SupplierService) Create(name, product, note string, estDelivery *string) (*models.Supplier, error) {
	name = strings.TrimSpace(name)
	product = strings.TrimSpace(product)
	note = strings.TrimSpace(note)

	if name == "" {
		return nil, &ValidationError{Message: "name is required"}
	}
	if product == "" {
		return nil, &ValidationError{Message: "product is required"}
	}

	supplier := models.Supplier{
		Name:    name,
		Product: product,
		Status:  StatusOnHold,
		Note:    note,
	}

	if estDelivery != nil && strings.TrimSpace(*estDelivery) != "" {
		d, err := parseDate(*estDelivery)
		if err != nil {
			return nil, &ValidationError{Message: "est_delivery must be a YYYY-MM-DD date"}
		}
		supplier.EstDelivery = d
	}

	if err := s.DB.Create(&supplier).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

// Update applies a partial update. Only keys present in fields are written:
// an omitted key keeps the stored value, while an explicit null clears
// est_delivery (and blanks note). Unknown keys are ignored, so id/added_at
// can never be rewritten through this path.
func (s *SupplierService) Update(id uint, fields map[string]interface{}) error {
	var supplier models.Supplier
	if err := s.DB.First(&supplier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	updates := map[string]interface{}{}
	for key, raw := range fields {
		switch key {
		case "name", "product", "status":
			value, ok := raw.(string)
			value = strings.TrimSpace(value)
			if !ok || value == "" {
				return &ValidationError{Message: key + " cannot be empty"}
			}
			updates[key] = value

		case "note":
			if raw == nil {
				updates["note"] = ""
				continue
			}
			value, ok := raw.(string)
			if !ok {
				return &ValidationError{Message: "note must be a string"}
			}
			updates["note"] = strings.TrimSpace(value)

		case "est_delivery":
			if raw == nil {
				// explicit null clears the date
				updates["est_delivery"] = nil
				continue
			}
			value, ok := raw.(string)
			if !ok {
				return &ValidationError{Message: "est_delivery must be a YYYY-MM-DD date"}
			}
			if strings.TrimSpace(value) == "" {
				updates["est_delivery"] = nil
				continue
			}
			d, err := parseDate(value)
			if err != nil {
				return &ValidationError{Message: "est_delivery must be a YYYY-MM-DD date"}
			}
			updates["est_delivery"] = d
		}
	}

	if len(updates) == 0 {
		return nil
	}

	return s.DB.Model(&models.Supplier{}).Where("id = ?", id).Updates(updates).Error
}

// Delete marks a supplier delivered: it copies the row into delivery_history
// and removes it from suppliers inside one transaction, so concurrent readers
// see the record in exactly one of the two tables and concurrent deletes of
// the same id leave exactly one history entry.
func (s *SupplierService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var supplier models.Supplier
		if err := tx.First(&supplier, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		entry := models.DeliveryHistory{
			Name:        supplier.Name,
			Product:     supplier.Product,
			Note:        supplier.Note,
			EstDelivery: supplier.EstDelivery,
			AddedAt:     supplier.AddedAt,
			DeliveredAt: time.Now(),
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Supplier{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// someone else archived it first; roll the copy back
			return ErrNotFound
		}
		return nil
	})
}

func parseDate(raw string) (*datatypes.Date, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			d := datatypes.Date(t)
			return &d, nil
		}
	}
	return nil, fmt.Errorf("invalid date %q", raw)
}
