package models

import (
	"time"

	"gorm.io/datatypes"
)

// Supplier represents the suppliers table. Rows are removed (not soft-deleted)
// when a supplier is marked delivered; see DeliveryHistory.
type Supplier struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:200;not null" json:"name"`
	Product string `gorm:"size:200;not null" json:"product"`
	Status  string `gorm:"size:64;default:on_hold" json:"status"`
	Note    string `gorm:"type:text" json:"note"`

	// EstDelivery is nullable on purpose: an unknown delivery date stays NULL.
	EstDelivery *datatypes.Date `gorm:"column:est_delivery" json:"est_delivery"`

	AddedAt time.Time `gorm:"column:added_at;autoCreateTime" json:"added_at"`
}

func (Supplier) TableName() string {
	return "suppliers"
}
