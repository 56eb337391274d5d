package models

import (
	"time"

	"gorm.io/datatypes"
)

// DeliveryHistory is the audit table suppliers are archived into when deleted.
// Name/Product/Note/EstDelivery/AddedAt are copied verbatim from the supplier
// row; AddedAt is deliberately NOT autoCreateTime.
type DeliveryHistory struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:200;not null" json:"name"`
	Product     string          `gorm:"size:200;not null" json:"product"`
	Note        string          `gorm:"type:text" json:"note"`
	EstDelivery *datatypes.Date `gorm:"column:est_delivery" json:"est_delivery"`
	AddedAt     time.Time       `gorm:"column:added_at" json:"added_at"`
	DeliveredAt time.Time       `gorm:"column:delivered_at;index" json:"delivered_at"`
}

func (DeliveryHistory) TableName() string {
	return "delivery_history"
}
