package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PricingConfig is an admin-editable override for one catalog item.
// Nil fields leave the static catalog value in place.
type PricingConfig struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	ItemKind      string `gorm:"type:varchar(10);not null;uniqueIndex:idx_pricing_item,priority:1" json:"item_kind"` // 'package' or 'addon'
	ItemID        string `gorm:"not null;uniqueIndex:idx_pricing_item,priority:2" json:"item_id"`
	EventCategory string `gorm:"type:varchar(20);uniqueIndex:idx_pricing_item,priority:3" json:"event_category"`

	Price         *float64 `gorm:"type:decimal(10,2)" json:"price"`
	ALaCartePrice *float64 `gorm:"type:decimal(10,2)" json:"a_la_carte_price"`
	Description   *string  `json:"description"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	gorm.Model `json:"-"`
}

func (p *PricingConfig) BeforeCreate(tx *gorm.DB) (err error) {
	p.ID = uuid.New()
	return
}
