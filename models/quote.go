package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddonSelection is one chosen add-on as persisted on the quote record
type AddonSelection struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type AddonList []AddonSelection

func (a AddonList) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *AddonList) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &a)
}

// CustomLineItem is an admin-added charge or credit on top of the package
type CustomLineItem struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type LineItemList []CustomLineItem

func (l LineItemList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *LineItemList) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &l)
}

type QuoteSelection struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	LeadID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"lead_id"`

	PackageID    string    `gorm:"not null" json:"package_id"`
	PackageName  string    `gorm:"not null" json:"package_name"`
	PackagePrice float64   `gorm:"type:decimal(10,2);not null" json:"package_price"`
	Addons       AddonList `gorm:"type:jsonb;default:'[]'" json:"addons"`

	DiscountType  string  `gorm:"type:varchar(20)" json:"discount_type"` // 'percentage' or 'flat'
	DiscountValue float64 `gorm:"type:decimal(10,2);default:0.0" json:"discount_value"`
	DiscountNote  string  `json:"discount_note"`

	CustomLineItems LineItemList `gorm:"type:jsonb;default:'[]'" json:"custom_line_items"`

	// Breakdown item names the admin removed while customizing the package
	RemovedItems       StringList `gorm:"type:jsonb;default:'[]'" json:"removed_items"`
	CustomizationNote  string     `json:"customization_note"`

	TotalPrice float64 `gorm:"type:decimal(10,2);not null" json:"total_price"`
	// Admin forced an explicit total instead of the derived one
	TotalOverride bool `gorm:"default:false" json:"total_override"`

	ContractID *uuid.UUID `gorm:"type:uuid" json:"contract_id"`
	InvoiceID  *uuid.UUID `gorm:"type:uuid" json:"invoice_id"`

	DepositDuePolicy string     `gorm:"type:varchar(20);default:'upon_receipt'" json:"deposit_due_policy"`
	BalanceDuePolicy string     `gorm:"type:varchar(20);default:'7_days_before'" json:"balance_due_policy"`
	CustomDepositDue *time.Time `json:"custom_deposit_due"`
	CustomBalanceDue *time.Time `json:"custom_balance_due"`

	gorm.Model `json:"-"`
}
