package models

import (
	"time"

	"github.com/google/uuid"
)

type Invoice struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	LeadID  uuid.UUID `gorm:"type:uuid;index;not null" json:"lead_id"`
	QuoteID uuid.UUID `gorm:"type:uuid;index;not null" json:"quote_id"`

	InvoiceNumber string     `gorm:"uniqueIndex;not null" json:"invoice_number"`
	InvoiceDate   time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"invoice_date"`
	DueDate       *time.Time `json:"due_date"`

	// Display options the admin can toggle inline
	ShowBreakdown    bool   `gorm:"default:true" json:"show_breakdown"`
	ShowPaymentTerms bool   `gorm:"default:true" json:"show_payment_terms"`
	Notes            string `json:"notes"`
}

type Contract struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	LeadID  uuid.UUID `gorm:"type:uuid;index;not null" json:"lead_id"`
	QuoteID uuid.UUID `gorm:"type:uuid;index" json:"quote_id"`

	Status      string     `gorm:"type:varchar(20);default:'draft'" json:"status"` // draft, sent, signed
	SignedAt    *time.Time `json:"signed_at"`
	DocumentURL string     `json:"document_url"`
}
