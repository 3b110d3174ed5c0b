package models

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	LeadID    uuid.UUID  `gorm:"type:uuid;index;not null" json:"lead_id"`
	InvoiceID *uuid.UUID `gorm:"type:uuid;index" json:"invoice_id"`

	Amount float64 `gorm:"type:decimal(10,2);not null" json:"amount"`
	Status string  `gorm:"type:varchar(20);not null" json:"status"`
	Method string  `json:"method"`

	// Opaque processor references (Stripe-style)
	PaymentIntent string `json:"payment_intent"`
	SessionID     string `json:"session_id"`

	PaidAt *time.Time `json:"paid_at"`

	CreatedAt time.Time `json:"created_at"`
}
