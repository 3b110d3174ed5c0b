package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuotePageView is one beacon hit on the quote page; feeds the
// abandoned-quote followup job.
type QuotePageView struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	LeadID   uuid.UUID `gorm:"type:uuid;index;not null" json:"lead_id"`
	Source   string    `json:"source"`
	ViewedAt time.Time `json:"viewed_at"`
}

func (v *QuotePageView) BeforeCreate(tx *gorm.DB) (err error) {
	v.ID = uuid.New()
	return
}

// FollowupView tracks a lead opening a followup message link
type FollowupView struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	LeadID   uuid.UUID `gorm:"type:uuid;index;not null" json:"lead_id"`
	Channel  string    `gorm:"type:varchar(20)" json:"channel"` // sms, email
	ViewedAt time.Time `json:"viewed_at"`
}

func (v *FollowupView) BeforeCreate(tx *gorm.DB) (err error) {
	v.ID = uuid.New()
	return
}

// FollowupLog records each outbound followup send attempt
type FollowupLog struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	LeadID uuid.UUID `gorm:"type:uuid;index;not null" json:"lead_id"`

	Message      string `gorm:"type:text" json:"message"`
	Status       string `gorm:"type:varchar(20)" json:"status"` // sent, failed
	ErrorMessage string `gorm:"type:text" json:"error_message"`
	Channel      string `gorm:"type:varchar(20)" json:"channel"` // sms

	SentAt    time.Time `json:"sent_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (f *FollowupLog) BeforeCreate(tx *gorm.DB) (err error) {
	f.ID = uuid.New()
	return
}
