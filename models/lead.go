package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Lead struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`

	Name      string     `gorm:"not null" json:"name"`
	Email     string     `gorm:"index" json:"email"`
	Phone     string     `json:"phone"`
	EventType string     `json:"eventType"`
	EventDate *time.Time `json:"eventDate"`
	Location  string     `json:"location"`
	VenueName string     `json:"venueName"`

	// Suppresses abandoned-quote followup texts
	OptOutFollowups bool `gorm:"default:false" json:"optOutFollowups"`

	Quote         *QuoteSelection `gorm:"foreignKey:LeadID" json:"quote,omitempty"`
	Questionnaire *Questionnaire  `gorm:"foreignKey:LeadID" json:"questionnaire,omitempty"`
	Payments      []Payment       `gorm:"foreignKey:LeadID" json:"payments,omitempty"`

	gorm.Model `json:"-"`
}
