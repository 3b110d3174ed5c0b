package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Questionnaire struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	LeadID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"lead_id"`

	BigNoSongs        string     `gorm:"type:text" json:"bigNoSongs"`
	SpecialDances     StringList `gorm:"type:jsonb;default:'[]'" json:"specialDances"`
	SpecialDanceSongs JSONB      `gorm:"type:jsonb;default:'{}'" json:"specialDanceSongs"`
	PlaylistLinks     JSONB      `gorm:"type:jsonb;default:'{}'" json:"playlistLinks"`
	CeremonyMusicType string     `gorm:"type:varchar(20)" json:"ceremonyMusicType"` // pre_recorded, live_musician, both
	CeremonyMusic     JSONB      `gorm:"type:jsonb;default:'{}'" json:"ceremonyMusic"`
	MCIntroduction    string     `gorm:"type:text" json:"mcIntroduction"`

	IsComplete  bool       `gorm:"default:false" json:"isComplete"`
	SubmittedAt *time.Time `json:"submittedAt"`

	gorm.Model `json:"-"`
}

// QuestionnaireSubmissionLog records every save attempt, successful or not
type QuestionnaireSubmissionLog struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	LeadID uuid.UUID `gorm:"type:uuid;index" json:"lead_id"`

	SubmissionStatus string `gorm:"type:varchar(20)" json:"submission_status"` // attempted, success, failed
	IsComplete       bool   `json:"is_complete"`
	RequestData      JSONB  `gorm:"type:jsonb;default:'{}'" json:"request_data"`

	ErrorType    string `gorm:"type:varchar(20)" json:"error_type"` // network, database, validation, unknown
	ErrorMessage string `gorm:"type:text" json:"error_message"`

	IdempotencyKey string    `gorm:"index" json:"idempotency_key"`
	CreatedAt      time.Time `json:"created_at"`
}

func (l *QuestionnaireSubmissionLog) BeforeCreate(tx *gorm.DB) (err error) {
	l.ID = uuid.New()
	return
}
