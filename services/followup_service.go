// services/followup_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"djquote-backend/models"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// FollowupService texts leads who looked at their quote page but never
// saved a selection. One message per lead, ever.
type FollowupService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewFollowupService(db *gorm.DB) *FollowupService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &FollowupService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *FollowupService) StartScheduler() {
	c := cron.New()

	// Run every day at 10 AM
	c.AddFunc("0 10 * * *", func() {
		s.SendAbandonedQuoteFollowups()
	})

	c.Start()
	log.Println("Followup scheduler started")
}

// abandonedAfterDays is how long a viewed quote sits untouched before
// the followup goes out. Overridable via FOLLOWUP_AFTER_DAYS.
func abandonedAfterDays() int {
	if env := os.Getenv("FOLLOWUP_AFTER_DAYS"); env != "" {
		if d, err := strconv.Atoi(env); err == nil && d > 0 {
			return d
		}
	}
	return 3
}

func (s *FollowupService) SendAbandonedQuoteFollowups() {
	log.Println("Starting abandoned-quote followup processing...")

	cutoff := time.Now().AddDate(0, 0, -abandonedAfterDays())

	// Leads whose last quote-page view is older than the cutoff, with no
	// saved quote, no prior followup, and no opt-out
	var leads []models.Lead
	err := s.db.Raw(`
		SELECT l.* FROM leads l
		WHERE l.deleted_at IS NULL
		AND l.opt_out_followups = false
		AND l.phone <> ''
		AND EXISTS (
			SELECT 1 FROM quote_page_views v
			WHERE v.lead_id = l.id
			GROUP BY v.lead_id
			HAVING MAX(v.viewed_at) < ?
		)
		AND NOT EXISTS (
			SELECT 1 FROM quote_selections q
			WHERE q.lead_id = l.id AND q.deleted_at IS NULL
		)
		AND NOT EXISTS (
			SELECT 1 FROM followup_logs f
			WHERE f.lead_id = l.id AND f.status = 'sent'
		)
	`, cutoff).Scan(&leads).Error
	if err != nil {
		log.Printf("Failed to fetch abandoned leads: %v", err)
		return
	}

	for _, lead := range leads {
		s.sendFollowup(lead)
	}

	log.Printf("Abandoned-quote followup processing completed (%d leads)", len(leads))
}

func (s *FollowupService) sendFollowup(lead models.Lead) {
	message := fmt.Sprintf(
		"Hi %s! Your custom DJ quote for your %s is still waiting for you. Reply STOP to opt out, or view your quote any time from the link we sent you.",
		lead.Name, lead.EventType)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(lead.Phone)
	params.SetBody(message)
	params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send followup to %s: %v", lead.Phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Followup sent to %s, SID: %s", lead.Phone, *resp.Sid)
	} else {
		log.Printf("Followup sent to %s, but no SID returned", lead.Phone)
	}

	followupLog := models.FollowupLog{
		LeadID:       lead.ID,
		Message:      message,
		Status:       status,
		ErrorMessage: errorMsg,
		Channel:      "sms",
		SentAt:       time.Now(),
	}

	if err := s.db.Create(&followupLog).Error; err != nil {
		log.Printf("Failed to log followup for lead %s: %v", lead.ID, err)
	}
}
