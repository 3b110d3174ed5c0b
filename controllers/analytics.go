package controllers

import (
	"log"
	"net/http"
	"time"

	"djquote-backend/config"
	"djquote-backend/models"
	"djquote-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TrackViewInput is the beacon body sent by the funnel pages
type TrackViewInput struct {
	LeadID  uuid.UUID `json:"leadId" binding:"required"`
	Source  string    `json:"source"`
	Channel string    `json:"channel"`
}

// TrackQuotePageView serves POST /api/analytics/quote-page-view.
// Beacons are fire-and-forget: insert failures are logged and the
// response is 202 either way.
func TrackQuotePageView(c *gin.Context) {
	var input TrackViewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	view := models.QuotePageView{
		LeadID:   input.LeadID,
		Source:   input.Source,
		ViewedAt: time.Now(),
	}
	if err := config.DB.Create(&view).Error; err != nil {
		log.Printf("quote page view insert failed for lead %s: %v", input.LeadID, err)
	}

	c.JSON(http.StatusAccepted, gin.H{"tracked": true})
}

// TrackFollowupView serves POST /api/followups/track-view
func TrackFollowupView(c *gin.Context) {
	var input TrackViewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	channel := input.Channel
	if channel == "" {
		channel = "sms"
	}
	view := models.FollowupView{
		LeadID:   input.LeadID,
		Channel:  channel,
		ViewedAt: time.Now(),
	}
	if err := config.DB.Create(&view).Error; err != nil {
		log.Printf("followup view insert failed for lead %s: %v", input.LeadID, err)
	}

	c.JSON(http.StatusAccepted, gin.H{"tracked": true})
}
