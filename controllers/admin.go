package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"djquote-backend/config"
	"djquote-backend/models"
	"djquote-backend/pricing"
	"djquote-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UpcomingEvent struct {
	Name      string `json:"name"`
	EventType string `json:"eventType"`
	Date      string `json:"date"` // e.g. "Tomorrow", "3 days"
}

type RecentLead struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	EventType string    `json:"eventType"`
	CreatedAt string    `json:"createdAt"` // e.g. "Today", "Yesterday"
}

// GetAdminOverview serves GET /admin/overview
func GetAdminOverview(c *gin.Context) {
	var totalLeads int64
	config.DB.Model(&models.Lead{}).Where("deleted_at IS NULL").Count(&totalLeads)

	var totalQuotes int64
	config.DB.Model(&models.QuoteSelection{}).Where("deleted_at IS NULL").Count(&totalQuotes)

	// This month's collected revenue
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	var monthlyRevenue float64
	config.DB.Model(&models.Payment{}).
		Where("created_at >= ? AND status IN ?", firstOfMonth, []string{"Paid", "paid", "succeeded", "completed"}).
		Select("COALESCE(SUM(amount), 0)").Scan(&monthlyRevenue)

	// Outstanding across all quotes with a saved total
	var totalQuoted float64
	config.DB.Model(&models.QuoteSelection{}).
		Where("deleted_at IS NULL").
		Select("COALESCE(SUM(total_price), 0)").Scan(&totalQuoted)
	var totalCollected float64
	config.DB.Model(&models.Payment{}).
		Where("status IN ?", []string{"Paid", "paid", "succeeded", "completed"}).
		Select("COALESCE(SUM(amount), 0)").Scan(&totalCollected)
	outstanding := pricing.OutstandingBalance(totalQuoted, totalCollected)

	// Recent leads (last 5)
	var leads []models.Lead
	config.DB.Order("created_at DESC").Limit(5).Find(&leads)
	recentLeads := make([]RecentLead, 0, len(leads))
	for _, lead := range leads {
		daysAgo := int(time.Since(lead.CreatedAt).Hours() / 24)
		var label string
		switch daysAgo {
		case 0:
			label = "Today"
		case 1:
			label = "Yesterday"
		default:
			label = fmt.Sprintf("%d days ago", daysAgo)
		}
		recentLeads = append(recentLeads, RecentLead{
			ID:        lead.ID,
			Name:      lead.Name,
			EventType: lead.EventType,
			CreatedAt: label,
		})
	}

	// Upcoming events (next 30 days)
	var upcoming []models.Lead
	config.DB.Where("event_date IS NOT NULL AND event_date BETWEEN ? AND ?",
		now, now.AddDate(0, 0, 30)).
		Order("event_date ASC").Limit(7).Find(&upcoming)
	upcomingEvents := make([]UpcomingEvent, 0, len(upcoming))
	for _, lead := range upcoming {
		daysUntil := utils.DaysBetween(now, *lead.EventDate)
		var label string
		switch daysUntil {
		case 0:
			label = "Today"
		case 1:
			label = "Tomorrow"
		default:
			label = fmt.Sprintf("%d days", daysUntil)
		}
		upcomingEvents = append(upcomingEvents, UpcomingEvent{
			Name:      lead.Name,
			EventType: lead.EventType,
			Date:      label,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"totalLeads":         totalLeads,
		"totalQuotes":        totalQuotes,
		"monthlyRevenue":     monthlyRevenue,
		"outstandingBalance": outstanding,
		"recentLeads":        recentLeads,
		"upcomingEvents":     upcomingEvents,
	})
}

// ListLeads serves GET /admin/leads
func ListLeads(c *gin.Context) {
	var leads []models.Lead
	query := config.DB.Order("created_at DESC")
	if eventType := c.Query("eventType"); eventType != "" {
		query = query.Where("event_type = ?", eventType)
	}
	if err := query.Find(&leads).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"leads": leads})
}

// FindQuestionnaire serves GET /admin/questionnaires/find?email=
func FindQuestionnaire(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "email query parameter required")
		return
	}

	var leads []models.Lead
	if err := config.DB.Where("email = ?", email).Find(&leads).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	results := make([]gin.H, 0, len(leads))
	for _, lead := range leads {
		var q models.Questionnaire
		if err := config.DB.Where("lead_id = ?", lead.ID).First(&q).Error; err != nil {
			continue
		}
		results = append(results, gin.H{"lead": lead, "questionnaire": q})
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// ListSubmissionLogs serves GET /admin/questionnaires/submission-logs
func ListSubmissionLogs(c *gin.Context) {
	var logs []models.QuestionnaireSubmissionLog
	query := config.DB.Order("created_at DESC").Limit(200)
	if leadID := c.Query("leadId"); leadID != "" {
		query = query.Where("lead_id = ?", leadID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("submission_status = ?", status)
	}
	if err := query.Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// PricingConfigInput defines an admin pricing override
type PricingConfigInput struct {
	ItemKind      string   `json:"itemKind" binding:"required,oneof=package addon"`
	ItemID        string   `json:"itemId" binding:"required"`
	EventCategory string   `json:"eventCategory"`
	Price         *float64 `json:"price" binding:"omitempty,min=0"`
	ALaCartePrice *float64 `json:"aLaCartePrice" binding:"omitempty,min=0"`
	Description   *string  `json:"description"`
	IsActive      *bool    `json:"isActive"`
}

// ListPricingConfigs serves GET /admin/pricing-configs
func ListPricingConfigs(c *gin.Context) {
	var configs []models.PricingConfig
	if err := config.DB.Find(&configs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"pricingConfigs": configs})
}

// CreatePricingConfig serves POST /admin/pricing-configs
func CreatePricingConfig(c *gin.Context) {
	var input PricingConfigInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	cfg := models.PricingConfig{
		ItemKind:      input.ItemKind,
		ItemID:        input.ItemID,
		EventCategory: input.EventCategory,
		Price:         input.Price,
		ALaCartePrice: input.ALaCartePrice,
		Description:   input.Description,
		IsActive:      true,
	}
	if input.IsActive != nil {
		cfg.IsActive = *input.IsActive
	}

	if err := config.DB.Create(&cfg).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create pricing config")
		return
	}

	invalidatePricingConfigCache()
	c.JSON(http.StatusCreated, gin.H{"pricingConfig": cfg})
}

// UpdatePricingConfig serves PUT /admin/pricing-configs/:id
func UpdatePricingConfig(c *gin.Context) {
	configID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid pricing config ID format")
		return
	}

	var cfg models.PricingConfig
	if err := config.DB.First(&cfg, "id = ?", configID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Pricing config not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input PricingConfigInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	cfg.ItemKind = input.ItemKind
	cfg.ItemID = input.ItemID
	cfg.EventCategory = input.EventCategory
	cfg.Price = input.Price
	cfg.ALaCartePrice = input.ALaCartePrice
	cfg.Description = input.Description
	if input.IsActive != nil {
		cfg.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&cfg).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update pricing config")
		return
	}

	invalidatePricingConfigCache()
	c.JSON(http.StatusOK, gin.H{"pricingConfig": cfg})
}

// DeletePricingConfig serves DELETE /admin/pricing-configs/:id
func DeletePricingConfig(c *gin.Context) {
	configID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid pricing config ID format")
		return
	}

	result := config.DB.Delete(&models.PricingConfig{}, "id = ?", configID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete pricing config")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Pricing config not found")
		return
	}

	invalidatePricingConfigCache()
	c.JSON(http.StatusOK, gin.H{"message": "Pricing config deleted"})
}
