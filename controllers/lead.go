package controllers

import (
	"errors"
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

// CreateLeadInput defines the expected JSON structure for creating a lead
type CreateLeadInput struct {
	Name      string     `json:"name" binding:"required"`
	Email     string     `json:"email" binding:"omitempty,email"`
	Phone     string     `json:"phone"`
	EventType string     `json:"eventType"`
	EventDate *time.Time `json:"eventDate"`
	Location  string     `json:"location"`
	VenueName string     `json:"venueName"`
}

// UpdateLeadInput defines the expected JSON structure for updating a lead
type UpdateLeadInput struct {
	Name            *string    `json:"name"`
	Email           *string    `json:"email" binding:"omitempty,email"`
	Phone           *string    `json:"phone"`
	EventType       *string    `json:"eventType"`
	EventDate       *time.Time `json:"eventDate"`
	Location        *string    `json:"location"`
	VenueName       *string    `json:"venueName"`
	OptOutFollowups *bool      `json:"optOutFollowups"`
}

// CreateLead registers a new lead from the contact funnel
func CreateLead(c *gin.Context) {
	var input CreateLeadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}

	lead := models.Lead{
		ID:        uuid.New(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		EventType: input.EventType,
		EventDate: input.EventDate,
		Location:  input.Location,
		VenueName: input.VenueName,
	}

	if err := config.DB.Create(&lead).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create lead")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"lead": lead})
}

func fetchLead(c *gin.Context, id string) (*models.Lead, bool) {
	leadID, err := uuid.Parse(id)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid lead ID format")
		return nil, false
	}

	var lead models.Lead
	if err := config.DB.First(&lead, "id = ?", leadID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Lead not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}
	return &lead, true
}

func leadResponse(lead *models.Lead) gin.H {
	classification := pricing.Classify(lead.EventType)
	return gin.H{
		"lead":           lead,
		"classification": classification,
		"eventCategory":  pricing.Category(lead.EventType),
		"holidayTheme":   pricing.ThemeForEvent(lead.EventType, lead.EventDate),
	}
}

// GetLeadByQuery serves GET /api/leads/get-lead?id=
func GetLeadByQuery(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "id query parameter required")
		return
	}
	lead, ok := fetchLead(c, id)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, leadResponse(lead))
}

// GetLead serves GET /api/leads/:id
func GetLead(c *gin.Context) {
	lead, ok := fetchLead(c, c.Param("id"))
	if !ok {
		return
	}
	c.JSON(http.StatusOK, leadResponse(lead))
}

// UpdateLead applies partial edits (venue, date, contact details)
func UpdateLead(c *gin.Context) {
	lead, ok := fetchLead(c, c.Param("id"))
	if !ok {
		return
	}

	var input UpdateLeadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != nil && *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.EventType != nil {
		updates["event_type"] = *input.EventType
	}
	if input.EventDate != nil {
		updates["event_date"] = input.EventDate
	}
	if input.Location != nil {
		updates["location"] = *input.Location
	}
	if input.VenueName != nil {
		updates["venue_name"] = *input.VenueName
	}
	if input.OptOutFollowups != nil {
		updates["opt_out_followups"] = *input.OptOutFollowups
	}

	if len(updates) > 0 {
		if err := config.DB.Model(lead).Updates(updates).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update lead")
			return
		}
	}

	c.JSON(http.StatusOK, leadResponse(lead))
}
