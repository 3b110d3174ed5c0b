package controllers

import (
	"errors"
	"net/http"
	"time"

	"djquote-backend/config"
	"djquote-backend/models"
	"djquote-backend/questionnaire"
	"djquote-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SaveQuestionnaireInput carries a partial or complete answer set
type SaveQuestionnaireInput struct {
	LeadID         uuid.UUID `json:"leadId" binding:"required"`
	IsComplete     bool      `json:"isComplete"`
	IdempotencyKey string    `json:"idempotencyKey"`

	BigNoSongs        string            `json:"bigNoSongs"`
	SpecialDances     []string          `json:"specialDances"`
	SpecialDanceSongs map[string]string `json:"specialDanceSongs"`
	PlaylistLinks     map[string]string `json:"playlistLinks"`
	CeremonyMusicType string            `json:"ceremonyMusicType"`
	CeremonyMusic     map[string]string `json:"ceremonyMusic"`
	MCIntroduction    string            `json:"mcIntroduction"`
}

func (i SaveQuestionnaireInput) form() questionnaire.Form {
	return questionnaire.Form{
		BigNoSongs:        i.BigNoSongs,
		SpecialDances:     i.SpecialDances,
		SpecialDanceSongs: i.SpecialDanceSongs,
		PlaylistLinks:     i.PlaylistLinks,
		CeremonyMusicType: i.CeremonyMusicType,
		CeremonyMusic:     i.CeremonyMusic,
		MCIntroduction:    i.MCIntroduction,
	}
}

func toJSONB(m map[string]string) models.JSONB {
	out := models.JSONB{}
	for k, v := range m {
		out[k] = v
	}
	return out
}

func fromJSONB(m models.JSONB) map[string]string {
	out := map[string]string{}
	for k, v := range m {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

func storedForm(q *models.Questionnaire) questionnaire.Form {
	return questionnaire.Form{
		BigNoSongs:        q.BigNoSongs,
		SpecialDances:     q.SpecialDances,
		SpecialDanceSongs: fromJSONB(q.SpecialDanceSongs),
		PlaylistLinks:     fromJSONB(q.PlaylistLinks),
		CeremonyMusicType: q.CeremonyMusicType,
		CeremonyMusic:     fromJSONB(q.CeremonyMusic),
		MCIntroduction:    q.MCIntroduction,
	}
}

// logSubmission records one save attempt, successful or not.
func logSubmission(input SaveQuestionnaireInput, status, errorType, errorMessage string) {
	entry := models.QuestionnaireSubmissionLog{
		LeadID:           input.LeadID,
		SubmissionStatus: status,
		IsComplete:       input.IsComplete,
		RequestData: models.JSONB{
			"bigNoSongs":        input.BigNoSongs,
			"specialDances":     input.SpecialDances,
			"ceremonyMusicType": input.CeremonyMusicType,
			"mcIntroduction":    input.MCIntroduction,
		},
		ErrorType:      errorType,
		ErrorMessage:   errorMessage,
		IdempotencyKey: input.IdempotencyKey,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		// Logging must never block the save path
		return
	}
}

// SaveQuestionnaire serves POST /api/questionnaire/save.
// Partial saves land with isComplete=false (autosave / "finish later");
// complete submissions must carry at least one answer.
func SaveQuestionnaire(c *gin.Context) {
	var input SaveQuestionnaireInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Replays of an already-successful submission return the stored row
	if input.IdempotencyKey != "" {
		var prior models.QuestionnaireSubmissionLog
		err := config.DB.Where("idempotency_key = ? AND submission_status = ?",
			input.IdempotencyKey, "success").First(&prior).Error
		if err == nil {
			var existing models.Questionnaire
			if err := config.DB.Where("lead_id = ?", input.LeadID).First(&existing).Error; err == nil {
				c.JSON(http.StatusOK, gin.H{"questionnaire": existing, "replayed": true})
				return
			}
		}
	}

	var lead models.Lead
	if err := config.DB.First(&lead, "id = ?", input.LeadID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logSubmission(input, "failed", "validation", "lead not found")
			utils.RespondWithError(c, http.StatusBadRequest, "Lead not found")
		} else {
			logSubmission(input, "failed", "database", err.Error())
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	form := input.form()
	if input.IsComplete && form.IsEmpty() {
		logSubmission(input, "failed", "validation", "complete submission with no answers")
		utils.RespondWithError(c, http.StatusBadRequest, "Cannot submit an empty questionnaire")
		return
	}

	var q models.Questionnaire
	err := config.DB.Where("lead_id = ?", input.LeadID).First(&q).Error
	isNew := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !isNew {
		logSubmission(input, "failed", "database", err.Error())
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	if isNew {
		q = models.Questionnaire{
			ID:     uuid.New(),
			LeadID: input.LeadID,
		}
	}

	q.BigNoSongs = input.BigNoSongs
	q.SpecialDances = input.SpecialDances
	q.SpecialDanceSongs = toJSONB(input.SpecialDanceSongs)
	q.PlaylistLinks = toJSONB(input.PlaylistLinks)
	q.CeremonyMusicType = input.CeremonyMusicType
	q.CeremonyMusic = toJSONB(input.CeremonyMusic)
	q.MCIntroduction = input.MCIntroduction
	q.IsComplete = input.IsComplete
	if input.IsComplete {
		now := time.Now()
		q.SubmittedAt = &now
	} else {
		q.SubmittedAt = nil
	}

	if err := config.DB.Save(&q).Error; err != nil {
		logSubmission(input, "failed", "database", err.Error())
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save questionnaire")
		return
	}

	logSubmission(input, "success", "", "")

	status := http.StatusOK
	if isNew {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"questionnaire": q})
}

// GetQuestionnaire serves GET /api/questionnaire/get?leadId=
func GetQuestionnaire(c *gin.Context) {
	leadID, err := uuid.Parse(c.Query("leadId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid lead ID format")
		return
	}

	var lead models.Lead
	if err := config.DB.First(&lead, "id = ?", leadID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Lead not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	cfg := questionnaire.ConfigFor(lead.EventType)

	var q models.Questionnaire
	if err := config.DB.Where("lead_id = ?", leadID).First(&q).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"questionnaire": nil, "config": cfg})
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"questionnaire": q, "config": cfg})
}

// leadHasCeremonyAudio checks whether the saved quote bundles ceremony
// sound, either in the package or as an add-on.
func leadHasCeremonyAudio(leadID uuid.UUID) bool {
	var quote models.QuoteSelection
	if err := config.DB.Where("lead_id = ?", leadID).First(&quote).Error; err != nil {
		// No quote yet; show the full wizard rather than hiding steps
		return true
	}
	if quote.PackageID == "package2" || quote.PackageID == "package3" {
		return true
	}
	for _, addon := range quote.Addons {
		if addon.ID == "ceremony_sound" {
			return true
		}
	}
	return false
}

// GetQuestionnaireSteps serves GET /api/questionnaire/steps?leadId=
// Supports focused=true (only incomplete steps) and ceremonyAudio=false.
func GetQuestionnaireSteps(c *gin.Context) {
	leadID, err := uuid.Parse(c.Query("leadId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid lead ID format")
		return
	}

	var lead models.Lead
	if err := config.DB.First(&lead, "id = ?", leadID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Lead not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	cfg := questionnaire.ConfigFor(lead.EventType)

	var form questionnaire.Form
	var q models.Questionnaire
	if err := config.DB.Where("lead_id = ?", leadID).First(&q).Error; err == nil {
		form = storedForm(&q)
	}

	opts := questionnaire.PlanOptions{
		CeremonyAudio: leadHasCeremonyAudio(leadID),
		Focused:       c.Query("focused") == "true",
	}
	if c.Query("ceremonyAudio") == "false" {
		opts.CeremonyAudio = false
	}

	c.JSON(http.StatusOK, gin.H{
		"config": cfg,
		"steps":  questionnaire.BuildPlan(cfg, form, opts),
	})
}
