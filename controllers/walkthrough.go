package controllers

import (
	"net/http"
	"strings"

	"djquote-backend/utils"
	"djquote-backend/walkthrough"

	"github.com/gin-gonic/gin"
)

// WalkthroughInput is a completed quiz answer sheet
type WalkthroughInput struct {
	EventType string              `json:"eventType"`
	Answers   walkthrough.Answers `json:"answers" binding:"required"`
}

// GetWalkthroughQuestions serves GET /api/walkthrough/questions?eventType=
func GetWalkthroughQuestions(c *gin.Context) {
	isWedding := strings.Contains(strings.ToLower(c.Query("eventType")), "wedding")
	c.JSON(http.StatusOK, gin.H{
		"isWedding": isWedding,
		"questions": walkthrough.Questions(isWedding),
	})
}

// RecommendPackage serves POST /api/walkthrough/recommend
func RecommendPackage(c *gin.Context) {
	var input WalkthroughInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	isWedding := strings.Contains(strings.ToLower(input.EventType), "wedding")
	c.JSON(http.StatusOK, gin.H{
		"recommendation": walkthrough.Recommend(input.Answers, isWedding),
	})
}
