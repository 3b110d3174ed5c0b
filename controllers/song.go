package controllers

import (
	"log"
	"net/http"

	"djquote-backend/services"
	"djquote-backend/utils"

	"github.com/gin-gonic/gin"
)

// SongSearchInput is the free-form song string to normalize
type SongSearchInput struct {
	Query string `json:"query" binding:"required"`
}

// SearchSong serves POST /api/youtube/search. Lookup failures return
// the raw query unchanged so the questionnaire never blocks on it.
func SearchSong(c *gin.Context) {
	var input SongSearchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	results, err := services.SearchSong(c.Request.Context(), input.Query)
	if err != nil {
		log.Printf("song search failed for %q: %v", input.Query, err)
		c.JSON(http.StatusOK, gin.H{
			"query":   input.Query,
			"results": []services.SongResult{},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":   input.Query,
		"results": results,
	})
}
