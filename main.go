package main

import (
	"fmt"
	"log"
	"os"

	"djquote-backend/config"
	"djquote-backend/models"
	"djquote-backend/routes"
	"djquote-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()
	config.ConnectCache()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Lead{},
		&models.QuoteSelection{},
		&models.Invoice{},
		&models.Contract{},
		&models.Payment{},
		&models.Questionnaire{},
		&models.QuestionnaireSubmissionLog{},
		&models.QuotePageView{},
		&models.FollowupView{},
		&models.FollowupLog{},
		&models.PricingConfig{},
	)
}

func main() {
	followups := services.NewFollowupService(config.DB)
	followups.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
