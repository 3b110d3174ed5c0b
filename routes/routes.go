package routes

import (
	"os"
	"strings"

	"djquote-backend/config"
	"djquote-backend/controllers"
	"djquote-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func allowedOrigins() []string {
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		return strings.Split(env, ",")
	}
	return []string{"http://localhost:3000"}
}

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := allowedOrigins()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	// Customer-facing funnel routes; links carry opaque lead UUIDs
	api := r.Group("/api")
	{
		leads := api.Group("/leads")
		{
			leads.POST("", controllers.CreateLead)
			leads.GET("/get-lead", controllers.GetLeadByQuery)
			leads.GET("/:id", controllers.GetLead)
			leads.PATCH("/:id", controllers.UpdateLead)
		}

		api.GET("/catalog", controllers.GetCatalog)

		quote := api.Group("/quote")
		{
			quote.POST("/save", controllers.SaveQuote)
			quote.DELETE("/delete", controllers.DeleteQuote)
			quote.GET("/:id", controllers.GetQuote)
			quote.POST("/:id/update-invoice", utils.AuthMiddleware(), controllers.UpdateQuoteInvoice)
		}

		api.POST("/discount/validate", controllers.ValidateDiscount)

		api.GET("/invoices/:id", controllers.GetInvoice)
		api.GET("/contracts/:id", controllers.GetContract)

		api.GET("/payments", controllers.ListPayments)
		api.POST("/payments", controllers.RecordPayment)

		questionnaire := api.Group("/questionnaire")
		{
			questionnaire.POST("/save", controllers.SaveQuestionnaire)
			questionnaire.GET("/get", controllers.GetQuestionnaire)
			questionnaire.GET("/steps", controllers.GetQuestionnaireSteps)
		}

		walkthrough := api.Group("/walkthrough")
		{
			walkthrough.GET("/questions", controllers.GetWalkthroughQuestions)
			walkthrough.POST("/recommend", controllers.RecommendPackage)
		}

		api.POST("/analytics/quote-page-view", controllers.TrackQuotePageView)
		api.POST("/followups/track-view", controllers.TrackFollowupView)

		api.POST("/youtube/search", controllers.SearchSong)
	}

	// Staff-only routes
	admin := r.Group("/admin")
	admin.Use(utils.AuthMiddleware())
	{
		admin.GET("/overview", controllers.GetAdminOverview)
		admin.GET("/leads", controllers.ListLeads)
		admin.GET("/questionnaires/find", controllers.FindQuestionnaire)
		admin.GET("/questionnaires/submission-logs", controllers.ListSubmissionLogs)

		pricing := admin.Group("/pricing-configs")
		{
			pricing.GET("", controllers.ListPricingConfigs)
			pricing.POST("", controllers.CreatePricingConfig)
			pricing.PUT("/:id", controllers.UpdatePricingConfig)
			pricing.DELETE("/:id", controllers.DeletePricingConfig)
		}
	}

	return r
}
