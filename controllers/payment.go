package controllers

import (
	"net/http"
	"time"

	"djquote-backend/config"
	"djquote-backend/models"
	"djquote-backend/pricing"
	"djquote-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RecordPaymentInput mirrors what the payment processor webhook posts.
// Processor ids are stored opaquely; no charge is made here.
type RecordPaymentInput struct {
	LeadID        uuid.UUID  `json:"leadId" binding:"required"`
	InvoiceID     *uuid.UUID `json:"invoiceId"`
	Amount        float64    `json:"amount" binding:"required,gt=0"`
	Status        string     `json:"status" binding:"required"`
	Method        string     `json:"method"`
	PaymentIntent string     `json:"paymentIntent"`
	SessionID     string     `json:"sessionId"`
}

// ListPayments serves GET /api/payments?contact_id=
// An unresolvable contact returns an empty list and a zero-paid summary
// rather than an error; the quote page treats that as "nothing paid yet".
func ListPayments(c *gin.Context) {
	contactID := c.Query("contact_id")
	if contactID == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "contact_id query parameter required")
		return
	}

	leadID, err := uuid.Parse(contactID)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"payments": []models.Payment{},
			"summary":  pricing.PaymentSchedule(0, 0),
		})
		return
	}

	var payments []models.Payment
	if err := config.DB.Where("lead_id = ?", leadID).Order("created_at DESC").Find(&payments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	records := make([]pricing.PaymentRecord, 0, len(payments))
	for _, p := range payments {
		records = append(records, pricing.PaymentRecord{Amount: p.Amount, Status: p.Status})
	}

	var totalOwed float64
	var quote models.QuoteSelection
	if err := config.DB.Where("lead_id = ?", leadID).First(&quote).Error; err == nil {
		totalOwed = quote.TotalPrice
	}

	c.JSON(http.StatusOK, gin.H{
		"payments": payments,
		"summary":  pricing.PaymentSchedule(totalOwed, pricing.TotalPaid(records)),
	})
}

// RecordPayment inserts a payment row from the processor callback
func RecordPayment(c *gin.Context) {
	var input RecordPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	payment := models.Payment{
		ID:            uuid.New(),
		LeadID:        input.LeadID,
		InvoiceID:     input.InvoiceID,
		Amount:        input.Amount,
		Status:        input.Status,
		Method:        input.Method,
		PaymentIntent: input.PaymentIntent,
		SessionID:     input.SessionID,
	}
	if pricing.IsPaidStatus(input.Status) {
		now := time.Now()
		payment.PaidAt = &now
	}

	if err := config.DB.Create(&payment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record payment")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"payment": payment})
}
