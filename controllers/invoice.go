package controllers

import (
	"errors"
	"net/http"

	"djquote-backend/catalog"
	"djquote-backend/config"
	"djquote-backend/models"
	"djquote-backend/pricing"
	"djquote-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetInvoice serves GET /api/invoices/:id with the stored row plus the
// derived presentation: bundled line items, discount, due dates and the
// deposit schedule.
func GetInvoice(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	var invoice models.Invoice
	if err := config.DB.First(&invoice, "id = ?", invoiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var lead models.Lead
	if err := config.DB.First(&lead, "id = ?", invoice.LeadID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	var quote models.QuoteSelection
	if err := config.DB.First(&quote, "id = ?", invoice.QuoteID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	subtotal, discount, total := computeQuoteTotal(&quote)
	if quote.TotalOverride {
		total = quote.TotalPrice
	}

	var payments []models.Payment
	config.DB.Where("lead_id = ?", lead.ID).Find(&payments)
	records := make([]pricing.PaymentRecord, 0, len(payments))
	for _, p := range payments {
		records = append(records, pricing.PaymentRecord{Amount: p.Amount, Status: p.Status})
	}
	schedule := pricing.PaymentSchedule(total, pricing.TotalPaid(records))

	resp := gin.H{
		"invoice": invoice,
		"quote":   quote,
		"lead": gin.H{
			"id":        lead.ID,
			"name":      lead.Name,
			"eventType": lead.EventType,
			"eventDate": lead.EventDate,
			"venueName": lead.VenueName,
		},
		"subtotal":   subtotal,
		"discount":   discount,
		"total":      total,
		"schedule":   schedule,
		"depositDue": pricing.DueDate(quote.DepositDuePolicy, invoice.InvoiceDate, lead.EventDate, quote.CustomDepositDue),
		"balanceDue": pricing.DueDate(quote.BalanceDuePolicy, invoice.InvoiceDate, lead.EventDate, quote.CustomBalanceDue),
	}

	if invoice.ShowBreakdown {
		category := pricing.Category(lead.EventType)
		if pkg, ok := catalog.FindPackage(category, quote.PackageID); ok {
			price, _, kept := pricing.CustomizeBreakdown(pkg, quote.RemovedItems)
			if quote.TotalOverride {
				price = quote.TotalPrice
			}
			resp["breakdown"] = pricing.AllocateBundled(kept, price)
		}
	}

	c.JSON(http.StatusOK, resp)
}

// GetContract serves GET /api/contracts/:id
func GetContract(c *gin.Context) {
	contractID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid contract ID format")
		return
	}

	var contract models.Contract
	if err := config.DB.First(&contract, "id = ?", contractID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Contract not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var lead models.Lead
	if err := config.DB.First(&lead, "id = ?", contract.LeadID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contract": contract,
		"lead": gin.H{
			"id":        lead.ID,
			"name":      lead.Name,
			"eventType": lead.EventType,
			"eventDate": lead.EventDate,
		},
	})
}
