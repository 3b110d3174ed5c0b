package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"djquote-backend/catalog"
	"djquote-backend/config"
	"djquote-backend/models"
	"djquote-backend/pricing"
	"djquote-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SaveQuoteInput defines the expected JSON structure for saving a quote
type SaveQuoteInput struct {
	LeadID    uuid.UUID `json:"leadId" binding:"required"`
	PackageID string    `json:"packageId" binding:"required"`
	AddonIDs  []string  `json:"addonIds"`
}

// UpdateQuoteInvoiceInput is the admin edit surface for a quote/invoice
type UpdateQuoteInvoiceInput struct {
	DiscountType  *string  `json:"discountType" binding:"omitempty,oneof=percentage flat"`
	DiscountValue *float64 `json:"discountValue" binding:"omitempty,min=0"`
	DiscountNote  *string  `json:"discountNote"`

	CustomLineItems   *[]models.CustomLineItem `json:"customLineItems"`
	RemovedItems      *[]string                `json:"removedItems"`
	CustomizationNote *string                  `json:"customizationNote"`

	TotalOverride *float64 `json:"totalOverride" binding:"omitempty,min=0"`
	ClearOverride bool     `json:"clearOverride"`

	DepositDuePolicy *string    `json:"depositDuePolicy"`
	BalanceDuePolicy *string    `json:"balanceDuePolicy"`
	CustomDepositDue *time.Time `json:"customDepositDue"`
	CustomBalanceDue *time.Time `json:"customBalanceDue"`

	ShowBreakdown    *bool   `json:"showBreakdown"`
	ShowPaymentTerms *bool   `json:"showPaymentTerms"`
	Notes            *string `json:"notes"`
}

// ValidateDiscountInput defines the discount validation request
type ValidateDiscountInput struct {
	DiscountType  string  `json:"discountType" binding:"required,oneof=percentage flat"`
	DiscountValue float64 `json:"discountValue" binding:"min=0"`
	Subtotal      float64 `json:"subtotal" binding:"min=0"`
}

// computeQuoteTotal derives the server-side total for a quote selection.
func computeQuoteTotal(quote *models.QuoteSelection) (subtotal, discount, total float64) {
	subtotal = quote.PackagePrice
	for _, addon := range quote.Addons {
		subtotal += addon.Price
	}
	for _, item := range quote.CustomLineItems {
		subtotal += item.Amount
	}
	discount = pricing.DiscountAmount(subtotal, quote.DiscountType, quote.DiscountValue)
	total = pricing.Total(subtotal, discount)
	return subtotal, discount, total
}

// SaveQuote creates or replaces the quote selection for a lead.
// Prices are resolved server-side from the catalog, never trusted from
// the request.
func SaveQuote(c *gin.Context) {
	var input SaveQuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var lead models.Lead
	if err := config.DB.First(&lead, "id = ?", input.LeadID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Lead not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	category := pricing.Category(lead.EventType)
	packages, addons := applyOverrides(category,
		catalog.Packages(category), catalog.Addons(category), loadPricingConfigs())

	var pkg *catalog.Package
	for i := range packages {
		if packages[i].ID == input.PackageID {
			pkg = &packages[i]
			break
		}
	}
	if pkg == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Package not found: "+input.PackageID)
		return
	}

	var selected models.AddonList
	for _, addonID := range input.AddonIDs {
		found := false
		for _, addon := range addons {
			if addon.ID == addonID {
				selected = append(selected, models.AddonSelection{ID: addon.ID, Name: addon.Name, Price: addon.Price})
				found = true
				break
			}
		}
		if !found {
			utils.RespondWithError(c, http.StatusBadRequest, "Add-on not found: "+addonID)
			return
		}
	}

	var quote models.QuoteSelection
	err := config.DB.Where("lead_id = ?", input.LeadID).First(&quote).Error
	isNew := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !isNew {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	if isNew {
		quote = models.QuoteSelection{
			ID:     uuid.New(),
			LeadID: input.LeadID,
		}
	}

	// Switching packages drops admin customizations made against the old one
	if quote.PackageID != pkg.ID {
		quote.RemovedItems = nil
		quote.CustomizationNote = ""
	}

	quote.PackageID = pkg.ID
	quote.PackageName = pkg.Name
	quote.PackagePrice = pkg.Price
	quote.Addons = selected

	if !quote.TotalOverride {
		_, _, total := computeQuoteTotal(&quote)
		quote.TotalPrice = total
	}

	if err := config.DB.Save(&quote).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save quote")
		return
	}

	status := http.StatusOK
	if isNew {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"quote": quote})
}

// quoteView assembles the derived figures shown on the quote page.
func quoteView(lead *models.Lead, quote *models.QuoteSelection) gin.H {
	subtotal, discount, total := computeQuoteTotal(quote)
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

	category := pricing.Category(lead.EventType)
	var breakdown []pricing.AllocatedItem
	if pkg, ok := catalog.FindPackage(category, quote.PackageID); ok {
		price, _, kept := pricing.CustomizeBreakdown(pkg, quote.RemovedItems)
		if quote.TotalOverride {
			price = quote.TotalPrice
		}
		breakdown = pricing.AllocateBundled(kept, price)
	}

	return gin.H{
		"quote":     quote,
		"subtotal":  subtotal,
		"discount":  discount,
		"total":     total,
		"schedule":  schedule,
		"breakdown": breakdown,
	}
}

// GetQuote serves GET /api/quote/:id where :id is the lead id
func GetQuote(c *gin.Context) {
	lead, ok := fetchLead(c, c.Param("id"))
	if !ok {
		return
	}

	var quote models.QuoteSelection
	if err := config.DB.Where("lead_id = ?", lead.ID).First(&quote).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "No quote saved for this lead")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, quoteView(lead, &quote))
}

// DeleteQuote serves DELETE /api/quote/delete?leadId=
func DeleteQuote(c *gin.Context) {
	leadID, err := uuid.Parse(c.Query("leadId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid lead ID format")
		return
	}

	result := config.DB.Where("lead_id = ?", leadID).Delete(&models.QuoteSelection{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete quote")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "No quote saved for this lead")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Quote deleted"})
}

// UpdateQuoteInvoice applies admin edits to a quote and its invoice,
// creating the invoice record on first touch.
func UpdateQuoteInvoice(c *gin.Context) {
	lead, ok := fetchLead(c, c.Param("id"))
	if !ok {
		return
	}

	var input UpdateQuoteInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.DepositDuePolicy != nil && !pricing.ValidPolicy(*input.DepositDuePolicy) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid deposit due policy")
		return
	}
	if input.BalanceDuePolicy != nil && !pricing.ValidPolicy(*input.BalanceDuePolicy) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid balance due policy")
		return
	}

	var quote models.QuoteSelection
	if err := config.DB.Where("lead_id = ?", lead.ID).First(&quote).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "No quote saved for this lead")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if input.DiscountType != nil {
		quote.DiscountType = *input.DiscountType
	}
	if input.DiscountValue != nil {
		quote.DiscountValue = *input.DiscountValue
	}
	if input.DiscountNote != nil {
		quote.DiscountNote = *input.DiscountNote
	}
	if input.CustomLineItems != nil {
		quote.CustomLineItems = *input.CustomLineItems
	}
	if input.RemovedItems != nil {
		quote.RemovedItems = *input.RemovedItems

		// Removing bundled items reprices the package from the base catalog
		category := pricing.Category(lead.EventType)
		if pkg, ok := catalog.FindPackage(category, quote.PackageID); ok {
			price, _, _ := pricing.CustomizeBreakdown(pkg, quote.RemovedItems)
			quote.PackagePrice = price
		}
	}
	if input.CustomizationNote != nil {
		quote.CustomizationNote = *input.CustomizationNote
	}
	if input.DepositDuePolicy != nil {
		quote.DepositDuePolicy = *input.DepositDuePolicy
	}
	if input.BalanceDuePolicy != nil {
		quote.BalanceDuePolicy = *input.BalanceDuePolicy
	}
	if input.CustomDepositDue != nil {
		quote.CustomDepositDue = input.CustomDepositDue
	}
	if input.CustomBalanceDue != nil {
		quote.CustomBalanceDue = input.CustomBalanceDue
	}

	switch {
	case input.TotalOverride != nil:
		quote.TotalOverride = true
		quote.TotalPrice = *input.TotalOverride
	case input.ClearOverride:
		quote.TotalOverride = false
		fallthrough
	default:
		if !quote.TotalOverride {
			_, _, total := computeQuoteTotal(&quote)
			quote.TotalPrice = total
		}
	}

	// Ensure an invoice exists for this quote
	var invoice models.Invoice
	if quote.InvoiceID != nil {
		if err := tx.First(&invoice, "id = ?", quote.InvoiceID).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
	} else {
		invoice = models.Invoice{
			ID:            uuid.New(),
			LeadID:        lead.ID,
			QuoteID:       quote.ID,
			InvoiceNumber: "INV-" + time.Now().Format("20060102") + "-" + utils.GenerateRandomString(6),
			InvoiceDate:   time.Now(),
			ShowBreakdown: true,
		}
		if err := tx.Create(&invoice).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create invoice")
			return
		}
		quote.InvoiceID = &invoice.ID
	}

	if input.ShowBreakdown != nil {
		invoice.ShowBreakdown = *input.ShowBreakdown
	}
	if input.ShowPaymentTerms != nil {
		invoice.ShowPaymentTerms = *input.ShowPaymentTerms
	}
	if input.Notes != nil {
		invoice.Notes = *input.Notes
	}

	balanceDue := pricing.DueDate(quote.BalanceDuePolicy, invoice.InvoiceDate, lead.EventDate, quote.CustomBalanceDue)
	invoice.DueDate = &balanceDue

	if err := tx.Save(&invoice).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update invoice")
		return
	}
	if err := tx.Save(&quote).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update quote")
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to commit changes")
		return
	}

	c.JSON(http.StatusOK, gin.H{"quote": quote, "invoice": invoice})
}

// ValidateDiscount serves POST /api/discount/validate
func ValidateDiscount(c *gin.Context) {
	var input ValidateDiscountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.DiscountType == pricing.DiscountPercentage && input.DiscountValue > 100 {
		utils.RespondWithError(c, http.StatusBadRequest, "Percentage discount cannot exceed 100")
		return
	}

	amount := pricing.DiscountAmount(input.Subtotal, input.DiscountType, input.DiscountValue)
	resp := gin.H{
		"valid":          true,
		"discountAmount": amount,
		"total":          pricing.Total(input.Subtotal, amount),
	}
	if input.DiscountType == pricing.DiscountFlat && input.DiscountValue > input.Subtotal {
		resp["warning"] = fmt.Sprintf("Flat discount %.2f exceeds subtotal %.2f; total will be clamped to 0", input.DiscountValue, input.Subtotal)
	}

	c.JSON(http.StatusOK, resp)
}
