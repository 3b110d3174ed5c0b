package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"djquote-backend/catalog"
	"djquote-backend/config"
	"djquote-backend/models"
	"djquote-backend/pricing"

	"github.com/gin-gonic/gin"
)

const pricingConfigCacheKey = "pricing_configs:active"

// loadPricingConfigs returns the active overrides, going through redis
// when available. Failures fall back to the static catalog untouched.
func loadPricingConfigs() []models.PricingConfig {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if config.Cache != nil {
		if raw, err := config.Cache.Get(ctx, pricingConfigCacheKey).Bytes(); err == nil {
			var cached []models.PricingConfig
			if json.Unmarshal(raw, &cached) == nil {
				return cached
			}
		}
	}

	var configs []models.PricingConfig
	if err := config.DB.Where("is_active = ?", true).Find(&configs).Error; err != nil {
		log.Printf("pricing config lookup failed, using static catalog: %v", err)
		return nil
	}

	if config.Cache != nil {
		if raw, err := json.Marshal(configs); err == nil {
			if err := config.Cache.Set(ctx, pricingConfigCacheKey, raw, 5*time.Minute).Err(); err != nil {
				log.Printf("pricing config cache write failed: %v", err)
			}
		}
	}
	return configs
}

func invalidatePricingConfigCache() {
	if config.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := config.Cache.Del(ctx, pricingConfigCacheKey).Err(); err != nil {
		log.Printf("pricing config cache invalidation failed: %v", err)
	}
}

// applyOverrides merges admin pricing overrides into the static catalog.
// Overrides match on item id; category-scoped overrides only apply to
// their own category, blank category applies everywhere.
func applyOverrides(category string, packages []catalog.Package, addons []catalog.Addon, overrides []models.PricingConfig) ([]catalog.Package, []catalog.Addon) {
	for _, o := range overrides {
		if o.EventCategory != "" && o.EventCategory != category {
			continue
		}
		switch o.ItemKind {
		case "package":
			for i := range packages {
				if packages[i].ID != o.ItemID {
					continue
				}
				if o.Price != nil {
					packages[i].Price = *o.Price
				}
				if o.ALaCartePrice != nil {
					packages[i].ALaCartePrice = *o.ALaCartePrice
				}
				if o.Description != nil {
					packages[i].Description = *o.Description
				}
			}
		case "addon":
			for i := range addons {
				if addons[i].ID != o.ItemID {
					continue
				}
				if o.Price != nil {
					addons[i].Price = *o.Price
				}
				if o.Description != nil {
					addons[i].Description = *o.Description
				}
			}
		}
	}
	return packages, addons
}

// GetCatalog serves GET /api/catalog?eventType=
func GetCatalog(c *gin.Context) {
	eventType := c.Query("eventType")
	category := pricing.Category(eventType)

	packages, addons := applyOverrides(category,
		catalog.Packages(category), catalog.Addons(category), loadPricingConfigs())

	var eventDate *time.Time
	if raw := c.Query("eventDate"); raw != "" {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			eventDate = &parsed
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"eventCategory":  category,
		"classification": pricing.Classify(eventType),
		"holidayTheme":   pricing.ThemeForEvent(eventType, eventDate),
		"packages":       packages,
		"addons":         addons,
	})
}
