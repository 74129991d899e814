package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"pxtown_backend/internal/model"
	"pxtown_backend/pkg/database"
)

// DashboardStats is the admin landing page summary.
type DashboardStats struct {
	TotalListings        int64             `json:"total_listings"`
	ActiveListings       int64             `json:"active_listings"`
	HiddenListings       int64             `json:"hidden_listings"`
	SoldListings         int64             `json:"sold_listings"`
	PendingConsultations int64             `json:"pending_consultations"`
	TotalViews           int64             `json:"total_views"`
	TopListings          []TopListing      `json:"top_listings"`
	ListingTypeStats     []ListingTypeStat `json:"listing_type_stats"`
}

type TopListing struct {
	ID     uint   `json:"id"`
	Title  string `json:"title"`
	Views  int64  `json:"views"`
	Price  int64  `json:"price"`
	Region string `json:"region"`
	Type   string `json:"type"`
}

type ListingTypeStat struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

// RecordListingView logs a public detail-page view. Repeat views from
// the same IP inside 24 hours are recorded but not counted as unique.
func RecordListingView(c *fiber.Ctx) error {
	id := c.Params("id")

	var listing model.Listing
	if err := database.GetDB().First(&listing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Listing not found",
		})
	}

	view := model.ListingView{
		ListingID: listing.ID,
		IP:        c.IP(),
		SessionID: c.Get("X-Session-ID"),
		UserAgent: c.Get("User-Agent"),
		ViewedAt:  time.Now(),
		IsUnique:  true,
	}

	if err := database.GetDB().Create(&view).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not record view",
		})
	}

	return c.SendStatus(fiber.StatusCreated)
}

// GetDashboardStats aggregates the dashboard summary.
func GetDashboardStats(c *fiber.Ctx) error {
	db := database.GetDB()

	var stats DashboardStats

	db.Model(&model.Listing{}).Count(&stats.TotalListings)
	db.Model(&model.Listing{}).Where("status = ?", model.ListingStatusActive).Count(&stats.ActiveListings)
	db.Model(&model.Listing{}).Where("status = ?", model.ListingStatusHidden).Count(&stats.HiddenListings)
	db.Model(&model.Listing{}).Where("status = ?", model.ListingStatusSold).Count(&stats.SoldListings)

	db.Model(&model.Consultation{}).
		Where("status = ?", model.ConsultationPending).
		Count(&stats.PendingConsultations)

	db.Model(&model.ListingView{}).Count(&stats.TotalViews)

	var topListings []TopListing
	db.Table("listings").
		Select("listings.id, listings.title, listings.price, listings.region, listings.type, COUNT(listing_views.id) as views").
		Joins("LEFT JOIN listing_views ON listings.id = listing_views.listing_id").
		Where("listings.deleted_at IS NULL").
		Group("listings.id").
		Order("views DESC").
		Limit(5).
		Scan(&topListings)
	stats.TopListings = topListings

	var typeStats []ListingTypeStat
	db.Table("listings").
		Select("listings.type, COUNT(listings.id) as count").
		Where("listings.deleted_at IS NULL").
		Group("listings.type").
		Scan(&typeStats)
	stats.ListingTypeStats = typeStats

	return c.JSON(stats)
}
