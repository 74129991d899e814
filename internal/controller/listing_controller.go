package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pxtown_backend/internal/model"
	"pxtown_backend/pkg/database"
)

type ListingInput struct {
	Title    string              `json:"title" validate:"required"`
	Type     model.ListingType   `json:"type" validate:"required"`
	DealType model.DealType      `json:"deal_type" validate:"required"`
	Status   model.ListingStatus `json:"status"`

	Price       int64  `json:"price" validate:"required"`
	MonthlyRent *int64 `json:"monthly_rent"`

	AreaSqm           float64  `json:"area_sqm" validate:"required"`
	BuildingAreaSqm   *float64 `json:"building_area_sqm"`
	TotalFloorAreaSqm *float64 `json:"total_floor_area_sqm"`
	GroundFloors      *int     `json:"ground_floors"`
	UndergroundFloors *int     `json:"underground_floors"`
	StructureName     string   `json:"structure_name"`
	UseApprovalDate   string   `json:"use_approval_date"`

	Address string `json:"address" validate:"required"`
	Region  string `json:"region" validate:"required"`

	LandCategory    string `json:"land_category"`
	Zoning          string `json:"zoning"`
	RoadFrontage    string `json:"road_frontage"`
	Shape           string `json:"shape"`
	Terrain         string `json:"terrain"`
	IllegalBuilding bool   `json:"illegal_building"`
	Description     string `json:"description"`
	BlogPost        string `json:"blog_post"`
	VideoURL        string `json:"video_url"`

	Memo       string `json:"memo"`
	OwnerPhone string `json:"owner_phone"`

	AgencyName     string `json:"agency_name"`
	AgentName      string `json:"agent_name"`
	RegistrationNo string `json:"registration_no"`
	AgencyAddress  string `json:"agency_address"`
	AgencyPhone    string `json:"agency_phone"`
}

func (in *ListingInput) validate() string {
	if in.Title == "" {
		return "Title is required"
	}
	if in.Address == "" {
		return "Address is required"
	}
	if in.AreaSqm <= 0 {
		return "Land area must be greater than zero"
	}
	switch in.Type {
	case model.ListingTypeLand, model.ListingTypeFactory, model.ListingTypeWarehouse, model.ListingTypeOther:
	default:
		return "Invalid listing type"
	}
	switch in.DealType {
	case model.DealTypeSale, model.DealTypeLease:
	default:
		return "Invalid deal type"
	}
	return ""
}

func (in *ListingInput) apply(l *model.Listing) {
	l.Title = in.Title
	l.Type = in.Type
	l.DealType = in.DealType
	l.Price = in.Price
	l.MonthlyRent = in.MonthlyRent
	l.AreaSqm = in.AreaSqm
	l.BuildingAreaSqm = in.BuildingAreaSqm
	l.TotalFloorAreaSqm = in.TotalFloorAreaSqm
	l.GroundFloors = in.GroundFloors
	l.UndergroundFloors = in.UndergroundFloors
	l.StructureName = in.StructureName
	l.UseApprovalDate = in.UseApprovalDate
	l.Address = in.Address
	l.Region = in.Region
	l.LandCategory = in.LandCategory
	l.Zoning = in.Zoning
	l.RoadFrontage = in.RoadFrontage
	l.Shape = in.Shape
	l.Terrain = in.Terrain
	l.IllegalBuilding = in.IllegalBuilding
	l.Description = in.Description
	l.BlogPost = in.BlogPost
	l.VideoURL = in.VideoURL
	l.Memo = in.Memo
	l.OwnerPhone = in.OwnerPhone
	l.AgencyName = in.AgencyName
	l.AgentName = in.AgentName
	l.RegistrationNo = in.RegistrationNo
	l.AgencyAddress = in.AgencyAddress
	l.AgencyPhone = in.AgencyPhone
}

// agencyProfile fetches the disclosure defaults; a missing row is fine.
func agencyProfile() *model.AgencyProfile {
	var profile model.AgencyProfile
	if err := database.GetDB().First(&profile).Error; err != nil {
		return nil
	}
	return &profile
}

func withImages(db *gorm.DB) *gorm.DB {
	return db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("listing_images.order ASC")
	})
}

// ListListings is the public catalog: newest first, active only, then
// narrowed by the search criteria.
func ListListings(c *fiber.Ctx) error {
	var listings []model.Listing
	if err := withImages(database.GetDB()).
		Where("status = ?", model.ListingStatusActive).
		Order("created_at desc").
		Find(&listings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch listings",
		})
	}

	criteria := model.FilterCriteria{
		Keyword:     c.Query("keyword"),
		DealType:    c.Query("deal_type"),
		ListingType: c.Query("type"),
		Region:      c.Query("region"),
		PriceRange:  c.Query("price_range"),
		AreaRange:   c.Query("area_range"),
	}
	filtered := model.FilterListings(listings, criteria)

	profile := agencyProfile()
	views := make([]map[string]interface{}, 0, len(filtered))
	for i := range filtered {
		views = append(views, filtered[i].Public(profile))
	}

	return c.JSON(fiber.Map{
		"total":    len(views),
		"listings": views,
	})
}

// GetListing serves the public detail page. Sold listings remain
// viewable (the client renders the sold badge from status); hidden
// listings are indistinguishable from missing ones.
func GetListing(c *fiber.Ctx) error {
	id := c.Params("id")

	var listing model.Listing
	if err := withImages(database.GetDB()).First(&listing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Listing not found",
		})
	}

	if listing.Status == model.ListingStatusHidden {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Listing not found",
		})
	}

	return c.JSON(listing.Public(agencyProfile()))
}

// ListAdminListings is the dashboard table with status counts.
func ListAdminListings(c *fiber.Ctx) error {
	var listings []model.Listing
	if err := withImages(database.GetDB()).
		Order("created_at desc").
		Find(&listings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch listings",
		})
	}

	criteria := model.AdminFilterCriteria{
		Keyword:     c.Query("keyword"),
		ListingType: c.Query("type"),
		Status:      c.Query("status"),
	}
	filtered := model.FilterAdminListings(listings, criteria)

	counts := fiber.Map{"total": len(listings), "active": 0, "hidden": 0, "sold": 0}
	for i := range listings {
		switch listings[i].Status {
		case model.ListingStatusActive:
			counts["active"] = counts["active"].(int) + 1
		case model.ListingStatusHidden:
			counts["hidden"] = counts["hidden"].(int) + 1
		case model.ListingStatusSold:
			counts["sold"] = counts["sold"].(int) + 1
		}
	}

	profile := agencyProfile()
	views := make([]map[string]interface{}, 0, len(filtered))
	for i := range filtered {
		views = append(views, filtered[i].AdminView(profile))
	}

	return c.JSON(fiber.Map{
		"counts":   counts,
		"listings": views,
	})
}

// CreateListing registers a new listing. Status defaults to active.
func CreateListing(c *fiber.Ctx) error {
	input := new(ListingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if msg := input.validate(); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": msg,
		})
	}

	listing := model.Listing{Status: model.ListingStatusActive}
	if input.Status != "" {
		listing.Status = input.Status
	}
	input.apply(&listing)

	if err := database.GetDB().Create(&listing).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create listing",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(listing.AdminView(agencyProfile()))
}

// UpdateListing edits every field except status, which moves only
// through the lifecycle actions below.
func UpdateListing(c *fiber.Ctx) error {
	id := c.Params("id")
	input := new(ListingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if msg := input.validate(); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": msg,
		})
	}

	var listing model.Listing
	if err := database.GetDB().First(&listing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Listing not found",
		})
	}

	input.apply(&listing)

	if err := database.GetDB().Save(&listing).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update listing",
		})
	}

	withImages(database.GetDB()).First(&listing, listing.ID)
	return c.JSON(listing.AdminView(agencyProfile()))
}

// DeleteListing permanently removes a listing and its images.
func DeleteListing(c *fiber.Ctx) error {
	id := c.Params("id")

	var listing model.Listing
	if err := database.GetDB().First(&listing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Listing not found",
		})
	}

	tx := database.GetDB().Begin()
	if err := tx.Unscoped().Where("listing_id = ?", listing.ID).Delete(&model.ListingImage{}).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete listing images",
		})
	}
	if err := tx.Unscoped().Delete(&listing).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete listing",
		})
	}
	if err := tx.Commit().Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not complete deletion",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ToggleListingVisibility flips active ↔ hidden. Sold listings are
// rejected with 409; they go through restore instead.
func ToggleListingVisibility(c *fiber.Ctx) error {
	return mutateListingStatus(c, func(l *model.Listing) error {
		return l.ToggleVisibility()
	})
}

// MarkListingSold closes the deal on a listing from any state.
func MarkListingSold(c *fiber.Ctx) error {
	return mutateListingStatus(c, func(l *model.Listing) error {
		l.MarkSold()
		return nil
	})
}

// RestoreListing reopens a sold listing as active.
func RestoreListing(c *fiber.Ctx) error {
	return mutateListingStatus(c, func(l *model.Listing) error {
		return l.Restore()
	})
}

func mutateListingStatus(c *fiber.Ctx, transition func(*model.Listing) error) error {
	id := c.Params("id")

	var listing model.Listing
	if err := database.GetDB().First(&listing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Listing not found",
		})
	}

	if err := transition(&listing); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := database.GetDB().Model(&listing).Update("status", listing.Status).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update listing status",
		})
	}

	log.Printf("Listing %d status is now %s", listing.ID, listing.Status)
	return c.JSON(fiber.Map{
		"id":     listing.ID,
		"status": listing.Status,
	})
}

type MemoInput struct {
	Memo       string `json:"memo"`
	OwnerPhone string `json:"owner_phone"`
}

// UpdateListingMemo edits the admin-private memo and owner contact
// without touching the listing status.
func UpdateListingMemo(c *fiber.Ctx) error {
	id := c.Params("id")
	input := new(MemoInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var listing model.Listing
	if err := database.GetDB().First(&listing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Listing not found",
		})
	}

	updates := map[string]interface{}{
		"memo":        input.Memo,
		"owner_phone": input.OwnerPhone,
	}
	if err := database.GetDB().Model(&listing).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save memo",
		})
	}

	return c.JSON(fiber.Map{
		"message":     "Memo saved",
		"memo":        input.Memo,
		"owner_phone": input.OwnerPhone,
	})
}
