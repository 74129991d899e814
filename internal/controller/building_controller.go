package controller

import (
	"github.com/gofiber/fiber/v2"

	"pxtown_backend/internal/model"
	"pxtown_backend/pkg/building"
	"pxtown_backend/pkg/database"
	"pxtown_backend/pkg/utils/location"
)

var buildingClient *building.Client

func InitBuildingController(client *building.Client) {
	buildingClient = client
}

// LookupBuildingLedger proxies the national building-ledger recap record
// for the register form. Unknown parcels and upstream failures come back
// as found=false, the form keeps working.
func LookupBuildingLedger(c *fiber.Ctx) error {
	sigunguCd := c.Query("sigungu_cd")
	bjdongCd := c.Query("bjdong_cd")
	bun := c.Query("bun")
	ji := c.Query("ji")

	// allow looking the code up by district name instead
	if sigunguCd == "" {
		if code, ok := location.SigunguCode(c.Query("district")); ok {
			sigunguCd = code
		}
	}
	if sigunguCd == "" || bjdongCd == "" || bun == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "sigungu_cd (or district), bjdong_cd and bun are required",
		})
	}

	if buildingClient == nil || !buildingClient.Enabled() {
		return c.JSON(fiber.Map{
			"found":  false,
			"reason": "building ledger lookup is not configured",
		})
	}

	info, raw, _ := buildingClient.Lookup(sigunguCd, bjdongCd, bun, ji)
	if info == nil {
		return c.JSON(fiber.Map{
			"found": false,
		})
	}

	return c.JSON(fiber.Map{
		"found":    true,
		"building": info,
		"raw":      raw,
	})
}

type ApplyLedgerInput struct {
	SigunguCd string `json:"sigungu_cd"`
	BjdongCd  string `json:"bjdong_cd"`
	Bun       string `json:"bun"`
	Ji        string `json:"ji"`
}

// ApplyListingLedger runs a ledger lookup and writes the building
// attributes onto the listing, keeping the raw payload for audit.
func ApplyListingLedger(c *fiber.Ctx) error {
	id := c.Params("id")

	var listing model.Listing
	if err := database.GetDB().First(&listing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Listing not found",
		})
	}

	input := new(ApplyLedgerInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if buildingClient == nil || !buildingClient.Enabled() {
		return c.JSON(fiber.Map{
			"found":  false,
			"reason": "building ledger lookup is not configured",
		})
	}

	info, raw, _ := buildingClient.Lookup(input.SigunguCd, input.BjdongCd, input.Bun, input.Ji)
	if info == nil {
		return c.JSON(fiber.Map{
			"found": false,
		})
	}

	listing.BuildingAreaSqm = &info.BuildingArea
	listing.TotalFloorAreaSqm = &info.TotalArea
	listing.GroundFloors = &info.GroundFloorCount
	listing.UndergroundFloors = &info.UndergroundFloorCount
	listing.StructureName = info.StructureName
	listing.UseApprovalDate = info.UseApprovalDate
	listing.IllegalBuilding = info.IllegalBuilding
	listing.LedgerRaw = []byte(raw)

	if err := database.GetDB().Save(&listing).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not apply ledger data",
		})
	}

	return c.JSON(fiber.Map{
		"found":    true,
		"building": info,
		"listing":  listing.AdminView(agencyProfile()),
	})
}
