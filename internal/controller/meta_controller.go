package controller

import (
	"github.com/gofiber/fiber/v2"

	"pxtown_backend/pkg/utils/location"
)

// GetRegions lists the administrative divisions the search filter offers.
func GetRegions(c *fiber.Ctx) error {
	return c.JSON(location.Regions)
}

// GetZonings lists the 용도지역 designations for the register form.
func GetZonings(c *fiber.Ctx) error {
	return c.JSON(location.Zonings)
}

// GetLandCategories lists the cadastral 지목 classes.
func GetLandCategories(c *fiber.Ctx) error {
	return c.JSON(location.LandCategories)
}
