package controller

import (
	"github.com/gofiber/fiber/v2"

	"pxtown_backend/pkg/geocode"
	"pxtown_backend/pkg/utils/address"
)

var geocodeClient *geocode.Client

func InitGeocodeController(client *geocode.Client) {
	geocodeClient = client
}

// Geocode resolves a district-level point for the detail-page map. The
// parcel number is stripped before the query so the public endpoint can
// never be used to pinpoint a lot. Without an API key the map degrades
// to a placeholder: available=false, still 200.
func Geocode(c *fiber.Ctx) error {
	addr := c.Query("address")
	if addr == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "address is required",
		})
	}

	if geocodeClient == nil || !geocodeClient.Enabled() {
		return c.JSON(fiber.Map{
			"available": false,
		})
	}

	coords, _ := geocodeClient.Resolve(address.StripParcel(addr))
	if coords == nil {
		return c.JSON(fiber.Map{
			"available": false,
		})
	}

	return c.JSON(fiber.Map{
		"available":   true,
		"coordinates": coords,
	})
}
