package controller

import (
	"github.com/gofiber/fiber/v2"

	"pxtown_backend/internal/model"
	"pxtown_backend/pkg/database"
)

type AgencyProfileInput struct {
	AgencyName     string `json:"agency_name"`
	AgentName      string `json:"agent_name"`
	RegistrationNo string `json:"registration_no"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
}

// GetAgencyProfile serves the 공인중개사법 disclosure defaults. Public:
// the footer and every listing card render these.
func GetAgencyProfile(c *fiber.Ctx) error {
	profile := agencyProfile()
	if profile == nil {
		return c.JSON(fiber.Map{})
	}
	return c.JSON(profile)
}

// UpdateAgencyProfile upserts the singleton disclosure row.
func UpdateAgencyProfile(c *fiber.Ctx) error {
	input := new(AgencyProfileInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var profile model.AgencyProfile
	err := database.GetDB().First(&profile).Error

	profile.AgencyName = input.AgencyName
	profile.AgentName = input.AgentName
	profile.RegistrationNo = input.RegistrationNo
	profile.Address = input.Address
	profile.Phone = input.Phone

	if err != nil {
		err = database.GetDB().Create(&profile).Error
	} else {
		err = database.GetDB().Save(&profile).Error
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save agency profile",
		})
	}

	return c.JSON(profile)
}
