package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"pxtown_backend/internal/model"
	"pxtown_backend/pkg/database"
	"pxtown_backend/pkg/notify"
)

type ConsultationInput struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Message string `json:"message"`
}

// CreateConsultation files an anonymous inquiry against a listing. The
// Telegram alert is best-effort: a failed notification never rolls back
// the saved record.
func CreateConsultation(c *fiber.Ctx) error {
	listingID := c.Params("id")

	var listing model.Listing
	if err := database.GetDB().First(&listing, listingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Listing not found",
		})
	}

	// hidden listings do not take inquiries; sold ones still do,
	// customers ask about comparable stock
	if listing.Status == model.ListingStatusHidden {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Listing not found",
		})
	}

	input := new(ConsultationInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if err := model.ValidateConsultationInput(input.Name, input.Phone); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validationMessage(err),
		})
	}

	consultation := model.Consultation{
		ListingID:     listing.ID,
		ListingTitle:  listing.Title,
		CustomerName:  input.Name,
		CustomerPhone: input.Phone,
		Message:       input.Message,
		Status:        model.ConsultationPending,
	}

	if err := database.GetDB().Create(&consultation).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create consultation",
		})
	}

	if notify.GlobalNotifier != nil {
		err := notify.GlobalNotifier.SendConsultationAlert(
			listing.ID,
			listing.Title,
			input.Name,
			input.Phone,
			input.Message,
		)
		if err != nil {
			log.Printf("Could not send consultation alert: %v", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(consultation)
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrBlankName):
		return "Name is required"
	case errors.Is(err, model.ErrBlankPhone):
		return "Phone is required"
	}
	return "Invalid input"
}

// GetConsultations lists inquiries newest first for the dashboard.
func GetConsultations(c *fiber.Ctx) error {
	query := database.GetDB().Order("created_at desc, id desc")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if listingID := c.Query("listing_id"); listingID != "" {
		query = query.Where("listing_id = ?", listingID)
	}

	var consultations []model.Consultation
	if err := query.Find(&consultations).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch consultations",
		})
	}

	var pending int64
	database.GetDB().Model(&model.Consultation{}).
		Where("status = ?", model.ConsultationPending).
		Count(&pending)

	return c.JSON(fiber.Map{
		"total":         len(consultations),
		"pending":       pending,
		"consultations": consultations,
	})
}

// ToggleConsultationStatus flips pending ↔ completed.
func ToggleConsultationStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var consultation model.Consultation
	if err := database.GetDB().First(&consultation, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Consultation not found",
		})
	}

	consultation.ToggleStatus()
	if err := database.GetDB().Model(&consultation).Update("status", consultation.Status).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update consultation status",
		})
	}

	return c.JSON(consultation)
}

// DeleteConsultation permanently drops an inquiry.
func DeleteConsultation(c *fiber.Ctx) error {
	id := c.Params("id")

	var consultation model.Consultation
	if err := database.GetDB().First(&consultation, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Consultation not found",
		})
	}

	if err := database.GetDB().Unscoped().Delete(&consultation).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete consultation",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
