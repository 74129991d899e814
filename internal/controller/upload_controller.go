package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"pxtown_backend/internal/model"
	"pxtown_backend/pkg/database"
	"pxtown_backend/pkg/utils/image"
	"pxtown_backend/pkg/utils/storage"
	"pxtown_backend/pkg/utils/validation"
)

const MaxListingImages = 16

// UploadListingImage validates, re-encodes and stores one listing photo.
func UploadListingImage(c *fiber.Ctx) error {
	listingID := c.Params("id")

	var listing model.Listing
	if err := database.GetDB().First(&listing, listingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Listing not found",
		})
	}

	var imageCount int64
	database.GetDB().Model(&model.ListingImage{}).
		Where("listing_id = ?", listing.ID).
		Count(&imageCount)

	if imageCount >= MaxListingImages {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Maximum image limit reached (16)",
		})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}

	if err := validation.ValidateImageUpload(file); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	buf, contentType, err := image.ProcessImage(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	url, err := storage.UploadListingImage(c.Context(), listing.ID, buf, contentType)
	if err != nil {
		log.Printf("Could not upload image to storage: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not upload image",
		})
	}

	img := model.ListingImage{
		ListingID: listing.ID,
		URL:       url,
		Order:     int(imageCount),
		IsCover:   imageCount == 0,
	}

	if err := database.GetDB().Create(&img).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save image record",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Image uploaded successfully",
		"image":   img,
	})
}

// DeleteListingImage removes the database record and the stored object.
func DeleteListingImage(c *fiber.Ctx) error {
	imageID := c.Params("image_id")

	var img model.ListingImage
	if err := database.GetDB().First(&img, imageID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Image not found",
		})
	}

	if err := database.GetDB().Unscoped().Delete(&img).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete image",
		})
	}

	// the stored object is best-effort cleanup
	if idx := strings.Index(img.URL, "/listings/"); idx >= 0 {
		if err := storage.DeleteListingImage(c.Context(), img.URL[idx+1:]); err != nil {
			log.Printf("Could not delete stored object %s: %v", img.URL, err)
		}
	}

	return c.SendStatus(fiber.StatusNoContent)
}
