package controller

import (
	"github.com/gofiber/fiber/v2"

	"pxtown_backend/pkg/describe"
)

var descriptionGenerator *describe.Generator

func InitDescribeController(gen *describe.Generator) {
	descriptionGenerator = gen
}

// GenerateDescription turns the register-form fields into a listing
// description. The response always carries text: the GenAI path falls
// back to the deterministic template on any failure.
func GenerateDescription(c *fiber.Ctx) error {
	input := new(describe.Input)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.AreaSqm <= 0 || input.Type == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Listing type and land area are required",
		})
	}

	result := descriptionGenerator.Generate(*input)
	return c.JSON(result)
}
