package controller

import (
	"github.com/gofiber/fiber/v2"

	"pxtown_backend/internal/model"
	"pxtown_backend/pkg/database"
)

type BlogPostInput struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Excerpt  string `json:"excerpt"`
	ImageURL string `json:"image_url"`
}

// ListBlogPosts serves the public blog index, newest first.
func ListBlogPosts(c *fiber.Ctx) error {
	var posts []model.BlogPost
	if err := database.GetDB().Order("created_at desc").Find(&posts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch posts",
		})
	}

	return c.JSON(posts)
}

// GetBlogPostBySlug serves one post.
func GetBlogPostBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var post model.BlogPost
	if err := database.GetDB().Where("slug = ?", slug).First(&post).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Post not found",
		})
	}

	return c.JSON(post)
}

// CreateBlogPost publishes a new post; slug and excerpt are derived in
// the model hook when absent.
func CreateBlogPost(c *fiber.Ctx) error {
	input := new(BlogPostInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if input.Title == "" || input.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title and content are required",
		})
	}

	post := model.BlogPost{
		Title:    input.Title,
		Content:  input.Content,
		Excerpt:  input.Excerpt,
		ImageURL: input.ImageURL,
	}

	if err := database.GetDB().Create(&post).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create post",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdateBlogPost edits a post in place; the slug is stable across edits.
func UpdateBlogPost(c *fiber.Ctx) error {
	id := c.Params("id")
	input := new(BlogPostInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if input.Title == "" || input.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title and content are required",
		})
	}

	var post model.BlogPost
	if err := database.GetDB().First(&post, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Post not found",
		})
	}

	post.Title = input.Title
	post.Content = input.Content
	post.ImageURL = input.ImageURL
	post.Excerpt = input.Excerpt
	if post.Excerpt == "" {
		post.Excerpt = model.MakeExcerpt(post.Content)
	}

	if err := database.GetDB().Save(&post).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update post",
		})
	}

	return c.JSON(post)
}

// DeleteBlogPost removes a post permanently.
func DeleteBlogPost(c *fiber.Ctx) error {
	id := c.Params("id")

	var post model.BlogPost
	if err := database.GetDB().First(&post, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Post not found",
		})
	}

	if err := database.GetDB().Unscoped().Delete(&post).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete post",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
