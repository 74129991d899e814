package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"pxtown_backend/internal/controller"
	"pxtown_backend/internal/middleware"
	"pxtown_backend/internal/model"
	"pxtown_backend/pkg/building"
	"pxtown_backend/pkg/config"
	"pxtown_backend/pkg/cron"
	"pxtown_backend/pkg/database"
	"pxtown_backend/pkg/describe"
	"pxtown_backend/pkg/geocode"
	"pxtown_backend/pkg/notify"
	"pxtown_backend/pkg/seed"
	"pxtown_backend/pkg/utils/jwt"
	"pxtown_backend/pkg/utils/storage"
)

func setupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Auth Routes
	auth := api.Group("/auth")
	auth.Post("/login", controller.Login)

	// Public Listing Routes
	api.Get("/listings", controller.ListListings)
	api.Get("/listings/:id", controller.GetListing)
	api.Post("/listings/:id/view", controller.RecordListingView)
	api.Post("/listings/:id/consultations", controller.CreateConsultation)

	// Public Blog Routes
	api.Get("/blog", controller.ListBlogPosts)
	api.Get("/blog/:slug", controller.GetBlogPostBySlug)

	// Public Meta Routes
	api.Get("/meta/regions", controller.GetRegions)
	api.Get("/meta/zonings", controller.GetZonings)
	api.Get("/meta/land-categories", controller.GetLandCategories)

	api.Get("/agency", controller.GetAgencyProfile)
	api.Get("/geocode", controller.Geocode)

	// Admin Routes
	admin := api.Group("/admin", middleware.AuthMiddleware())
	admin.Get("/me", controller.GetMe)

	listings := admin.Group("/listings")
	listings.Get("/", controller.ListAdminListings)
	listings.Post("/", controller.CreateListing)
	listings.Put("/:id", controller.UpdateListing)
	listings.Delete("/:id", controller.DeleteListing)
	listings.Put("/:id/visibility", controller.ToggleListingVisibility)
	listings.Put("/:id/sold", controller.MarkListingSold)
	listings.Put("/:id/restore", controller.RestoreListing)
	listings.Put("/:id/memo", controller.UpdateListingMemo)
	listings.Put("/:id/ledger", controller.ApplyListingLedger)
	listings.Post("/:id/images", controller.UploadListingImage)
	listings.Delete("/images/:image_id", controller.DeleteListingImage)

	admin.Get("/building-ledger", controller.LookupBuildingLedger)
	admin.Post("/describe", controller.GenerateDescription)

	consultations := admin.Group("/consultations")
	consultations.Get("/", controller.GetConsultations)
	consultations.Put("/:id/status", controller.ToggleConsultationStatus)
	consultations.Delete("/:id", controller.DeleteConsultation)

	blog := admin.Group("/blog")
	blog.Post("/", controller.CreateBlogPost)
	blog.Put("/:id", controller.UpdateBlogPost)
	blog.Delete("/:id", controller.DeleteBlogPost)

	admin.Get("/settings/agency", controller.GetAgencyProfile)
	admin.Put("/settings/agency", controller.UpdateAgencyProfile)
	admin.Get("/dashboard/stats", controller.GetDashboardStats)
}

func main() {
	cfg := config.Load()

	jwt.InitJWT(cfg.JWT.Secret)
	notify.InitNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)

	controller.InitBuildingController(building.NewClient(cfg.Building.ServiceKey))
	controller.InitGeocodeController(geocode.NewClient(cfg.Kakao.RESTKey))
	controller.InitDescribeController(describe.NewGenerator(cfg.GenAI.BaseURL, cfg.GenAI.APIKey))

	if err := storage.InitStorage(); err != nil {
		log.Printf("Storage warning: image upload disabled: %v", err)
	}

	if cfg.Database.URL == "" {
		log.Fatal("DATABASE_URL is not set in .env")
	}

	database.InitDB(cfg.Database.URL)
	err := database.MigrateDatabase(
		&model.Admin{},
		&model.AgencyProfile{},
		&model.Listing{},
		&model.ListingImage{},
		&model.ListingView{},
		&model.ListingStats{},
		&model.Consultation{},
		&model.BlogPost{},
	)
	if err != nil {
		log.Printf("Migration warning: %v", err)
	}

	db := database.GetDB()
	seed.SeedAdmin(db)
	seed.SeedAgencyProfile(db)
	seed.SeedBlogPosts(db)

	cron.InitConsultationDigestCron()
	cron.InitListingStatsCron()

	app := fiber.New(fiber.Config{
		BodyLimit: 12 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New())

	setupRoutes(app)

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
