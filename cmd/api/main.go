package main

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"campus-lostfound/internal/config"
	"campus-lostfound/internal/handler"
	"campus-lostfound/internal/middleware"
	"campus-lostfound/internal/repository"
	"campus-lostfound/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redis, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (image upload will not work)", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redis, minioClient, cfg)
	handlers := handler.NewHandlers(services)

	if err := services.Office.SeedDefaults(context.Background()); err != nil {
		log.Fatalf("Failed to seed offices: %v", err)
	}
	if err := services.Auth.EnsureAdmin(context.Background()); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services.Auth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService service.AuthService) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.RefreshToken)
	auth.Post("/logout", h.Auth.Logout)

	protected := v1.Group("", middleware.AuthRequired(authService))

	protected.Get("/me", h.Auth.Me)

	offices := protected.Group("/offices")
	offices.Post("/", middleware.RequireRole("admin"), h.Office.Create)
	offices.Get("/", h.Office.List)
	offices.Get("/:officeId", h.Office.Get)

	lostItems := protected.Group("/lost-items")
	lostItems.Post("/", h.LostItem.Report)
	lostItems.Get("/mine", h.LostItem.ListMine)
	lostItems.Get("/", middleware.RequireRole("staff"), h.LostItem.List)
	lostItems.Get("/:caseNumber", h.LostItem.Get)
	lostItems.Post("/:caseNumber/unclaimed", middleware.RequireRole("staff"), h.LostItem.MarkUnclaimed)
	lostItems.Post("/:caseNumber/archive", middleware.RequireRole("staff"), h.LostItem.Archive)

	foundItems := protected.Group("/found-items", middleware.RequireRole("staff"))
	foundItems.Post("/", h.FoundItem.Log)
	foundItems.Get("/", h.FoundItem.List)
	foundItems.Get("/:foundItemId", h.FoundItem.Get)
	foundItems.Get("/:foundItemId/matches", h.FoundItem.ListMatches)
	foundItems.Post("/:foundItemId/archive", h.FoundItem.Archive)

	matches := protected.Group("/matches", middleware.RequireRole("staff"))
	matches.Get("/", h.Match.List)
	matches.Get("/:matchId", h.Match.Get)
	matches.Post("/:matchId/confirm", h.Match.Confirm)
	matches.Post("/:matchId/reject", h.Match.Reject)
	matches.Post("/:matchId/claim", h.Match.Claim)
	matches.Post("/:matchId/remind", h.Match.Remind)

	media := protected.Group("/media")
	media.Post("/", h.Media.Upload)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.ListMine)

	dashboard := protected.Group("/dashboard", middleware.RequireRole("staff"))
	dashboard.Get("/stats", h.Dashboard.GetStats)

	audit := protected.Group("/audit", middleware.RequireRole("admin"))
	audit.Get("/recent", h.Audit.ListRecent)
}
