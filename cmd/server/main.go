package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	config "github.com/socialdeck/management-api/configs"
	"github.com/socialdeck/management-api/internal/api/handlers"
	"github.com/socialdeck/management-api/internal/api/middleware"
	"github.com/socialdeck/management-api/internal/repository"
	"github.com/socialdeck/management-api/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()
	if cfg.SecretKey == config.DevSecretKey {
		log.Println("Warning: SECRET_KEY not set, using the development-only signing key")
	}

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(db)

	if err := db.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "something went wrong"})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	userRepo := repository.NewUserRepository(db)
	socialAccountRepo := repository.NewSocialAccountRepository(db)
	scheduledPostRepo := repository.NewScheduledPostRepository(db)
	publishedPostRepo := repository.NewPublishedPostRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)
	ruleRepo := repository.NewAutomationRuleRepository(db)

	authService := service.NewAuthService(*cfg, userRepo)
	accountService := service.NewAccountService(socialAccountRepo)
	schedulingService := service.NewSchedulingService(scheduledPostRepo, publishedPostRepo, socialAccountRepo)
	analyticsService := service.NewAnalyticsService(snapshotRepo, socialAccountRepo)
	ruleService := service.NewRuleService(ruleRepo)

	authMiddleware := middleware.NewAuthMiddleware(*cfg)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	auth := handlers.NewAuthHandler(authService)
	app.Post("/auth/register", auth.Register)
	app.Post("/auth/login", auth.Login)

	api := app.Group("/", authMiddleware.RequireAuth())

	api.Get("/auth/me", auth.Me)

	account := handlers.NewAccountHandler(accountService)
	api.Post("/social-accounts/connect", account.Connect)
	api.Get("/social-accounts", account.List)
	api.Delete("/social-accounts/:id", account.Disconnect)

	scheduling := handlers.NewSchedulingHandler(schedulingService)
	api.Post("/scheduling", scheduling.Schedule)
	api.Get("/scheduling", scheduling.ListScheduled)
	api.Get("/scheduling/published", scheduling.ListPublished)
	api.Delete("/scheduling/:id", scheduling.Cancel)

	analytics := handlers.NewAnalyticsHandler(analyticsService)
	api.Get("/analytics/summary", analytics.Summary)
	api.Get("/analytics/timeseries", analytics.TimeSeries)

	rules := handlers.NewRuleHandler(ruleService)
	api.Post("/automation-rules", rules.Create)
	api.Get("/automation-rules", rules.List)
	api.Put("/automation-rules/:id", rules.Update)
	api.Delete("/automation-rules/:id", rules.Delete)
	api.Post("/automation-rules/:id/toggle", rules.Toggle)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on http://localhost:%s", cfg.Port)

	gracefulShutdown(app, db)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *sql.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	closeDB(db)
	log.Println("Server shutdown complete.")
}
