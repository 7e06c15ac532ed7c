package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"

	"robohub/internal/database"
	"robohub/internal/handlers"
	"robohub/internal/notify"
	"robohub/internal/repositories"
	"robohub/internal/services"
	"robohub/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	// DATABASE_DSN defaults to the public read path; the site never
	// needs admin credentials. RABBITMQ_URL is optional: without it the
	// catalog-event consumer is simply disabled.
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DSN", "data/robohub.db")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	databaseDSN := viper.GetString("DATABASE_DSN")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")

	// --- Database ---
	db, err := database.Open(databaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Notification Bus ---
	// Replaces ambient toast state: one bounded bus owned by main,
	// closed on shutdown. A subscriber surfaces events in the log.
	bus := notify.NewBus(64)
	go func() {
		for event := range bus.Subscribe() {
			log.Printf("[notify] %s: %s", event.Level, event.Message)
		}
	}()

	// --- Catalog Event Consumer (optional) ---
	var mqClient *rabbitmq.Client
	if rabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			// The read path must stay up without a broker.
			log.Printf("RabbitMQ unavailable, catalog events disabled: %v", err)
		} else {
			defer mqClient.Close()
			err = mqClient.ConsumeCatalogEvents(func(event rabbitmq.CatalogEvent) error {
				bus.Publish(notify.Event{
					Level:   notify.LevelInfo,
					Message: fmt.Sprintf("Catalog updated: %s (%s)", event.Name, event.Kind),
					Time:    event.Time,
				})
				return nil
			})
			if err != nil {
				log.Printf("Failed to start catalog event consumer: %v", err)
			}
		}
	}

	// --- Repositories ---
	robotRepo := repositories.NewGORMRobotRepository(db)
	blogRepo := repositories.NewGORMBlogRepository(db)

	// --- Services ---
	catalogService := services.NewCatalogService(robotRepo)
	blogService := services.NewBlogService(blogRepo)

	// --- Handlers ---
	robotHandler := handlers.NewRobotHandler(catalogService)
	blogHandler := handlers.NewBlogHandler(blogService)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(logger.New())

	apiV1 := app.Group("/api/v1")
	robotHandler.RegisterRoutes(apiV1)
	blogHandler.RegisterRoutes(apiV1)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	bus.Close()

	log.Println("Server gracefully stopped")
}
