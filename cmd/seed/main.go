// Command seed is the administrative write path for the catalog. It
// validates and inserts the sample robots and blog posts, deriving
// slugs and IDs, and announces new entries on the catalog event queue
// when a broker is configured.
//
// Seeding requires admin credentials: DATABASE_ADMIN_DSN must be set
// or the command exits non-zero. The read-only site never needs it.
package main

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/spf13/viper"

	"robohub/internal/database"
	"robohub/internal/repositories"
	"robohub/pkg/rabbitmq"
	"robohub/pkg/slugify"
)

func main() {
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	adminDSN := viper.GetString("DATABASE_ADMIN_DSN")
	if adminDSN == "" {
		log.Fatal("DATABASE_ADMIN_DSN is required to seed the database")
	}

	db, err := database.Open(adminDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	var mqClient *rabbitmq.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: url})
		if err != nil {
			log.Printf("RabbitMQ unavailable, seeding without catalog events: %v", err)
			mqClient = nil
		} else {
			defer mqClient.Close()
		}
	}

	validate := validator.New()
	robotRepo := repositories.NewGORMRobotRepository(db)
	blogRepo := repositories.NewGORMBlogRepository(db)

	seedRobots(robotRepo, validate, mqClient)
	seedBlogPosts(blogRepo, validate, mqClient)
}

func seedRobots(repo repositories.RobotRepository, validate *validator.Validate, mq *rabbitmq.Client) {
	for _, robot := range sampleRobots() {
		// Slug is derived from brand+model and immutable once assigned.
		robot.Slug = slugify.Slugify(robot.Brand + " " + robot.Model)
		if robot.Slug == "" {
			robot.Slug = slugify.Slugify(robot.Name)
		}
		robot.ID = uuid.New().String()

		if err := validate.Struct(robot); err != nil {
			log.Printf("Skipping invalid robot %s: %v", robot.Name, err)
			continue
		}
		if robot.PriceMin != nil && robot.PriceMax != nil && *robot.PriceMin > *robot.PriceMax {
			log.Printf("Skipping robot %s: price_min exceeds price_max", robot.Name)
			continue
		}

		if existing, err := repo.GetBySlug(robot.Slug); err == nil && existing != nil {
			log.Printf("Robot %s already seeded (slug %s)", robot.Name, robot.Slug)
			continue
		} else if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			log.Printf("Error checking robot %s: %v", robot.Name, err)
			continue
		}

		if err := repo.Create(&robot); err != nil {
			log.Printf("Error seeding robot %s: %v", robot.Name, err)
			continue
		}
		log.Printf("Seeded robot: %s (slug: %s)", robot.Name, robot.Slug)
		publishEvent(mq, rabbitmq.CatalogEvent{
			Kind: rabbitmq.EventRobotSeeded,
			Slug: robot.Slug,
			Name: robot.Name,
		})
	}
}

func seedBlogPosts(repo repositories.BlogRepository, validate *validator.Validate, mq *rabbitmq.Client) {
	for _, post := range samplePosts() {
		post.Slug = slugify.Slugify(post.Title)
		post.ID = uuid.New().String()

		if err := validate.Struct(post); err != nil {
			log.Printf("Skipping invalid post %s: %v", post.Title, err)
			continue
		}

		if existing, err := repo.GetBySlug(post.Slug); err == nil && existing != nil {
			log.Printf("Post %s already seeded (slug %s)", post.Title, post.Slug)
			continue
		} else if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			log.Printf("Error checking post %s: %v", post.Title, err)
			continue
		}

		if err := repo.Create(&post); err != nil {
			log.Printf("Error seeding post %s: %v", post.Title, err)
			continue
		}
		log.Printf("Seeded post: %s (slug: %s)", post.Title, post.Slug)
		publishEvent(mq, rabbitmq.CatalogEvent{
			Kind: rabbitmq.EventPostSeeded,
			Slug: post.Slug,
			Name: post.Title,
		})
	}
}

func publishEvent(mq *rabbitmq.Client, event rabbitmq.CatalogEvent) {
	if mq == nil {
		return
	}
	if err := mq.PublishCatalogEvent(event); err != nil {
		log.Printf("Error publishing catalog event for %s: %v", event.Slug, err)
	}
}
