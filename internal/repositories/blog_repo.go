package repositories

import (
	"robohub/internal/models"
)

// BlogRepository defines data access to blog posts. Read-only from the
// site's perspective; Create exists for the seeding CLI.
type BlogRepository interface {
	// List returns up to limit posts, newest first, skipping offset.
	List(limit, offset int) ([]models.BlogPost, error)
	GetBySlug(slug string) (*models.BlogPost, error)
	// GetRelated returns up to limit posts sharing at least one of the
	// given tags, newest first, excluding the post itself. With no tags
	// it falls back to the newest other posts.
	GetRelated(postID string, tags []string, limit int) ([]models.BlogPost, error)
	Create(post *models.BlogPost) error
}
