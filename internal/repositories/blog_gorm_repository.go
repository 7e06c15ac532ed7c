package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"robohub/internal/models"
)

// GORMBlogRepository is a GORM implementation of BlogRepository.
type GORMBlogRepository struct {
	db *gorm.DB
}

// NewGORMBlogRepository creates a new instance of GORMBlogRepository.
func NewGORMBlogRepository(db *gorm.DB) *GORMBlogRepository {
	return &GORMBlogRepository{
		db: db,
	}
}

// List returns up to limit posts ordered newest first, skipping offset.
func (r *GORMBlogRepository) List(limit, offset int) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := r.db.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	return posts, nil
}

// GetBySlug retrieves a single post by its slug.
func (r *GORMBlogRepository) GetBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.First(&post, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get blog post by slug %s: %w", slug, err)
	}
	return &post, nil
}

// GetRelated returns posts sharing at least one of tags, newest first,
// excluding postID. Tag containment runs against the JSON tags column.
func (r *GORMBlogRepository) GetRelated(postID string, tags []string, limit int) ([]models.BlogPost, error) {
	q := r.db.
		Where("id <> ?", postID).
		Order("created_at DESC").
		Limit(limit)
	if len(tags) > 0 {
		q = q.Where(r.tagsOverlapClause(), tags)
	}
	var posts []models.BlogPost
	if err := q.Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to get related blog posts: %w", err)
	}
	return posts, nil
}

// tagsOverlapClause matches rows whose JSON tags array contains at
// least one of the bound values.
func (r *GORMBlogRepository) tagsOverlapClause() string {
	if r.db.Dialector.Name() == "postgres" {
		return "EXISTS (SELECT 1 FROM jsonb_array_elements_text(tags::jsonb) AS t(value) WHERE t.value IN ?)"
	}
	return "EXISTS (SELECT 1 FROM json_each(blog_posts.tags) WHERE json_each.value IN ?)"
}

// Create inserts a new post. Used by the seeding CLI only.
func (r *GORMBlogRepository) Create(post *models.BlogPost) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if err := r.db.Create(post).Error; err != nil {
		return fmt.Errorf("failed to create blog post: %w", err)
	}
	return nil
}
