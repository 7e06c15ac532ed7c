package services

import (
	"errors"
	"log"

	"robohub/internal/markdown"
	"robohub/internal/models"
	"robohub/internal/repositories"
)

// RenderedPost is a blog post together with its rendered HTML and
// table of contents.
type RenderedPost struct {
	models.BlogPost
	HTML string             `json:"html"`
	TOC  []markdown.Heading `json:"toc"`
}

// BlogService handles read access to blog posts and composes the
// markdown renderer for the detail path. Failure handling follows
// CatalogService: log and collapse to empty/nil.
type BlogService struct {
	repo repositories.BlogRepository
}

// NewBlogService creates a new BlogService.
func NewBlogService(repo repositories.BlogRepository) *BlogService {
	return &BlogService{
		repo: repo,
	}
}

// ListPosts returns up to limit posts, newest first. Empty on failure.
func (s *BlogService) ListPosts(limit, offset int) []models.BlogPost {
	posts, err := s.repo.List(limit, offset)
	if err != nil {
		log.Printf("Error listing blog posts: %v", err)
		return []models.BlogPost{}
	}
	if posts == nil {
		posts = []models.BlogPost{}
	}
	return posts
}

// GetPostBySlug returns the post for slug with its markdown rendered,
// or nil when it does not exist or the lookup failed.
func (s *BlogService) GetPostBySlug(slug string) *RenderedPost {
	post, err := s.repo.GetBySlug(slug)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			log.Printf("Error fetching blog post %s: %v", slug, err)
		}
		return nil
	}
	doc := markdown.Render(post.Content)
	return &RenderedPost{
		BlogPost: *post,
		HTML:     doc.HTML,
		TOC:      doc.TOC,
	}
}

// GetRelatedPosts returns up to limit posts sharing at least one of
// tags, excluding postID. Empty on failure.
func (s *BlogService) GetRelatedPosts(postID string, tags []string, limit int) []models.BlogPost {
	posts, err := s.repo.GetRelated(postID, tags, limit)
	if err != nil {
		log.Printf("Error fetching related blog posts for %s: %v", postID, err)
		return []models.BlogPost{}
	}
	if posts == nil {
		posts = []models.BlogPost{}
	}
	return posts
}
