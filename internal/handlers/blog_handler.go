package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"robohub/internal/services"
)

const (
	defaultBlogLimit    = 10
	defaultRelatedPosts = 3
)

// BlogHandler handles HTTP requests for blog posts.
type BlogHandler struct {
	blog *services.BlogService
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(blog *services.BlogService) *BlogHandler {
	return &BlogHandler{
		blog: blog,
	}
}

// RegisterRoutes registers the blog routes with the Fiber app.
func (h *BlogHandler) RegisterRoutes(router fiber.Router) {
	blogRoutes := router.Group("/blog")
	blogRoutes.Get("/", h.HandleList)
	blogRoutes.Get("/:slug", h.HandleGetBySlug)
	blogRoutes.Get("/:slug/related", h.HandleRelated)
}

// HandleList serves blog posts newest first, windowed by limit/offset.
func (h *BlogHandler) HandleList(c *fiber.Ctx) error {
	limit := parseLimit(c.Query("limit"), defaultBlogLimit)
	offset, err := strconv.Atoi(c.Query("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	posts := h.blog.ListPosts(limit, offset)
	return c.JSON(fiber.Map{
		"data": posts,
	})
}

// HandleGetBySlug serves a single post with its markdown rendered to
// HTML and the heading-derived table of contents.
func (h *BlogHandler) HandleGetBySlug(c *fiber.Ctx) error {
	post := h.blog.GetPostBySlug(c.Params("slug"))
	if post == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Blog post not found",
		})
	}
	return c.JSON(post)
}

// HandleRelated serves posts sharing at least one tag with the given post.
func (h *BlogHandler) HandleRelated(c *fiber.Ctx) error {
	post := h.blog.GetPostBySlug(c.Params("slug"))
	if post == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Blog post not found",
		})
	}
	limit := parseLimit(c.Query("limit"), defaultRelatedPosts)
	related := h.blog.GetRelatedPosts(post.ID, post.TagList(), limit)
	return c.JSON(fiber.Map{
		"data": related,
	})
}
