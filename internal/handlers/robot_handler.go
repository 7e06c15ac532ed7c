package handlers

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"robohub/internal/params"
	"robohub/internal/services"
)

const defaultRelatedRobots = 4

// RobotHandler handles HTTP requests for the robot catalog.
type RobotHandler struct {
	catalog *services.CatalogService
}

// NewRobotHandler creates a new RobotHandler.
func NewRobotHandler(catalog *services.CatalogService) *RobotHandler {
	return &RobotHandler{
		catalog: catalog,
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *RobotHandler) RegisterRoutes(router fiber.Router) {
	robotRoutes := router.Group("/robots")
	robotRoutes.Get("/", h.HandleList)
	robotRoutes.Get("/filters", h.HandleFilterOptions)
	robotRoutes.Get("/:slug", h.HandleGetBySlug)
	robotRoutes.Get("/:slug/related", h.HandleRelated)
}

// HandleList serves one page of the filtered catalog. All filter state
// lives in the query string; malformed parameters fall back to defaults
// rather than erroring.
func (h *RobotHandler) HandleList(c *fiber.Ctx) error {
	filters := params.Parse(queryValues(c))
	page := h.catalog.ListRobots(filters)
	return c.JSON(page)
}

// HandleFilterOptions serves the catalog-derived facet values.
func (h *RobotHandler) HandleFilterOptions(c *fiber.Ctx) error {
	return c.JSON(h.catalog.FilterOptions())
}

// HandleGetBySlug serves a single robot by slug.
func (h *RobotHandler) HandleGetBySlug(c *fiber.Ctx) error {
	robot := h.catalog.GetRobotBySlug(c.Params("slug"))
	if robot == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Robot not found",
		})
	}
	return c.JSON(robot)
}

// HandleRelated serves robots of the same type as the given robot.
func (h *RobotHandler) HandleRelated(c *fiber.Ctx) error {
	robot := h.catalog.GetRobotBySlug(c.Params("slug"))
	if robot == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Robot not found",
		})
	}
	limit := parseLimit(c.Query("limit"), defaultRelatedRobots)
	related := h.catalog.GetRelatedRobots(robot.ID, robot.Type, limit)
	return c.JSON(fiber.Map{
		"data": related,
	})
}

// queryValues exposes the raw query string as url.Values so repeated
// parameters keep all their values (fiber's Queries() flattens them).
func queryValues(c *fiber.Ctx) url.Values {
	values, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		return url.Values{}
	}
	return values
}

const maxListLimit = 50

func parseLimit(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	if n > maxListLimit {
		return maxListLimit
	}
	return n
}
