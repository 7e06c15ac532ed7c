package repositories

import (
	"errors"

	"robohub/internal/models"
)

// ErrNotFound signals that a slug or ID matched no row. Repositories
// return it instead of driver-specific not-found errors so callers can
// distinguish "absent" from a backend fault.
var ErrNotFound = errors.New("record not found")

// RobotRepository defines data access to the robot catalog. The HTTP
// surface only reads; Create exists for the seeding CLI.
type RobotRepository interface {
	// List returns one page of the filtered, ordered catalog plus the
	// total count of robots matching the filters.
	List(filters models.RobotFilters) ([]models.Robot, int64, error)
	GetBySlug(slug string) (*models.Robot, error)
	// GetRelated returns up to limit robots of the same type, excluding
	// the robot itself.
	GetRelated(robotID, robotType string, limit int) ([]models.Robot, error)
	// FilterOptions returns the distinct non-null facet values present
	// in the catalog.
	FilterOptions() (*models.FilterOptions, error)
	Create(robot *models.Robot) error
}
