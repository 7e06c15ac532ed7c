package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"robohub/internal/models"
)

// GORMRobotRepository is a GORM implementation of RobotRepository. It
// works against both the hosted PostgreSQL backend and the local SQLite
// fallback; the JSON specification sorts are the only dialect-specific
// part.
type GORMRobotRepository struct {
	db *gorm.DB
}

// NewGORMRobotRepository creates a new instance of GORMRobotRepository.
func NewGORMRobotRepository(db *gorm.DB) *GORMRobotRepository {
	return &GORMRobotRepository{
		db: db,
	}
}

// List translates the normalized filter state into a conjunctive
// predicate set, an ordering and a page window. The returned count
// covers the full filtered set, not just the requested page.
func (r *GORMRobotRepository) List(filters models.RobotFilters) ([]models.Robot, int64, error) {
	base := r.applyFilters(r.db.Model(&models.Robot{}), filters)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count robots: %w", err)
	}

	page := filters.Page
	if page < 1 {
		page = 1
	}
	perPage := filters.PerPage
	if perPage < 1 {
		perPage = models.DefaultPerPage
	}
	if perPage > models.MaxPerPage {
		perPage = models.MaxPerPage
	}

	var robots []models.Robot
	err := base.Session(&gorm.Session{}).
		Order(r.orderClause(filters.SortBy)).
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&robots).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list robots: %w", err)
	}
	return robots, total, nil
}

// applyFilters adds one predicate per present filter; absent filters
// impose no constraint.
func (r *GORMRobotRepository) applyFilters(q *gorm.DB, filters models.RobotFilters) *gorm.DB {
	if filters.Search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filters.Search)+"%")
	}
	if len(filters.Type) > 0 {
		q = q.Where("type IN ?", filters.Type)
	}
	if len(filters.Application) > 0 {
		q = q.Where("application IN ?", filters.Application)
	}
	if len(filters.Brand) > 0 {
		q = q.Where("brand IN ?", filters.Brand)
	}
	if filters.MinPrice != nil {
		q = q.Where("price_min >= ?", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		q = q.Where("price_max <= ?", *filters.MaxPrice)
	}
	return q
}

func (r *GORMRobotRepository) orderClause(sortBy models.SortOption) string {
	switch sortBy {
	case models.SortPriceAsc:
		return "price_min ASC"
	case models.SortPriceDesc:
		return "price_min DESC"
	case models.SortPayload:
		return r.specOrder("payload_kg")
	case models.SortReach:
		return r.specOrder("reach_m")
	default:
		// Includes the default name sort and any unrecognized option.
		return "name ASC"
	}
}

// specOrder sorts descending by a numeric value nested in the
// specifications JSON column, with rows missing the value last.
// "expr IS NULL, expr DESC" is the portable NULLS LAST.
func (r *GORMRobotRepository) specOrder(key string) string {
	expr := r.specExpr(key)
	return fmt.Sprintf("%s IS NULL, %s DESC", expr, expr)
}

func (r *GORMRobotRepository) specExpr(key string) string {
	if r.db.Dialector.Name() == "postgres" {
		return fmt.Sprintf("(specifications ->> '%s')::numeric", key)
	}
	return fmt.Sprintf("json_extract(specifications, '$.%s')", key)
}

// GetBySlug retrieves a single robot by its slug. A missing slug is
// ErrNotFound, not a backend fault.
func (r *GORMRobotRepository) GetBySlug(slug string) (*models.Robot, error) {
	var robot models.Robot
	if err := r.db.First(&robot, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get robot by slug %s: %w", slug, err)
	}
	return &robot, nil
}

// GetRelated returns up to limit robots sharing robotType, excluding
// the robot itself.
func (r *GORMRobotRepository) GetRelated(robotID, robotType string, limit int) ([]models.Robot, error) {
	var robots []models.Robot
	err := r.db.
		Where("type = ? AND id <> ?", robotType, robotID).
		Limit(limit).
		Find(&robots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get related robots: %w", err)
	}
	return robots, nil
}

// FilterOptions returns the distinct non-null, non-empty values of the
// three facet columns. Dedicated DISTINCT queries keep this correct at
// any catalog cardinality.
func (r *GORMRobotRepository) FilterOptions() (*models.FilterOptions, error) {
	opts := &models.FilterOptions{
		Types:        []string{},
		Applications: []string{},
		Brands:       []string{},
	}
	for _, facet := range []struct {
		column string
		dest   *[]string
	}{
		{"type", &opts.Types},
		{"application", &opts.Applications},
		{"brand", &opts.Brands},
	} {
		err := r.db.Model(&models.Robot{}).
			Where(facet.column+" IS NOT NULL AND "+facet.column+" <> ''").
			Distinct().
			Pluck(facet.column, facet.dest).Error
		if err != nil {
			return nil, fmt.Errorf("failed to get distinct %s values: %w", facet.column, err)
		}
	}
	return opts, nil
}

// Create inserts a new robot. Used by the seeding CLI only.
func (r *GORMRobotRepository) Create(robot *models.Robot) error {
	if robot.ID == "" {
		robot.ID = uuid.New().String()
	}
	if err := r.db.Create(robot).Error; err != nil {
		return fmt.Errorf("failed to create robot: %w", err)
	}
	return nil
}
