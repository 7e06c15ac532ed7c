package services

import (
	"errors"
	"log"

	"robohub/internal/models"
	"robohub/internal/repositories"
)

// CatalogService handles read access to the robot catalog. Backend
// failures never propagate to callers: they are logged here and
// collapse to empty results, so the presentation layer only ever sees
// presence or absence of data.
type CatalogService struct {
	repo repositories.RobotRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.RobotRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// ListRobots returns one page of the filtered catalog. Never nil; a
// backend failure yields an empty page with zero total.
func (s *CatalogService) ListRobots(filters models.RobotFilters) *models.RobotPage {
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

	robots, total, err := s.repo.List(filters)
	if err != nil {
		log.Printf("Error listing robots: %v", err)
		robots, total = nil, 0
	}
	if robots == nil {
		robots = []models.Robot{}
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	return &models.RobotPage{
		Data:       robots,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}
}

// GetRobotBySlug returns the robot for slug, or nil when it does not
// exist or the lookup failed. Only genuine failures are logged.
func (s *CatalogService) GetRobotBySlug(slug string) *models.Robot {
	robot, err := s.repo.GetBySlug(slug)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			log.Printf("Error fetching robot %s: %v", slug, err)
		}
		return nil
	}
	return robot
}

// GetRelatedRobots returns up to limit robots of the same type,
// excluding the robot itself. Empty on failure.
func (s *CatalogService) GetRelatedRobots(robotID, robotType string, limit int) []models.Robot {
	robots, err := s.repo.GetRelated(robotID, robotType, limit)
	if err != nil {
		log.Printf("Error fetching related robots for %s: %v", robotID, err)
		return []models.Robot{}
	}
	if robots == nil {
		robots = []models.Robot{}
	}
	return robots
}

// FilterOptions returns the catalog's current facet values. Empty sets
// on failure.
func (s *CatalogService) FilterOptions() *models.FilterOptions {
	opts, err := s.repo.FilterOptions()
	if err != nil {
		log.Printf("Error fetching filter options: %v", err)
		return &models.FilterOptions{
			Types:        []string{},
			Applications: []string{},
			Brands:       []string{},
		}
	}
	return opts
}
