package models

// SortOption enumerates catalog orderings. Unrecognized values fall back
// to name ordering at query time.
type SortOption string

const (
	SortName      SortOption = "name"
	SortPriceAsc  SortOption = "price_asc"
	SortPriceDesc SortOption = "price_desc"
	SortPayload   SortOption = "payload"
	SortReach     SortOption = "reach"
)

// Pagination bounds for catalog pages.
const (
	DefaultPerPage = 24
	MaxPerPage     = 100
)

// RobotFilters is the normalized filter state reconstructed from URL
// query parameters on every request. Zero values mean "unconstrained":
// an empty Search, a nil set or a nil price bound imposes no predicate.
type RobotFilters struct {
	Search      string
	Type        []string
	Application []string
	Brand       []string
	MinPrice    *float64
	MaxPrice    *float64
	SortBy      SortOption
	Page        int
	PerPage     int
}

// RobotPage is one window of the filtered, ordered catalog plus the
// total count over the full filtered set.
type RobotPage struct {
	Data       []Robot `json:"data"`
	Total      int64   `json:"total"`
	Page       int     `json:"page"`
	PerPage    int     `json:"per_page"`
	TotalPages int     `json:"total_pages"`
}

// FilterOptions are the catalog-derived facet values for the filter UI.
// Sets are unordered; display order is the presentation layer's call.
type FilterOptions struct {
	Types        []string `json:"types"`
	Applications []string `json:"applications"`
	Brands       []string `json:"brands"`
}
