// Package params normalizes raw URL query parameters into the typed
// filter state the catalog queries run on. url.Values already carries
// the absent / single / repeated distinction, so it serves as the
// boundary representation; everything is collapsed into one canonical
// shape here and never branched on again.
//
// Parsing never fails: malformed values resolve to safe defaults.
package params

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"robohub/internal/models"
)

// Parse builds a normalized RobotFilters from raw query parameters.
// Pure and deterministic; the same input always yields the same state.
func Parse(raw url.Values) models.RobotFilters {
	return models.RobotFilters{
		Search:      strings.TrimSpace(first(raw, "search")),
		Type:        parseList(raw["type"]),
		Application: parseList(raw["application"]),
		Brand:       parseList(raw["brand"]),
		MinPrice:    parseNumber(first(raw, "min_price")),
		MaxPrice:    parseNumber(first(raw, "max_price")),
		SortBy:      parseSort(first(raw, "sort_by")),
		Page:        parsePage(first(raw, "page")),
		PerPage:     parsePerPage(first(raw, "per_page")),
	}
}

// Encode is the inverse of Parse for URL building. Multi-value filters
// are comma-joined the way the filter UI writes them; defaults (page 1,
// per_page 24, name sort) are omitted so canonical URLs stay short.
func Encode(f models.RobotFilters) url.Values {
	v := url.Values{}
	if s := strings.TrimSpace(f.Search); s != "" {
		v.Set("search", s)
	}
	for key, vals := range map[string][]string{
		"type":        f.Type,
		"application": f.Application,
		"brand":       f.Brand,
	} {
		if len(vals) > 0 {
			v.Set(key, strings.Join(vals, ","))
		}
	}
	if f.MinPrice != nil {
		v.Set("min_price", strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice != nil {
		v.Set("max_price", strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}
	if f.SortBy != "" && f.SortBy != models.SortName {
		v.Set("sort_by", string(f.SortBy))
	}
	if f.Page > 1 {
		v.Set("page", strconv.Itoa(f.Page))
	}
	if f.PerPage > 0 && f.PerPage != models.DefaultPerPage {
		v.Set("per_page", strconv.Itoa(f.PerPage))
	}
	return v
}

func first(raw url.Values, key string) string {
	if vals, ok := raw[key]; ok && len(vals) > 0 {
		return vals[0]
	}
	return ""
}

// parseList flattens repeated parameters and comma-joined values into
// one ordered list, dropping empties. Deduplication is not required
// here; set-membership predicates tolerate duplicates.
func parseList(vals []string) []string {
	if len(vals) == 0 {
		return nil
	}
	var out []string
	for _, v := range vals {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// parseNumber parses a price bound. Anything that is not a finite
// number is silently dropped.
func parseNumber(s string) *float64 {
	if s == "" {
		return nil
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return nil
	}
	return &n
}

func parsePage(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func parsePerPage(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n == 0 {
		n = models.DefaultPerPage
	}
	if n < 1 {
		return 1
	}
	if n > models.MaxPerPage {
		return models.MaxPerPage
	}
	return n
}

func parseSort(s string) models.SortOption {
	if s = strings.TrimSpace(s); s == "" {
		return models.SortName
	}
	// Validity is not enforced here: an unknown option sorts by name
	// at query time.
	return models.SortOption(s)
}
