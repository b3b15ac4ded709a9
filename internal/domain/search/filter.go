// internal/domain/search/filter.go
package search

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// Facet names a toggleable filter set
type Facet string

const (
	FacetBrands        Facet = "brands"
	FacetSubCategories Facet = "subCategories"
)

// PriceBound selects which end of the price interval to replace
type PriceBound int

const (
	MinBound PriceBound = iota
	MaxBound
)

// FilterState holds the facet state for a category page. The zero bounds
// are [0, ceiling]; an empty facet set means "all", never "none".
type FilterState struct {
	MinPrice      int
	MaxPrice      int
	Brands        []string
	SubCategories []string

	// Ceiling is the catalog-wide price cap; MaxPrice == Ceiling is the
	// default upper bound and is omitted from the encoded query.
	Ceiling int
}

// NewFilterState returns the unfiltered default state for a ceiling
func NewFilterState(ceiling int) FilterState {
	return FilterState{
		MinPrice:      0,
		MaxPrice:      ceiling,
		Brands:        []string{},
		SubCategories: []string{},
		Ceiling:       ceiling,
	}
}

// ParseFilters decodes FilterState from URL query parameters. Absent or
// non-numeric bounds fall back to defaults; comma-separated facet values
// are split with empty tokens discarded. Never fails.
func ParseFilters(values url.Values, ceiling int) FilterState {
	state := NewFilterState(ceiling)

	if raw := values.Get("minPrice"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			state.MinPrice = n
		}
	}
	if raw := values.Get("maxPrice"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			state.MaxPrice = n
		}
	}

	state.Brands = splitList(values.Get("brands"))
	state.SubCategories = splitList(values.Get("subCategories"))

	return state
}

// Values encodes the state back to URL query parameters. The encoding is
// minimal: facets at their default value are absent from the query.
func (f FilterState) Values() url.Values {
	values := url.Values{}

	if f.MinPrice > 0 {
		values.Set("minPrice", strconv.Itoa(f.MinPrice))
	}
	if f.MaxPrice < f.Ceiling {
		values.Set("maxPrice", strconv.Itoa(f.MaxPrice))
	}
	if len(f.Brands) > 0 {
		values.Set("brands", strings.Join(f.Brands, ","))
	}
	if len(f.SubCategories) > 0 {
		values.Set("subCategories", strings.Join(f.SubCategories, ","))
	}

	return values
}

// Encode renders the canonical query string for the state
func (f FilterState) Encode() string {
	return f.Values().Encode()
}

// Toggle flips membership of value in the named facet set: present values
// are removed, absent ones appended.
func (f FilterState) Toggle(facet Facet, value string) FilterState {
	switch facet {
	case FacetBrands:
		f.Brands = toggleValue(f.Brands, value)
	case FacetSubCategories:
		f.SubCategories = toggleValue(f.SubCategories, value)
	}
	return f
}

// SetPriceBound replaces one end of the price interval verbatim. Inverted
// ranges (min > max) are allowed and simply match nothing.
func (f FilterState) SetPriceBound(which PriceBound, value int) FilterState {
	switch which {
	case MinBound:
		f.MinPrice = value
	case MaxBound:
		f.MaxPrice = value
	}
	return f
}

// Apply derives the filtered product subset. A product passes iff its
// price lies within [min, max] inclusive AND each non-empty facet set
// contains the product's value: AND across facets, OR within a facet.
func Apply(products []catalog.Product, f FilterState) []catalog.Product {
	matched := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if p.Price < float64(f.MinPrice) || p.Price > float64(f.MaxPrice) {
			continue
		}
		if len(f.Brands) > 0 && !contains(f.Brands, p.Brand) {
			continue
		}
		if len(f.SubCategories) > 0 && !contains(f.SubCategories, p.SubCategory) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

func splitList(raw string) []string {
	values := []string{}
	for _, token := range strings.Split(raw, ",") {
		if token != "" {
			values = append(values, token)
		}
	}
	return values
}

func toggleValue(set []string, value string) []string {
	next := make([]string, 0, len(set)+1)
	removed := false
	for _, v := range set {
		if v == value {
			removed = true
			continue
		}
		next = append(next, v)
	}
	if !removed {
		next = append(next, value)
	}
	return next
}

func contains(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}
