package search

import (
	"net/url"
	"sort"
	"testing"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

const ceiling = 5000

func sampleProducts() []catalog.Product {
	return []catalog.Product{
		{ID: 1, Name: "Air Tee", Brand: "Nike", Category: "men", SubCategory: "T-Shirts", Price: 500},
		{ID: 2, Name: "Club Hoodie", Brand: "Nike", Category: "men", SubCategory: "Hoodies", Price: 2200},
		{ID: 3, Name: "Originals Tee", Brand: "Adidas", Category: "men", SubCategory: "T-Shirts", Price: 650},
		{ID: 4, Name: "Court Shorts", Brand: "Puma", Category: "boys", SubCategory: "Shorts", Price: 350},
		{ID: 5, Name: "Premium Jacket", Brand: "Adidas", Category: "men", SubCategory: "Jackets", Price: 4800},
	}
}

func TestParseFilters(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  FilterState
	}{
		{
			name:  "empty query yields defaults",
			query: "",
			want:  NewFilterState(ceiling),
		},
		{
			name:  "bounds and facets",
			query: "minPrice=100&maxPrice=2000&brands=Nike,Adidas&subCategories=T-Shirts",
			want: FilterState{
				MinPrice: 100, MaxPrice: 2000,
				Brands:        []string{"Nike", "Adidas"},
				SubCategories: []string{"T-Shirts"},
				Ceiling:       ceiling,
			},
		},
		{
			name:  "non-numeric bounds fall back to defaults",
			query: "minPrice=abc&maxPrice=",
			want:  NewFilterState(ceiling),
		},
		{
			name:  "empty tokens discarded",
			query: "brands=,Nike,,Adidas,",
			want: FilterState{
				MinPrice: 0, MaxPrice: ceiling,
				Brands:        []string{"Nike", "Adidas"},
				SubCategories: []string{},
				Ceiling:       ceiling,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("ParseQuery: %v", err)
			}
			got := ParseFilters(values, ceiling)
			if !filterStatesEqual(got, tt.want) {
				t.Errorf("ParseFilters = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEncode_MinimalCanonical(t *testing.T) {
	// Defaults encode to the empty query
	state := NewFilterState(ceiling)
	if got := state.Encode(); got != "" {
		t.Errorf("default state Encode = %q, want empty", got)
	}

	// Bounds at their defaults stay absent even if set explicitly
	state = state.SetPriceBound(MinBound, 0).SetPriceBound(MaxBound, ceiling)
	if got := state.Encode(); got != "" {
		t.Errorf("default bounds Encode = %q, want empty", got)
	}

	// Toggling a facet on then off returns to the empty query
	state = state.Toggle(FacetBrands, "Nike")
	if got := state.Values().Get("brands"); got != "Nike" {
		t.Errorf("brands param = %q, want Nike", got)
	}
	state = state.Toggle(FacetBrands, "Nike")
	if got := state.Encode(); got != "" {
		t.Errorf("toggled-off Encode = %q, want empty", got)
	}
}

func TestRoundTrip(t *testing.T) {
	state := NewFilterState(ceiling).
		Toggle(FacetBrands, "Nike").
		Toggle(FacetBrands, "Adidas").
		Toggle(FacetSubCategories, "T-Shirts").
		SetPriceBound(MinBound, 250).
		SetPriceBound(MaxBound, 3000)

	reparsed := ParseFilters(state.Values(), ceiling)
	if !filterStatesEqual(state, reparsed) {
		t.Errorf("round trip mismatch:\nencoded: %+v\nparsed:  %+v", state, reparsed)
	}
}

func TestApply_UnfilteredDefaultsPassEverything(t *testing.T) {
	products := sampleProducts()
	got := Apply(products, NewFilterState(ceiling))
	if len(got) != len(products) {
		t.Errorf("default state filtered out products: %d of %d", len(got), len(products))
	}
}

func TestApply_FacetSemantics(t *testing.T) {
	products := sampleProducts()

	tests := []struct {
		name    string
		state   FilterState
		wantIDs []uint
	}{
		{
			name:    "single brand",
			state:   NewFilterState(ceiling).Toggle(FacetBrands, "Nike"),
			wantIDs: []uint{1, 2},
		},
		{
			name:    "OR within a facet",
			state:   NewFilterState(ceiling).Toggle(FacetBrands, "Nike").Toggle(FacetBrands, "Puma"),
			wantIDs: []uint{1, 2, 4},
		},
		{
			name:    "AND across facets",
			state:   NewFilterState(ceiling).Toggle(FacetBrands, "Nike").Toggle(FacetSubCategories, "T-Shirts"),
			wantIDs: []uint{1},
		},
		{
			name:    "price bounds inclusive",
			state:   NewFilterState(ceiling).SetPriceBound(MinBound, 500).SetPriceBound(MaxBound, 650),
			wantIDs: []uint{1, 3},
		},
		{
			name:    "inverted range matches nothing",
			state:   NewFilterState(ceiling).SetPriceBound(MinBound, 3000).SetPriceBound(MaxBound, 100),
			wantIDs: []uint{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(products, tt.state)
			ids := make([]uint, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
			if len(ids) != len(tt.wantIDs) {
				t.Fatalf("matched %v, want %v", ids, tt.wantIDs)
			}
			for i := range ids {
				if ids[i] != tt.wantIDs[i] {
					t.Fatalf("matched %v, want %v", ids, tt.wantIDs)
				}
			}
		})
	}
}

func TestApply_Monotonic(t *testing.T) {
	products := sampleProducts()

	// Adding a facet value can only shrink or keep the result set
	state := NewFilterState(ceiling)
	before := len(Apply(products, state))

	state = state.Toggle(FacetSubCategories, "T-Shirts")
	afterAdd := len(Apply(products, state))
	if afterAdd > before {
		t.Errorf("adding a facet grew results: %d -> %d", before, afterAdd)
	}

	// Toggling off returns to the original unfiltered result
	state = state.Toggle(FacetSubCategories, "T-Shirts")
	if got := len(Apply(products, state)); got != before {
		t.Errorf("clearing facet gave %d results, want %d", got, before)
	}
}

func filterStatesEqual(a, b FilterState) bool {
	if a.MinPrice != b.MinPrice || a.MaxPrice != b.MaxPrice || a.Ceiling != b.Ceiling {
		return false
	}
	return stringSetsEqual(a.Brands, b.Brands) && stringSetsEqual(a.SubCategories, b.SubCategories)
}

func stringSetsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]bool, len(a))
	for _, v := range a {
		seen[v] = true
	}
	for _, v := range b {
		if !seen[v] {
			return false
		}
	}
	return true
}
