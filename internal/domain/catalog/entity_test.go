package catalog

import "testing"

func TestProductDiscountPercentage(t *testing.T) {
	tests := []struct {
		name          string
		price         float64
		originalPrice float64
		want          int
	}{
		{"no original price", 499, 0, 0},
		{"no markdown", 799, 799, 0},
		{"price above original", 899, 799, 0},
		{"half off", 400, 800, 50},
		{"rounds down", 499, 799, 37},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Price: tt.price, OriginalPrice: tt.originalPrice}
			if got := p.DiscountPercentage(); got != tt.want {
				t.Errorf("DiscountPercentage() = %d, want %d", got, tt.want)
			}
		})
	}
}
