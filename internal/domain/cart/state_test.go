package cart

import (
	"testing"
)

func line(id, size string, price float64, qty int) LineItem {
	return LineItem{ProductID: id, Name: "item-" + id, Image: "/img/" + id + ".jpg", Price: price, Size: size, Quantity: qty}
}

func TestAdd_MergesOnSameKey(t *testing.T) {
	lines := []LineItem{line("p1", "M", 500, 1)}

	lines = Add(lines, LineItem{ProductID: "p1", Size: "M", Price: 500, Quantity: 2})

	if len(lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1", len(lines))
	}
	if lines[0].Quantity != 3 {
		t.Errorf("Quantity = %d, want 3", lines[0].Quantity)
	}
	if got := Total(lines); got != 1500 {
		t.Errorf("Total = %v, want 1500", got)
	}
}

func TestAdd_KeepsSnapshotOnMerge(t *testing.T) {
	lines := []LineItem{line("p1", "M", 500, 1)}

	// Same key, different snapshot fields: the original snapshot wins
	lines = Add(lines, LineItem{ProductID: "p1", Size: "M", Name: "renamed", Image: "/new.jpg", Price: 999, Quantity: 1})

	if lines[0].Price != 500 {
		t.Errorf("Price = %v, want snapshot 500", lines[0].Price)
	}
	if lines[0].Name != "item-p1" {
		t.Errorf("Name = %q, want snapshot %q", lines[0].Name, "item-p1")
	}
	if lines[0].Image != "/img/p1.jpg" {
		t.Errorf("Image = %q, want snapshot %q", lines[0].Image, "/img/p1.jpg")
	}
}

func TestAdd_DifferentSizeIsNewLine(t *testing.T) {
	lines := []LineItem{line("p1", "M", 500, 1)}

	lines = Add(lines, line("p1", "L", 500, 1))

	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}
}

func TestAdd_RepeatedAddsSumQuantities(t *testing.T) {
	var lines []LineItem
	quantities := []int{1, 2, 5, 1}
	want := 0
	for _, q := range quantities {
		lines = Add(lines, LineItem{ProductID: "p1", Size: "M", Price: 100, Quantity: q})
		want += q
	}

	if len(lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1", len(lines))
	}
	if lines[0].Quantity != want {
		t.Errorf("Quantity = %d, want %d", lines[0].Quantity, want)
	}
	if Count(lines) != want {
		t.Errorf("Count = %d, want %d", Count(lines), want)
	}
}

func TestAdd_DoesNotMutateInput(t *testing.T) {
	original := []LineItem{line("p1", "M", 500, 1)}
	Add(original, LineItem{ProductID: "p1", Size: "M", Price: 500, Quantity: 2})

	if original[0].Quantity != 1 {
		t.Errorf("input snapshot mutated: Quantity = %d, want 1", original[0].Quantity)
	}
}

func TestRemove(t *testing.T) {
	lines := []LineItem{line("p1", "M", 500, 1), line("p2", "L", 300, 2)}

	lines = Remove(lines, "p1", "M")
	if len(lines) != 1 || lines[0].ProductID != "p2" {
		t.Fatalf("Remove left %v, want only p2", lines)
	}

	// Removing an absent key is a no-op
	lines = Remove(lines, "p9", "XL")
	if len(lines) != 1 {
		t.Errorf("remove of absent key changed state: %v", lines)
	}

	// Same product, different size is a different line
	lines = Remove(lines, "p2", "M")
	if len(lines) != 1 {
		t.Errorf("remove of wrong size changed state: %v", lines)
	}
}

func TestUpdateQuantity_Verbatim(t *testing.T) {
	lines := []LineItem{line("p1", "M", 500, 1)}

	lines = UpdateQuantity(lines, "p1", "M", 7)
	if lines[0].Quantity != 7 {
		t.Errorf("Quantity = %d, want 7", lines[0].Quantity)
	}

	// Caller contract: values below 1 are stored as given, not fixed
	lines = UpdateQuantity(lines, "p1", "M", 0)
	if lines[0].Quantity != 0 {
		t.Errorf("Quantity = %d, want verbatim 0", lines[0].Quantity)
	}

	// Unknown key is a no-op
	lines = UpdateQuantity(lines, "p9", "M", 5)
	if len(lines) != 1 || lines[0].Quantity != 0 {
		t.Errorf("update of absent key changed state: %v", lines)
	}
}

func TestDecrement_ClampsAtOne(t *testing.T) {
	lines := []LineItem{line("p1", "M", 500, 2)}

	lines = Decrement(lines, "p1", "M")
	if lines[0].Quantity != 1 {
		t.Errorf("Quantity = %d, want 1", lines[0].Quantity)
	}

	lines = Decrement(lines, "p1", "M")
	if lines[0].Quantity != 1 {
		t.Errorf("Quantity = %d, want clamp at 1", lines[0].Quantity)
	}
}

func TestClear(t *testing.T) {
	lines := []LineItem{line("p1", "M", 500, 1), line("p2", "L", 300, 2)}
	if got := Clear(lines); len(got) != 0 {
		t.Errorf("Clear left %v", got)
	}
}

func TestTotals(t *testing.T) {
	tests := []struct {
		name      string
		lines     []LineItem
		wantTotal float64
		wantCount int
	}{
		{
			name:      "empty cart",
			lines:     nil,
			wantTotal: 0,
			wantCount: 0,
		},
		{
			name:      "single line",
			lines:     []LineItem{line("p1", "M", 500, 3)},
			wantTotal: 1500,
			wantCount: 3,
		},
		{
			name:      "multiple lines",
			lines:     []LineItem{line("p1", "M", 500, 1), line("p2", "L", 300, 2), line("p3", "S", 149.5, 2)},
			wantTotal: 500 + 600 + 299,
			wantCount: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Total(tt.lines); got != tt.wantTotal {
				t.Errorf("Total = %v, want %v", got, tt.wantTotal)
			}
			if got := Count(tt.lines); got != tt.wantCount {
				t.Errorf("Count = %d, want %d", got, tt.wantCount)
			}

			totals := ComputeTotals(tt.lines)
			if totals.Total != tt.wantTotal || totals.TotalQuantity != tt.wantCount || totals.ItemCount != len(tt.lines) {
				t.Errorf("ComputeTotals = %+v", totals)
			}
		})
	}
}
