// internal/domain/cart/state.go
package cart

// Pure transitions over an immutable line-item snapshot. Every function
// returns a fresh slice; callers own persistence.

// Add merges an item into the lines. A line with the same (ProductID, Size)
// key has its quantity incremented by item.Quantity; the price, name and
// image snapshots of the existing line are kept. Otherwise the item is
// appended. Insertion order is preserved for display stability.
func Add(lines []LineItem, item LineItem) []LineItem {
	next := make([]LineItem, len(lines))
	copy(next, lines)

	for i := range next {
		if next[i].Key() == item.Key() {
			next[i].Quantity += item.Quantity
			return next
		}
	}
	return append(next, item)
}

// Remove deletes the line matching (productID, size). Removing an absent
// key is a no-op.
func Remove(lines []LineItem, productID, size string) []LineItem {
	next := make([]LineItem, 0, len(lines))
	key := Key{ProductID: productID, Size: size}
	for _, line := range lines {
		if line.Key() == key {
			continue
		}
		next = append(next, line)
	}
	return next
}

// UpdateQuantity sets the matching line's quantity verbatim. Callers are
// responsible for clamping to >= 1 before calling; values below 1 are
// stored as given. Unknown keys are a no-op.
func UpdateQuantity(lines []LineItem, productID, size string, quantity int) []LineItem {
	next := make([]LineItem, len(lines))
	copy(next, lines)

	key := Key{ProductID: productID, Size: size}
	for i := range next {
		if next[i].Key() == key {
			next[i].Quantity = quantity
			break
		}
	}
	return next
}

// Decrement lowers the matching line's quantity by one, clamped at 1.
// Removal is the only way to eliminate a line.
func Decrement(lines []LineItem, productID, size string) []LineItem {
	next := make([]LineItem, len(lines))
	copy(next, lines)

	key := Key{ProductID: productID, Size: size}
	for i := range next {
		if next[i].Key() == key {
			if next[i].Quantity > 1 {
				next[i].Quantity--
			}
			break
		}
	}
	return next
}

// Clear empties the cart unconditionally
func Clear(lines []LineItem) []LineItem {
	return []LineItem{}
}

// Total returns the sum of price * quantity over all lines
func Total(lines []LineItem) float64 {
	var total float64
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// Count returns the sum of quantities over all lines. A single line with
// quantity 3 counts as 3.
func Count(lines []LineItem) int {
	var count int
	for _, line := range lines {
		count += line.Quantity
	}
	return count
}

// ComputeTotals derives the full totals snapshot
func ComputeTotals(lines []LineItem) Totals {
	return Totals{
		ItemCount:     len(lines),
		TotalQuantity: Count(lines),
		Total:         Total(lines),
	}
}
