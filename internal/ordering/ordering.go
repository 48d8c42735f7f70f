// Package ordering implements the shared semantics of every ordered
// sub-list in the API: content blocks, service features and menu items
// all compute append positions, removals and reorders the same way.
package ordering

import "sort"

// Item is implemented by every ordered sub-list element.
type Item interface {
	ItemID() string
	ItemOrder() int
}

// Move assigns a new order value to the item with the given id.
type Move struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

// Next returns the order for an appended item: max existing order + 1,
// or 0 for an empty list. Orders need not be contiguous.
func Next[T Item](items []T) int {
	if len(items) == 0 {
		return 0
	}
	max := 0
	for _, item := range items {
		if item.ItemOrder() > max {
			max = item.ItemOrder()
		}
	}
	return max + 1
}

// SortAsc sorts the list ascending by order, keeping the relative
// position of items that share an order value.
func SortAsc[T Item](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].ItemOrder() < items[j].ItemOrder()
	})
}

// RemoveByID filters out the item with the given id. Removing an id
// that is not present is a no-op, not an error.
func RemoveByID[T Item](items []T, id string) []T {
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if item.ItemID() != id {
			kept = append(kept, item)
		}
	}
	return kept
}

// Apply overwrites the order of every item named by a move, using set
// to write the new value, then re-sorts the list ascending. Moves that
// reference unknown ids are silently ignored.
func Apply[T Item](items []T, moves []Move, set func(item *T, order int)) {
	for _, move := range moves {
		for i := range items {
			if items[i].ItemID() == move.ID {
				set(&items[i], move.Order)
			}
		}
	}
	SortAsc(items)
}
