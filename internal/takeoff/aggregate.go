// Package takeoff consolidates per-trade results and supplier line items
// into one shopping list and exports it as CSV.
package takeoff

import (
	"math"
	"sort"
	"strings"

	"github.com/ppiankov/planreader/internal/model"
	"github.com/ppiankov/planreader/internal/quantity"
)

// Entry is one consolidated shopping-list item.
type Entry struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

// ShoppingList is a consolidated list in first-seen item order.
type ShoppingList struct {
	Entries []Entry `json:"entries"`
}

// Get returns the quantity for item.
func (s ShoppingList) Get(item string) (int, bool) {
	for _, e := range s.Entries {
		if e.Item == item {
			return e.Quantity, true
		}
	}
	return 0, false
}

// AggregateQuantities sums item quantities across results. Each sum is
// accumulated as a float and ceiled again before it is stored.
func AggregateQuantities(results ...quantity.Result) ShoppingList {
	var order []string
	sums := make(map[string]float64)
	for _, r := range results {
		for _, it := range r.Items {
			if _, seen := sums[it.Key]; !seen {
				order = append(order, it.Key)
			}
			sums[it.Key] += float64(it.Quantity)
		}
	}

	list := ShoppingList{Entries: make([]Entry, 0, len(order))}
	for _, key := range order {
		list.Entries = append(list.Entries, Entry{
			Item:     key,
			Quantity: int(math.Ceil(sums[key])),
			Unit:     UnitFor(key),
		})
	}
	return list
}

type lineKey struct {
	description string
	lumberSize  string
	unit        string
}

// AggregateLineItems merges supplier line items from several lists. Items
// with the same description, lumber size and normalized unit are summed.
// A merged line keeps the order line it was first seen with, and the result
// is ordered by order line so each group stays together. Order lines may
// repeat across plans.
func AggregateLineItems(lists ...[]model.MaterialLineItem) []model.MaterialLineItem {
	var out []model.MaterialLineItem
	index := make(map[lineKey]int)
	for _, items := range lists {
		for _, it := range items {
			it.Unit = NormalizeUnit(it.Unit)
			k := lineKey{
				description: strings.TrimSpace(it.Description),
				lumberSize:  it.LumberSize,
				unit:        it.Unit,
			}
			if i, ok := index[k]; ok {
				out[i].Quantity += it.Quantity
				continue
			}
			index[k] = len(out)
			out = append(out, it)
		}
	}
	SortByOrderLine(out)
	return out
}

// SortByOrderLine orders line items by their original order line, keeping
// the input order for ties.
func SortByOrderLine(items []model.MaterialLineItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].OrderLine < items[j].OrderLine
	})
}

// DivisionTotals sums line quantities per division code.
func DivisionTotals(items []model.MaterialLineItem) map[model.DivisionCode]int {
	totals := make(map[model.DivisionCode]int)
	for _, it := range items {
		totals[it.Division] += it.Quantity
	}
	return totals
}
