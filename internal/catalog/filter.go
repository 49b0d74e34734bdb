// Package catalog owns the front-end's view of the vehicle catalog:
// normalizing platform records, filtering and sorting listings in memory, and
// guarding concurrent fetches against stale results.
package catalog

import (
	"sort"
	"strings"

	"swiftride/internal/models"
)

// ApplyFilters returns the subset of vehicles matching every active predicate
// in spec, sorted per spec.SortBy. The input slice is never mutated; the
// result is always a fresh slice. An empty result is a valid outcome, and a
// spec with Min > Max simply matches nothing.
func ApplyFilters(vehicles []models.VehicleRecord, spec models.FilterSpec) []models.VehicleRecord {
	filtered := make([]models.VehicleRecord, 0, len(vehicles))

	for _, v := range vehicles {
		if !matchesAnySubstring(v.Brand, spec.Brands) {
			continue
		}
		if !matchesAnySubstring(v.Location, spec.Locations) {
			continue
		}
		if !matchesSeating(v.SeatingCapacity, spec.SeatingCapacity) {
			continue
		}
		if !matchesAnyFeature(v.Features, spec.Features) {
			continue
		}
		if spec.AvailabilityOnly && !v.Availability {
			continue
		}
		if !withinPriceRange(v.PricePerDay, spec.PriceRange) {
			continue
		}
		filtered = append(filtered, v)
	}

	switch spec.SortBy {
	case models.SortPriceLowHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].PricePerDay < filtered[j].PricePerDay
		})
	case models.SortPriceHighLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].PricePerDay > filtered[j].PricePerDay
		})
	default:
		// Preserve the fetch order.
	}

	return filtered
}

// matchesAnySubstring implements the free-text search semantics of the brand
// and location filters: case-insensitive containment against any wanted
// value. An empty filter matches everything.
func matchesAnySubstring(value string, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	lower := strings.ToLower(value)
	for _, w := range wanted {
		if w == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(w)) {
			return true
		}
	}
	return false
}

func matchesSeating(capacity int, wanted []int) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, w := range wanted {
		if capacity == w {
			return true
		}
	}
	return false
}

// matchesAnyFeature keeps a vehicle when at least one requested feature is a
// case-insensitive substring of at least one vehicle feature. Any-of-any, not
// all-requested-present.
func matchesAnyFeature(features []string, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, w := range wanted {
		if w == "" {
			continue
		}
		lw := strings.ToLower(w)
		for _, f := range features {
			if strings.Contains(strings.ToLower(f), lw) {
				return true
			}
		}
	}
	return false
}

func withinPriceRange(price float64, r models.PriceRange) bool {
	if r.Min == 0 && r.Max == 0 {
		return true
	}
	return price >= r.Min && price <= r.Max
}
