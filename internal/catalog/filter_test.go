package catalog

import (
	"testing"

	"swiftride/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleVehicles() []models.VehicleRecord {
	return []models.VehicleRecord{
		{ID: "v1", Brand: "Toyota", Location: "Karachi", PricePerDay: 5000, SeatingCapacity: 5, Features: []string{"AC"}, Availability: true},
		{ID: "v2", Brand: "Honda", Location: "Lahore", PricePerDay: 8000, SeatingCapacity: 4, Features: []string{"GPS"}, Availability: false},
		{ID: "v3", Brand: "Suzuki", Location: "Karachi", PricePerDay: 3500, SeatingCapacity: 7, Features: []string{"AC", "Sunroof"}, Availability: true},
		{ID: "v4", Brand: "Toyota Coaster", Location: "Islamabad", PricePerDay: 8000, SeatingCapacity: 22, Features: []string{"Air Conditioning", "Mic System"}, Availability: true},
	}
}

func ids(vehicles []models.VehicleRecord) []string {
	out := make([]string, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, v.ID)
	}
	return out
}

func TestApplyFiltersEmptySpecKeepsOrder(t *testing.T) {
	vehicles := sampleVehicles()

	got := ApplyFilters(vehicles, models.FilterSpec{})

	assert.Equal(t, []string{"v1", "v2", "v3", "v4"}, ids(got))
}

func TestApplyFiltersPriceAndAvailability(t *testing.T) {
	// The documented example: price 0..6000 plus availability keeps only the
	// Toyota at 5000/day.
	vehicles := []models.VehicleRecord{
		{ID: "toyota", Brand: "Toyota", PricePerDay: 5000, SeatingCapacity: 5, Features: []string{"AC"}, Availability: true},
		{ID: "honda", Brand: "Honda", PricePerDay: 8000, SeatingCapacity: 4, Features: []string{"GPS"}, Availability: false},
	}
	spec := models.FilterSpec{
		PriceRange:       models.PriceRange{Min: 0, Max: 6000},
		AvailabilityOnly: true,
	}

	got := ApplyFilters(vehicles, spec)

	require.Len(t, got, 1)
	assert.Equal(t, "toyota", got[0].ID)
}

func TestApplyFiltersBrandSubstringCaseInsensitive(t *testing.T) {
	got := ApplyFilters(sampleVehicles(), models.FilterSpec{Brands: []string{"toyota"}})

	// Substring match: "Toyota Coaster" matches a "toyota" brand search too.
	assert.Equal(t, []string{"v1", "v4"}, ids(got))
}

func TestApplyFiltersLocation(t *testing.T) {
	got := ApplyFilters(sampleVehicles(), models.FilterSpec{Locations: []string{"karachi"}})

	assert.Equal(t, []string{"v1", "v3"}, ids(got))
}

func TestApplyFiltersSeatingExactMembership(t *testing.T) {
	got := ApplyFilters(sampleVehicles(), models.FilterSpec{SeatingCapacity: []int{4, 7}})

	assert.Equal(t, []string{"v2", "v3"}, ids(got))
}

func TestApplyFiltersFeatureMatchAny(t *testing.T) {
	// A vehicle stays when any requested feature is a substring of any of
	// its features: "air" hits "Air Conditioning", "gps" hits "GPS".
	got := ApplyFilters(sampleVehicles(), models.FilterSpec{Features: []string{"air", "gps"}})

	assert.Equal(t, []string{"v2", "v4"}, ids(got))
}

func TestApplyFiltersConjunction(t *testing.T) {
	spec := models.FilterSpec{
		Locations:        []string{"Karachi"},
		AvailabilityOnly: true,
		PriceRange:       models.PriceRange{Min: 4000, Max: 10000},
	}

	got := ApplyFilters(sampleVehicles(), spec)

	assert.Equal(t, []string{"v1"}, ids(got))
}

func TestApplyFiltersMinGreaterThanMaxYieldsEmpty(t *testing.T) {
	spec := models.FilterSpec{PriceRange: models.PriceRange{Min: 9000, Max: 100}}

	got := ApplyFilters(sampleVehicles(), spec)

	assert.Empty(t, got)
}

func TestApplyFiltersResultNeverLarger(t *testing.T) {
	vehicles := sampleVehicles()
	specs := []models.FilterSpec{
		{},
		{Brands: []string{"Toyota"}},
		{AvailabilityOnly: true, SortBy: models.SortPriceHighLow},
		{Features: []string{"nonexistent"}},
	}

	for _, spec := range specs {
		assert.LessOrEqual(t, len(ApplyFilters(vehicles, spec)), len(vehicles))
	}
}

func TestApplyFiltersDoesNotMutateInput(t *testing.T) {
	vehicles := sampleVehicles()
	want := ids(vehicles)

	ApplyFilters(vehicles, models.FilterSpec{SortBy: models.SortPriceHighLow})

	assert.Equal(t, want, ids(vehicles), "input order must survive a sorted call")
}

func TestApplyFiltersSortAscending(t *testing.T) {
	got := ApplyFilters(sampleVehicles(), models.FilterSpec{SortBy: models.SortPriceLowHigh})

	assert.Equal(t, []string{"v3", "v1", "v2", "v4"}, ids(got))
}

func TestApplyFiltersSortDescendingIsStable(t *testing.T) {
	got := ApplyFilters(sampleVehicles(), models.FilterSpec{SortBy: models.SortPriceHighLow})

	// v2 and v4 tie at 8000; stable sort keeps their fetch order.
	assert.Equal(t, []string{"v2", "v4", "v1", "v3"}, ids(got))
}

func TestApplyFiltersSortIsIdempotent(t *testing.T) {
	once := ApplyFilters(sampleVehicles(), models.FilterSpec{SortBy: models.SortPriceLowHigh})
	twice := ApplyFilters(once, models.FilterSpec{SortBy: models.SortPriceLowHigh})

	assert.Equal(t, ids(once), ids(twice))
}
