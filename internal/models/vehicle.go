package models

// VehicleCategory is the internal four-way category vocabulary. The platform
// API uses display names ("Car", "Mini Bus", ...) that are normalized into
// these values by the catalog package.
type VehicleCategory string

const (
	CategoryCar     VehicleCategory = "car"
	CategoryBus     VehicleCategory = "bus"
	CategoryMinibus VehicleCategory = "minibus"
	CategoryCoaster VehicleCategory = "coaster"
)

// DefaultCategory is used when the platform reports a vehicle type we do not
// recognize. Keeping the vehicle in the listing beats dropping it.
const DefaultCategory = CategoryCar

type SortOrder string

const (
	SortDefault      SortOrder = "default"
	SortPriceLowHigh SortOrder = "price_low_high"
	SortPriceHighLow SortOrder = "price_high_low"
)

// VehicleRecord is a normalized rentable unit. Records are immutable after
// normalization and replaced wholesale on the next fetch.
type VehicleRecord struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Brand           string          `json:"brand"`
	Model           string          `json:"model,omitempty"`
	Category        VehicleCategory `json:"category"`
	Location        string          `json:"location"`
	SeatingCapacity int             `json:"seating_capacity"`
	BasePrice       float64         `json:"base_price"`
	PricePerDay     float64         `json:"price_per_day"`
	PricePerHour    float64         `json:"price_per_hour"`
	Transmission    string          `json:"transmission,omitempty"`
	FuelType        string          `json:"fuel_type,omitempty"`
	Features        []string        `json:"features"`
	Images          []string        `json:"images,omitempty"`
	Availability    bool            `json:"availability"`
}

// PriceRange is an inclusive [Min, Max] bound on PricePerDay.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterSpec is the closed filter structure applied by catalog.ApplyFilters.
// Empty slices mean "dimension unconstrained".
type FilterSpec struct {
	Brands           []string   `json:"brands"`
	Locations        []string   `json:"locations"`
	PriceRange       PriceRange `json:"price_range"`
	SeatingCapacity  []int      `json:"seating_capacity"`
	Features         []string   `json:"features"`
	AvailabilityOnly bool       `json:"availability_only"`
	SortBy           SortOrder  `json:"sort_by"`
}

// VehiclePage is one normalized page of the platform catalog.
type VehiclePage struct {
	Items       []VehicleRecord `json:"items"`
	Page        int             `json:"page"`
	PageSize    int             `json:"page_size"`
	TotalCount  int             `json:"total_count"`
	TotalPages  int             `json:"total_pages"`
	HasNextPage bool            `json:"has_next_page"`
	HasPrevPage bool            `json:"has_prev_page"`
}
