package catalog

import (
	"math"
	"strings"
	"time"

	"swiftride/internal/models"
	"swiftride/internal/pricing"
)

// vehicleTypeMap collapses the platform's display vocabulary into the
// internal category enumeration.
var vehicleTypeMap = map[string]models.VehicleCategory{
	"car":      models.CategoryCar,
	"bus":      models.CategoryBus,
	"mini bus": models.CategoryMinibus,
	"minibus":  models.CategoryMinibus,
	"coaster":  models.CategoryCoaster,
}

// platformTypeNames is the reverse mapping, used when a category constrains
// an upstream catalog request.
var platformTypeNames = map[models.VehicleCategory]string{
	models.CategoryCar:     "Car",
	models.CategoryBus:     "Bus",
	models.CategoryMinibus: "Mini Bus",
	models.CategoryCoaster: "Coaster",
}

// availableStatus is the only platform status that collapses to available.
const availableStatus = "Available"

// MapVehicleType normalizes a platform vehicle type. Unknown values map to
// the default category rather than being dropped: the listing stays complete
// at the cost of category precision.
func MapVehicleType(platformType string) models.VehicleCategory {
	if cat, ok := vehicleTypeMap[strings.ToLower(strings.TrimSpace(platformType))]; ok {
		return cat
	}
	return models.DefaultCategory
}

// PlatformVehicleType renders a category in the vocabulary the platform's
// vehicleType query parameter expects.
func PlatformVehicleType(category models.VehicleCategory) string {
	if name, ok := platformTypeNames[pricing.NormalizeCategory(string(category))]; ok {
		return name
	}
	return platformTypeNames[models.DefaultCategory]
}

// NormalizeVehicle maps one raw platform record into the front-end shape.
// PricePerDay and PricePerHour are always derived from the base price here,
// never copied, so the invariant cannot drift.
func NormalizeVehicle(raw models.RawVehicle) models.VehicleRecord {
	base := raw.RentalPlan.BasePrice

	rec := models.VehicleRecord{
		ID:              raw.ID,
		Name:            raw.Name,
		Brand:           raw.Brand,
		Model:           raw.Model,
		Category:        MapVehicleType(raw.VehicleType),
		Location:        raw.Location,
		SeatingCapacity: raw.Seats,
		BasePrice:       base,
		PricePerDay:     base * 2,
		PricePerHour:    base / 12,
		Transmission:    raw.Transmission,
		FuelType:        raw.FuelType,
		Features:        raw.Features,
		Availability:    raw.Status == availableStatus,
	}
	if rec.Features == nil {
		rec.Features = []string{}
	}
	if raw.Image != "" {
		rec.Images = []string{raw.Image}
	}
	return rec
}

// NormalizeBooking maps a raw platform booking for the dashboard. Timestamps
// that fail to parse are left zero; the platform owns them and the dashboard
// only displays them.
func NormalizeBooking(raw models.RawBooking) models.Booking {
	return models.Booking{
		ID:             raw.ID,
		Vehicle:        NormalizeVehicle(raw.Vehicle),
		StartDate:      parseTime(raw.StartDate),
		EndDate:        parseTime(raw.EndDate),
		PickupLocation: raw.PickupLocation,
		DropLocation:   raw.DropLocation,
		IncludeDriver:  raw.IncludeDriver,
		Price:          raw.Price,
		Status:         models.BookingStatus(strings.ToLower(raw.Status)),
		PaymentStatus:  raw.PaymentStatus,
		CreatedAt:      parseTime(raw.CreatedAt),
		UpdatedAt:      parseTime(raw.UpdatedAt),
	}
}

func parseTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

// BuildPage assembles pagination metadata for one fetched page. The reported
// total is clamped so the metadata stays consistent even when the platform
// reports a total of zero, or one smaller than the items actually returned.
func BuildPage(items []models.VehicleRecord, page, pageSize, reportedTotal int) models.VehiclePage {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	total := reportedTotal
	if minTotal := (page-1)*pageSize + len(items); total < minTotal {
		total = minTotal
	}

	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))

	return models.VehiclePage{
		Items:       items,
		Page:        page,
		PageSize:    pageSize,
		TotalCount:  total,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
