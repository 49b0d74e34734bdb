// Package pricing computes rental prices from the fixed rate tables. All
// functions are pure and total: every (category, plan) combination has a
// defined price and no input makes a lookup fail.
package pricing

import (
	"strings"

	"swiftride/internal/models"
)

const Currency = "PKR"

type rateKey struct {
	category models.VehicleCategory
	plan     models.RentalPlan
}

// baseRates maps (category, plan) to the base rental price in PKR.
var baseRates = map[rateKey]float64{
	{models.CategoryCar, models.Plan12Hour}: 5000,
	{models.CategoryCar, models.Plan2Day}:   18000,
	{models.CategoryCar, models.Plan3Day}:   26000,
	{models.CategoryCar, models.Plan1Week}:  55000,

	{models.CategoryBus, models.Plan12Hour}: 25000,
	{models.CategoryBus, models.Plan2Day}:   90000,
	{models.CategoryBus, models.Plan3Day}:   130000,
	{models.CategoryBus, models.Plan1Week}:  280000,

	{models.CategoryMinibus, models.Plan12Hour}: 15000,
	{models.CategoryMinibus, models.Plan2Day}:   55000,
	{models.CategoryMinibus, models.Plan3Day}:   80000,
	{models.CategoryMinibus, models.Plan1Week}:  170000,

	{models.CategoryCoaster, models.Plan12Hour}: 18000,
	{models.CategoryCoaster, models.Plan2Day}:   65000,
	{models.CategoryCoaster, models.Plan3Day}:   95000,
	{models.CategoryCoaster, models.Plan1Week}:  200000,
}

// driverFees maps (category, plan) to the surcharge added when a driver is
// requested.
var driverFees = map[rateKey]float64{
	{models.CategoryCar, models.Plan12Hour}: 1500,
	{models.CategoryCar, models.Plan2Day}:   5000,
	{models.CategoryCar, models.Plan3Day}:   7000,
	{models.CategoryCar, models.Plan1Week}:  15000,

	{models.CategoryBus, models.Plan12Hour}: 3000,
	{models.CategoryBus, models.Plan2Day}:   10000,
	{models.CategoryBus, models.Plan3Day}:   14000,
	{models.CategoryBus, models.Plan1Week}:  30000,

	{models.CategoryMinibus, models.Plan12Hour}: 2000,
	{models.CategoryMinibus, models.Plan2Day}:   7000,
	{models.CategoryMinibus, models.Plan3Day}:   10000,
	{models.CategoryMinibus, models.Plan1Week}:  21000,

	{models.CategoryCoaster, models.Plan12Hour}: 2500,
	{models.CategoryCoaster, models.Plan2Day}:   8000,
	{models.CategoryCoaster, models.Plan3Day}:   11500,
	{models.CategoryCoaster, models.Plan1Week}:  24000,
}

// sharedRideCategories lists the categories that support splitting a booking
// with a co-rider.
var sharedRideCategories = map[models.VehicleCategory]bool{
	models.CategoryCar:     true,
	models.CategoryMinibus: true,
	models.CategoryCoaster: true,
}

// NormalizeCategory lower-cases and trims a category string and collapses it
// to one of the four known categories. Source records can carry the
// platform's display casing, so lookups must never use the raw value.
func NormalizeCategory(raw string) models.VehicleCategory {
	switch models.VehicleCategory(strings.ToLower(strings.TrimSpace(raw))) {
	case models.CategoryCar:
		return models.CategoryCar
	case models.CategoryBus:
		return models.CategoryBus
	case models.CategoryMinibus:
		return models.CategoryMinibus
	case models.CategoryCoaster:
		return models.CategoryCoaster
	default:
		return models.DefaultCategory
	}
}

// NormalizePlan collapses unknown plan values to the baseline plan instead of
// failing, which keeps the UI resilient to stale query parameters.
func NormalizePlan(raw models.RentalPlan) models.RentalPlan {
	switch raw {
	case models.Plan12Hour, models.Plan2Day, models.Plan3Day, models.Plan1Week:
		return raw
	default:
		return models.BaselinePlan
	}
}

// ComputePrice returns the total price for a selection. It is deterministic
// and has no side effects.
func ComputePrice(category models.VehicleCategory, plan models.RentalPlan, withDriver bool) float64 {
	key := rateKey{NormalizeCategory(string(category)), NormalizePlan(plan)}
	price := baseRates[key]
	if withDriver {
		price += driverFees[key]
	}
	return price
}

// Quote expands ComputePrice into the full breakdown shown alongside the
// booking form. PerRiderShare halves the total only when the ride is shared.
func Quote(category models.VehicleCategory, plan models.RentalPlan, withDriver, shared bool) models.RentalQuote {
	cat := NormalizeCategory(string(category))
	pl := NormalizePlan(plan)
	key := rateKey{cat, pl}

	base := baseRates[key]
	var fee float64
	if withDriver {
		fee = driverFees[key]
	}
	total := base + fee

	perRider := total
	if shared {
		perRider = total / 2
	}

	return models.RentalQuote{
		Category:      cat,
		Plan:          pl,
		BasePrice:     base,
		DriverFee:     fee,
		Total:         total,
		PerRiderShare: perRider,
		Currency:      Currency,
	}
}

// SupportsSharedRide reports whether a category allows ride-sharing.
func SupportsSharedRide(category models.VehicleCategory) bool {
	return sharedRideCategories[NormalizeCategory(string(category))]
}
