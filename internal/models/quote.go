package models

// RentalQuote is the pricing engine's output for an in-progress selection.
// It is computed on demand and never persisted.
type RentalQuote struct {
	Category      VehicleCategory `json:"category"`
	Plan          RentalPlan      `json:"plan"`
	BasePrice     float64         `json:"base_price"`
	DriverFee     float64         `json:"driver_fee"`
	Total         float64         `json:"total"`
	PerRiderShare float64         `json:"per_rider_share"`
	Currency      string          `json:"currency"`
}
