package models

import "time"

// RentalPlan is one of the four fixed duration tiers driving the base price
// lookup.
type RentalPlan string

const (
	Plan12Hour RentalPlan = "12hour"
	Plan2Day   RentalPlan = "2day"
	Plan3Day   RentalPlan = "3day"
	Plan1Week  RentalPlan = "1week"
)

// BaselinePlan is the fallback when a stale or unknown plan value reaches the
// pricing engine, typically from an old query parameter.
const BaselinePlan = Plan12Hour

// BookingStatus is owned by the platform once a booking is submitted; the
// front-end only reflects it.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "credit"
	PaymentMethodPayPal PaymentMethod = "paypal"
	PaymentMethodCOD    PaymentMethod = "cod"
)

// BookingDetails is everything collected before payment.
type BookingDetails struct {
	FullName       string     `json:"full_name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	PickupLocation string     `json:"pickup_location"`
	DropLocation   string     `json:"drop_location"`
	PickupDate     string     `json:"pickup_date"` // YYYY-MM-DD
	PickupTime     string     `json:"pickup_time"` // 12-hour display format, e.g. "09:30 AM"
	ReturnDate     string     `json:"return_date"`
	ReturnTime     string     `json:"return_time"`
	RentalPlan     RentalPlan `json:"rental_plan"`
	WithDriver     bool       `json:"with_driver"`
	Notes          string     `json:"notes,omitempty"`
	SharedRide     bool       `json:"shared_ride"`
	CoRider        *CoRider   `json:"co_rider,omitempty"`
}

// CoRider is the named second rider of a shared booking.
type CoRider struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// CardDetails is what the payment form collects. The raw number and CVV never
// leave the payment step.
type CardDetails struct {
	Method     PaymentMethod `json:"method"`
	CardName   string        `json:"card_name,omitempty"`
	CardNumber string        `json:"card_number,omitempty"`
	ExpiryDate string        `json:"expiry_date,omitempty"` // MM/YY
	CVV        string        `json:"cvv,omitempty"`
	SaveCard   bool          `json:"save_card"`
}

// PaymentReceipt is the non-sensitive residue of a simulated payment.
type PaymentReceipt struct {
	Method           PaymentMethod `json:"payment_method"`
	CardName         string        `json:"card_name,omitempty"`
	MaskedCardNumber string        `json:"masked_card_number,omitempty"`
	ExpiryDate       string        `json:"expiry_date,omitempty"`
	SaveCard         bool          `json:"save_card"`
	PaymentDate      time.Time     `json:"payment_date"`
	PaymentStatus    string        `json:"payment_status"`
}

// Booking is a platform-owned booking as reflected on the dashboard.
type Booking struct {
	ID             string        `json:"id"`
	Vehicle        VehicleRecord `json:"vehicle"`
	StartDate      time.Time     `json:"start_date"`
	EndDate        time.Time     `json:"end_date"`
	PickupLocation string        `json:"pickup_location"`
	DropLocation   string        `json:"drop_location"`
	IncludeDriver  bool          `json:"include_driver"`
	Price          float64       `json:"price"`
	Status         BookingStatus `json:"status"`
	PaymentStatus  string        `json:"payment_status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// BookingGroups is the dashboard view of a user's bookings.
type BookingGroups struct {
	Upcoming  []Booking `json:"upcoming"`
	Completed []Booking `json:"completed"`
	Cancelled []Booking `json:"cancelled"`
}
