package platform

import (
	"context"
	"net/http"
	"time"

	"swiftride/internal/models"
)

// SharedRidePayload mirrors the platform's optional sharedRide block.
type SharedRidePayload struct {
	Enabled   bool           `json:"enabled"`
	RiderInfo models.CoRider `json:"riderInfo"`
}

// PaymentInfoPayload carries only non-sensitive payment metadata. The raw
// card number and CVV are stripped before this struct is ever built.
type PaymentInfoPayload struct {
	PaymentMethod    string    `json:"paymentMethod"`
	CardName         string    `json:"cardName,omitempty"`
	MaskedCardNumber string    `json:"maskedCardNumber,omitempty"`
	ExpiryDate       string    `json:"expiryDate,omitempty"`
	SaveCard         bool      `json:"saveCard"`
	PaymentDate      time.Time `json:"paymentDate"`
	PaymentStatus    string    `json:"paymentStatus"`
}

// BookingRequest is the body of POST /bookings.
type BookingRequest struct {
	VehicleID      string             `json:"vehicleId"`
	StartDate      time.Time          `json:"startDate"`
	EndDate        time.Time          `json:"endDate"`
	IncludeDriver  bool               `json:"includeDriver"`
	PickupLocation string             `json:"pickupLocation"`
	DropLocation   string             `json:"dropLocation"`
	Notes          string             `json:"notes,omitempty"`
	PaymentInfo    PaymentInfoPayload `json:"paymentInfo"`
	SharedRide     *SharedRidePayload `json:"sharedRide,omitempty"`
}

// CreateBooking submits an assembled booking. From here on the platform owns
// the booking's lifecycle.
func (c *Client) CreateBooking(ctx context.Context, token string, req *BookingRequest) (*models.RawBooking, error) {
	var raw models.RawBooking
	if _, err := c.do(ctx, http.MethodPost, "/bookings", token, nil, req, &raw); err != nil {
		return nil, err
	}
	return &raw, nil
}

// FetchBookings lists the authenticated user's bookings.
func (c *Client) FetchBookings(ctx context.Context, token string) ([]models.RawBooking, error) {
	var items []models.RawBooking
	if _, err := c.do(ctx, http.MethodGet, "/bookings", token, nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FetchBooking retrieves one booking by id.
func (c *Client) FetchBooking(ctx context.Context, token, id string) (*models.RawBooking, error) {
	var raw models.RawBooking
	if _, err := c.do(ctx, http.MethodGet, "/bookings/"+id, token, nil, nil, &raw); err != nil {
		return nil, err
	}
	return &raw, nil
}

// CancelBooking asks the platform to cancel a booking. The platform decides
// whether the transition is allowed; the front-end only reflects the result.
func (c *Client) CancelBooking(ctx context.Context, token, id string) error {
	_, err := c.do(ctx, http.MethodPut, "/bookings/"+id+"/cancel", token, nil, nil, nil)
	return err
}
