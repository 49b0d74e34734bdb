// Package booking drives a rental draft from detail collection through
// payment to submission. Each draft is an in-memory state machine; the
// platform owns the booking only after a successful submit.
package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	"swiftride/internal/catalog"
	"swiftride/internal/models"
	"swiftride/internal/platform"
	"swiftride/internal/pricing"
	"swiftride/internal/utils"
	"swiftride/internal/validators"
	"swiftride/pkg/logger"

	"github.com/google/uuid"
)

// State is the draft's position in the booking flow.
type State string

const (
	StateCollectingDetails State = "collecting_details"
	StateAwaitingPayment   State = "awaiting_payment"
	StateSubmitting        State = "submitting"
	StateSubmitted         State = "submitted"
)

var (
	// ErrInvalidTransition is returned when an operation is attempted in a
	// state that does not allow it, e.g. paying before details are set.
	ErrInvalidTransition = errors.New("operation not allowed in the current booking state")

	// ErrSharedRideUnsupported is returned when ride-sharing is requested for
	// a vehicle category that does not split fares.
	ErrSharedRideUnsupported = errors.New("shared rides are not available for this vehicle")

	// ErrReturnBeforePickup is returned when the return moment does not come
	// after the pickup moment.
	ErrReturnBeforePickup = errors.New("return time must be after pickup time")
)

// SubmitFunc delivers an assembled booking request to the platform. The
// service layer binds it to the authenticated client call.
type SubmitFunc func(ctx context.Context, req *platform.BookingRequest) (*models.RawBooking, error)

// Flow is one booking draft. All methods are safe for concurrent use, though
// in practice a draft belongs to a single session.
type Flow struct {
	id      string
	vehicle models.VehicleRecord
	log     *logger.Logger

	mu        sync.Mutex
	state     State
	details   *models.BookingDetails
	receipt   *models.PaymentReceipt
	quote     models.RentalQuote
	start     time.Time
	end       time.Time
	bookingID string
	createdAt time.Time
}

// NewFlow opens a draft for one vehicle. The draft starts collecting details
// with a baseline quote so the price is visible before the form is touched.
func NewFlow(vehicle models.VehicleRecord, log *logger.Logger) *Flow {
	f := &Flow{
		id:        uuid.NewString(),
		vehicle:   vehicle,
		log:       log,
		state:     StateCollectingDetails,
		quote:     pricing.Quote(vehicle.Category, models.BaselinePlan, false, false),
		createdAt: time.Now().UTC(),
	}
	f.logEvent("draft_opened", map[string]interface{}{"vehicle_id": vehicle.ID})
	return f
}

// ID returns the draft identifier.
func (f *Flow) ID() string { return f.id }

// Vehicle returns the vehicle the draft was opened for.
func (f *Flow) Vehicle() models.VehicleRecord { return f.vehicle }

// State returns the current flow state.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Details returns a copy of the collected details, or nil if none were set.
func (f *Flow) Details() *models.BookingDetails {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.details == nil {
		return nil
	}
	d := *f.details
	return &d
}

// Quote returns the latest price breakdown. It always reflects the current
// details; the flow recomputes it on every mutation and never caches across
// edits.
func (f *Flow) Quote() models.RentalQuote {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.quote
}

// BookingID returns the platform booking id once the draft is submitted.
func (f *Flow) BookingID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bookingID
}

// SetDetails validates and stores the booking form, advancing the draft to
// the payment step. It may be called again before payment to revise the
// details; each call reprices the draft from scratch.
func (f *Flow) SetDetails(details *models.BookingDetails) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateCollectingDetails && f.state != StateAwaitingPayment {
		return ErrInvalidTransition
	}

	if errs := validators.ValidateBookingDetails(details); len(errs) > 0 {
		return errs
	}
	if details.SharedRide && !pricing.SupportsSharedRide(f.vehicle.Category) {
		return ErrSharedRideUnsupported
	}

	start, err := utils.CombineDateTime(details.PickupDate, details.PickupTime)
	if err != nil {
		return err
	}
	end, err := utils.CombineDateTime(details.ReturnDate, details.ReturnTime)
	if err != nil {
		return err
	}
	if !end.After(start) {
		return ErrReturnBeforePickup
	}

	d := *details
	f.details = &d
	f.start = start
	f.end = end
	f.quote = pricing.Quote(f.vehicle.Category, d.RentalPlan, d.WithDriver, d.SharedRide)
	f.state = StateAwaitingPayment

	f.logEvent("details_set", map[string]interface{}{
		"rental_plan": string(d.RentalPlan),
		"with_driver": d.WithDriver,
		"shared_ride": d.SharedRide,
		"total":       f.quote.Total,
	})
	return nil
}

// CancelPayment steps back from the payment form to detail collection. The
// collected details survive so the form can be re-confirmed without retyping.
func (f *Flow) CancelPayment() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateAwaitingPayment {
		return ErrInvalidTransition
	}
	f.state = StateCollectingDetails
	f.receipt = nil
	f.logEvent("payment_cancelled", nil)
	return nil
}

// SubmitPayment validates the payment input, simulates the charge and submits
// the assembled booking. On platform failure the draft returns to detail
// collection with everything preserved, so a retry only needs re-confirmation.
func (f *Flow) SubmitPayment(ctx context.Context, card *models.CardDetails, submit SubmitFunc) (*models.Booking, error) {
	f.mu.Lock()
	if f.state != StateAwaitingPayment {
		f.mu.Unlock()
		return nil, ErrInvalidTransition
	}
	if errs := validators.ValidateCardDetails(card); len(errs) > 0 {
		f.mu.Unlock()
		return nil, errs
	}

	f.receipt = ProcessPayment(card)
	f.state = StateSubmitting
	req := f.buildRequest()
	f.mu.Unlock()

	f.logEvent("submitting", map[string]interface{}{"payment_method": string(card.Method)})

	raw, err := submit(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = StateCollectingDetails
		f.receipt = nil
		f.logEvent("submit_failed", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	booked := catalog.NormalizeBooking(*raw)
	f.state = StateSubmitted
	f.bookingID = booked.ID
	f.logEvent("submitted", map[string]interface{}{"booking_id": booked.ID})
	return &booked, nil
}

// buildRequest assembles the platform payload from the validated draft.
// Caller holds f.mu.
func (f *Flow) buildRequest() *platform.BookingRequest {
	req := &platform.BookingRequest{
		VehicleID:      f.vehicle.ID,
		StartDate:      f.start,
		EndDate:        f.end,
		IncludeDriver:  f.details.WithDriver,
		PickupLocation: f.details.PickupLocation,
		DropLocation:   f.details.DropLocation,
		Notes:          f.details.Notes,
		PaymentInfo:    paymentPayload(f.receipt),
	}
	if f.details.SharedRide && f.details.CoRider != nil {
		req.SharedRide = &platform.SharedRidePayload{
			Enabled:   true,
			RiderInfo: *f.details.CoRider,
		}
	}
	return req
}

func (f *Flow) logEvent(event string, details map[string]interface{}) {
	if f.log != nil {
		f.log.LogBookingEvent(f.id, event, details)
	}
}
