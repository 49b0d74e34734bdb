package services

import (
	"context"
	"errors"
	"sort"

	"swiftride/internal/booking"
	"swiftride/internal/catalog"
	"swiftride/internal/models"
	"swiftride/internal/platform"
	"swiftride/pkg/logger"
)

// ErrDraftNotFound reports an unknown or already reclaimed draft id.
var ErrDraftNotFound = errors.New("booking draft not found")

type BookingService interface {
	// Draft lifecycle
	OpenDraft(ctx context.Context, vehicleID string) (*DraftView, error)
	GetDraft(id string) (*DraftView, error)
	SetDraftDetails(id string, details *models.BookingDetails) (*DraftView, error)
	CancelDraftPayment(id string) (*DraftView, error)
	DiscardDraft(id string)
	SubmitDraft(ctx context.Context, token, id string, card *models.CardDetails) (*models.Booking, error)

	// Platform-owned bookings
	ListBookings(ctx context.Context, token string) (*models.BookingGroups, error)
	GetBooking(ctx context.Context, token, id string) (*models.Booking, error)
	CancelBooking(ctx context.Context, token, id string) error
}

// DraftView is the draft as rendered to the client. Payment input is never
// part of it.
type DraftView struct {
	ID      string                 `json:"id"`
	State   booking.State          `json:"state"`
	Vehicle models.VehicleRecord   `json:"vehicle"`
	Details *models.BookingDetails `json:"details,omitempty"`
	Quote   models.RentalQuote     `json:"quote"`
}

type bookingAPI interface {
	FetchVehicle(ctx context.Context, id string) (*models.RawVehicle, error)
	CreateBooking(ctx context.Context, token string, req *platform.BookingRequest) (*models.RawBooking, error)
	FetchBookings(ctx context.Context, token string) ([]models.RawBooking, error)
	FetchBooking(ctx context.Context, token, id string) (*models.RawBooking, error)
	CancelBooking(ctx context.Context, token, id string) error
}

type bookingService struct {
	api    bookingAPI
	drafts *booking.Registry
	logger *logger.Logger
}

func NewBookingService(api bookingAPI, drafts *booking.Registry, log *logger.Logger) BookingService {
	return &bookingService{
		api:    api,
		drafts: drafts,
		logger: log,
	}
}

// OpenDraft fetches the vehicle fresh so the draft prices against current
// data, then opens a flow for it.
func (s *bookingService) OpenDraft(ctx context.Context, vehicleID string) (*DraftView, error) {
	raw, err := s.api.FetchVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	flow := s.drafts.Open(catalog.NormalizeVehicle(*raw))
	return draftView(flow), nil
}

func (s *bookingService) GetDraft(id string) (*DraftView, error) {
	flow, ok := s.drafts.Get(id)
	if !ok {
		return nil, ErrDraftNotFound
	}
	return draftView(flow), nil
}

func (s *bookingService) SetDraftDetails(id string, details *models.BookingDetails) (*DraftView, error) {
	flow, ok := s.drafts.Get(id)
	if !ok {
		return nil, ErrDraftNotFound
	}
	if err := flow.SetDetails(details); err != nil {
		return nil, err
	}
	return draftView(flow), nil
}

func (s *bookingService) CancelDraftPayment(id string) (*DraftView, error) {
	flow, ok := s.drafts.Get(id)
	if !ok {
		return nil, ErrDraftNotFound
	}
	if err := flow.CancelPayment(); err != nil {
		return nil, err
	}
	return draftView(flow), nil
}

func (s *bookingService) DiscardDraft(id string) {
	s.drafts.Discard(id)
}

// SubmitDraft completes a draft on behalf of the authenticated session and
// retires it from the registry on success.
func (s *bookingService) SubmitDraft(ctx context.Context, token, id string, card *models.CardDetails) (*models.Booking, error) {
	flow, ok := s.drafts.Get(id)
	if !ok {
		return nil, ErrDraftNotFound
	}

	booked, err := flow.SubmitPayment(ctx, card, func(ctx context.Context, req *platform.BookingRequest) (*models.RawBooking, error) {
		return s.api.CreateBooking(ctx, token, req)
	})
	if err != nil {
		return nil, err
	}

	s.drafts.Discard(id)
	s.logger.WithBookingID(booked.ID).Info("Booking submitted")
	return booked, nil
}

// ListBookings groups the user's bookings for the dashboard: pending and
// confirmed count as upcoming, the rest fall into their own buckets.
func (s *bookingService) ListBookings(ctx context.Context, token string) (*models.BookingGroups, error) {
	raws, err := s.api.FetchBookings(ctx, token)
	if err != nil {
		return nil, err
	}

	groups := &models.BookingGroups{
		Upcoming:  []models.Booking{},
		Completed: []models.Booking{},
		Cancelled: []models.Booking{},
	}
	for _, raw := range raws {
		b := catalog.NormalizeBooking(raw)
		switch b.Status {
		case models.BookingStatusCompleted:
			groups.Completed = append(groups.Completed, b)
		case models.BookingStatusCancelled:
			groups.Cancelled = append(groups.Cancelled, b)
		default:
			groups.Upcoming = append(groups.Upcoming, b)
		}
	}

	// Upcoming reads soonest-first; history reads newest-first.
	sort.SliceStable(groups.Upcoming, func(i, j int) bool {
		return groups.Upcoming[i].StartDate.Before(groups.Upcoming[j].StartDate)
	})
	sort.SliceStable(groups.Completed, func(i, j int) bool {
		return groups.Completed[i].StartDate.After(groups.Completed[j].StartDate)
	})
	sort.SliceStable(groups.Cancelled, func(i, j int) bool {
		return groups.Cancelled[i].StartDate.After(groups.Cancelled[j].StartDate)
	})
	return groups, nil
}

func (s *bookingService) GetBooking(ctx context.Context, token, id string) (*models.Booking, error) {
	raw, err := s.api.FetchBooking(ctx, token, id)
	if err != nil {
		return nil, err
	}
	b := catalog.NormalizeBooking(*raw)
	return &b, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, token, id string) error {
	if err := s.api.CancelBooking(ctx, token, id); err != nil {
		return err
	}
	s.logger.WithBookingID(id).Info("Booking cancellation requested")
	return nil
}

func draftView(flow *booking.Flow) *DraftView {
	return &DraftView{
		ID:      flow.ID(),
		State:   flow.State(),
		Vehicle: flow.Vehicle(),
		Details: flow.Details(),
		Quote:   flow.Quote(),
	}
}
