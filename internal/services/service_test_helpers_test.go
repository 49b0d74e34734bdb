package services

import (
	"context"
	"testing"

	"swiftride/internal/models"
	"swiftride/internal/platform"
	"swiftride/pkg/logger"

	"github.com/stretchr/testify/require"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Output: "stderr"})
	require.NoError(t, err)
	return log
}

// fakePlatform stubs the slices of the platform client the services consume.
// Unset function fields fail loudly if a test reaches them unexpectedly.
type fakePlatform struct {
	fetchVehicles func(ctx context.Context, vehicleType string, page, limit int) (*platform.VehiclePageRaw, error)
	fetchVehicle  func(ctx context.Context, id string) (*models.RawVehicle, error)

	createBooking func(ctx context.Context, token string, req *platform.BookingRequest) (*models.RawBooking, error)
	fetchBookings func(ctx context.Context, token string) ([]models.RawBooking, error)
	fetchBooking  func(ctx context.Context, token, id string) (*models.RawBooking, error)
	cancelBooking func(ctx context.Context, token, id string) error

	register       func(ctx context.Context, req *platform.RegisterRequest) (*platform.Credentials, error)
	login          func(ctx context.Context, req *platform.LoginRequest) (*platform.Credentials, error)
	currentUser    func(ctx context.Context, token string) (*models.RawUser, error)
	updateProfile  func(ctx context.Context, token string, req *platform.ProfileUpdateRequest) (*models.RawUser, error)
	forgotPassword func(ctx context.Context, email string) (*platform.OTPResult, error)
	verifyOTP      func(ctx context.Context, email, otp string) (*platform.OTPResult, error)
	resetPassword  func(ctx context.Context, email, otp, newPassword string) (*platform.OTPResult, error)

	subscribeNewsletter func(ctx context.Context, email string) error
}

func (f *fakePlatform) FetchVehicles(ctx context.Context, vehicleType string, page, limit int) (*platform.VehiclePageRaw, error) {
	return f.fetchVehicles(ctx, vehicleType, page, limit)
}

func (f *fakePlatform) FetchVehicle(ctx context.Context, id string) (*models.RawVehicle, error) {
	return f.fetchVehicle(ctx, id)
}

func (f *fakePlatform) CreateBooking(ctx context.Context, token string, req *platform.BookingRequest) (*models.RawBooking, error) {
	return f.createBooking(ctx, token, req)
}

func (f *fakePlatform) FetchBookings(ctx context.Context, token string) ([]models.RawBooking, error) {
	return f.fetchBookings(ctx, token)
}

func (f *fakePlatform) FetchBooking(ctx context.Context, token, id string) (*models.RawBooking, error) {
	return f.fetchBooking(ctx, token, id)
}

func (f *fakePlatform) CancelBooking(ctx context.Context, token, id string) error {
	return f.cancelBooking(ctx, token, id)
}

func (f *fakePlatform) Register(ctx context.Context, req *platform.RegisterRequest) (*platform.Credentials, error) {
	return f.register(ctx, req)
}

func (f *fakePlatform) Login(ctx context.Context, req *platform.LoginRequest) (*platform.Credentials, error) {
	return f.login(ctx, req)
}

func (f *fakePlatform) CurrentUser(ctx context.Context, token string) (*models.RawUser, error) {
	return f.currentUser(ctx, token)
}

func (f *fakePlatform) UpdateProfile(ctx context.Context, token string, req *platform.ProfileUpdateRequest) (*models.RawUser, error) {
	return f.updateProfile(ctx, token, req)
}

func (f *fakePlatform) ForgotPassword(ctx context.Context, email string) (*platform.OTPResult, error) {
	return f.forgotPassword(ctx, email)
}

func (f *fakePlatform) VerifyOTP(ctx context.Context, email, otp string) (*platform.OTPResult, error) {
	return f.verifyOTP(ctx, email, otp)
}

func (f *fakePlatform) ResetPassword(ctx context.Context, email, otp, newPassword string) (*platform.OTPResult, error) {
	return f.resetPassword(ctx, email, otp, newPassword)
}

func (f *fakePlatform) SubscribeNewsletter(ctx context.Context, email string) error {
	return f.subscribeNewsletter(ctx, email)
}

func rawVehicle(id, brand, vehicleType string, basePrice float64) models.RawVehicle {
	return models.RawVehicle{
		ID:          id,
		Name:        brand + " " + id,
		Brand:       brand,
		VehicleType: vehicleType,
		Location:    "Lahore",
		Seats:       4,
		Status:      "Available",
		RentalPlan:  models.RawRentalPlan{BasePrice: basePrice},
	}
}
