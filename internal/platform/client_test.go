package platform

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"swiftride/internal/models"
	"swiftride/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log, err := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Output: "stderr"})
	require.NoError(t, err)

	return NewClient(&Config{BaseURL: srv.URL, Timeout: 2 * time.Second}, log), srv
}

func TestFetchVehiclesDecodesEnvelope(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/vehicles", r.URL.Path)
		assert.Equal(t, "Mini Bus", r.URL.Query().Get("vehicleType"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"total":   14,
			"data": []map[string]any{
				{"_id": "v1", "name": "Hiace", "vehicleType": "Mini Bus", "status": "Available", "rentalPlan": map[string]any{"basePrice": 9000}},
			},
		})
	}))

	page, err := client.FetchVehicles(context.Background(), "Mini Bus", 2, 5)
	require.NoError(t, err)
	assert.Equal(t, 14, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "v1", page.Items[0].ID)
	assert.Equal(t, 9000.0, page.Items[0].RentalPlan.BasePrice)
}

func TestUnauthorizedFiresHookAndMapsError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "token expired"})
	}))

	var purged string
	client.SetUnauthorizedHook(func(token string) { purged = token })

	_, err := client.FetchBookings(context.Background(), "stale-token")
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, "stale-token", purged)
}

func TestUnauthorizedWithoutTokenSkipsHook(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	hookFired := false
	client.SetUnauthorizedHook(func(string) { hookFired = true })

	_, err := client.FetchVehicle(context.Background(), "v1")
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.False(t, hookFired, "no token means nothing to purge")
}

func TestNotFoundMapsToNotFoundError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.FetchVehicle(context.Background(), "missing")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "vehicle", notFound.Resource)
}

func TestEnvelopeFailureMapsToAPIError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "vehicle unavailable"})
	}))

	_, err := client.CreateBooking(context.Background(), "tok", &BookingRequest{VehicleID: "v1"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "vehicle unavailable", apiErr.Message)
}

func TestTransportFailureMapsToNetworkError(t *testing.T) {
	log, err := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Output: "stderr"})
	require.NoError(t, err)

	client := NewClient(&Config{BaseURL: "http://127.0.0.1:1", Timeout: 500 * time.Millisecond}, log)

	_, err = client.FetchVehicles(context.Background(), "", 1, 5)
	var netErr *NetworkError
	assert.ErrorAs(t, err, &netErr)
}

func TestBearerTokenForwarded(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": []models.RawBooking{}})
	}))

	_, err := client.FetchBookings(context.Background(), "tok-1")
	require.NoError(t, err)
}

func TestVerifyOTPReadsTopLevelToken(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "OTP verified", "token": "reset-token"})
	}))

	result, err := client.VerifyOTP(context.Background(), "ali@example.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, "reset-token", result.Token)
	assert.Equal(t, "OTP verified", result.Message)
}

func TestCancelBookingUsesPlatformVerb(t *testing.T) {
	var gotMethod, gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))

	require.NoError(t, client.CancelBooking(context.Background(), "tok", "bk-1"))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/bookings/bk-1/cancel", gotPath)
}

func TestContextCancellationSurfacesAsNetworkError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.FetchVehicle(ctx, "v1")
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
