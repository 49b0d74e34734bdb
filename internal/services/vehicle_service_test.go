package services

import (
	"context"
	"testing"

	"swiftride/internal/booking"
	"swiftride/internal/models"
	"swiftride/internal/platform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListVehiclesNormalizesAndPaginates(t *testing.T) {
	var gotType string
	api := &fakePlatform{
		fetchVehicles: func(ctx context.Context, vehicleType string, page, limit int) (*platform.VehiclePageRaw, error) {
			gotType = vehicleType
			return &platform.VehiclePageRaw{
				Items: []models.RawVehicle{rawVehicle("v1", "Toyota", "Mini Bus", 9000)},
				Total: 11,
			}, nil
		},
	}
	svc := NewVehicleService(api, testLogger(t))

	page, err := svc.ListVehicles(context.Background(), models.CategoryMinibus, 1, 5)
	require.NoError(t, err)

	assert.Equal(t, "Mini Bus", gotType)
	require.Len(t, page.Items, 1)
	assert.Equal(t, models.CategoryMinibus, page.Items[0].Category)
	assert.Equal(t, 18000.0, page.Items[0].PricePerDay)
	assert.Equal(t, 11, page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasNextPage)

	latest, ok := svc.CurrentListing()
	require.True(t, ok)
	assert.Equal(t, page.TotalCount, latest.TotalCount)
}

func TestListVehiclesEmptyCategoryFetchesAll(t *testing.T) {
	var gotType string
	api := &fakePlatform{
		fetchVehicles: func(ctx context.Context, vehicleType string, page, limit int) (*platform.VehiclePageRaw, error) {
			gotType = vehicleType
			return &platform.VehiclePageRaw{}, nil
		},
	}
	svc := NewVehicleService(api, testLogger(t))

	_, err := svc.ListVehicles(context.Background(), "", 1, 5)
	require.NoError(t, err)
	assert.Empty(t, gotType)
}

func TestListVehiclesClampsPagination(t *testing.T) {
	var gotPage, gotLimit int
	api := &fakePlatform{
		fetchVehicles: func(ctx context.Context, vehicleType string, page, limit int) (*platform.VehiclePageRaw, error) {
			gotPage, gotLimit = page, limit
			return &platform.VehiclePageRaw{}, nil
		},
	}
	svc := NewVehicleService(api, testLogger(t))

	_, err := svc.ListVehicles(context.Background(), models.CategoryCar, -3, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, gotPage)
	assert.Equal(t, 5, gotLimit)

	_, err = svc.ListVehicles(context.Background(), models.CategoryCar, 2, 500)
	require.NoError(t, err)
	assert.Equal(t, 2, gotPage)
	assert.Equal(t, 50, gotLimit)
}

func TestGetVehicle(t *testing.T) {
	api := &fakePlatform{
		fetchVehicle: func(ctx context.Context, id string) (*models.RawVehicle, error) {
			raw := rawVehicle(id, "Honda", "Car", 6000)
			return &raw, nil
		},
	}
	svc := NewVehicleService(api, testLogger(t))

	rec, err := svc.GetVehicle(context.Background(), "v9")
	require.NoError(t, err)
	assert.Equal(t, "v9", rec.ID)
	assert.Equal(t, models.CategoryCar, rec.Category)
	assert.Equal(t, 500.0, rec.PricePerHour)
}

func TestFilterVehiclesRefinesLoadedPage(t *testing.T) {
	api := &fakePlatform{
		fetchVehicles: func(ctx context.Context, vehicleType string, page, limit int) (*platform.VehiclePageRaw, error) {
			return &platform.VehiclePageRaw{
				Items: []models.RawVehicle{
					rawVehicle("v1", "Toyota", "Car", 6000),
					rawVehicle("v2", "Honda", "Car", 4000),
				},
				Total: 2,
			}, nil
		},
	}
	svc := NewVehicleService(api, testLogger(t))

	filtered, err := svc.FilterVehicles(context.Background(), models.CategoryCar, 1, 5, models.FilterSpec{
		Brands: []string{"honda"},
	})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "v2", filtered[0].ID)
}

func TestQuoteRental(t *testing.T) {
	svc := NewVehicleService(&fakePlatform{}, testLogger(t))

	quote, err := svc.QuoteRental(models.CategoryCar, models.Plan12Hour, true, true)
	require.NoError(t, err)
	assert.Equal(t, 6500.0, quote.Total)
	assert.Equal(t, 3250.0, quote.PerRiderShare)

	_, err = svc.QuoteRental(models.CategoryBus, models.Plan12Hour, false, true)
	assert.ErrorIs(t, err, booking.ErrSharedRideUnsupported)
}
