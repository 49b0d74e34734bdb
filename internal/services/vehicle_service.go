package services

import (
	"context"

	"swiftride/internal/booking"
	"swiftride/internal/catalog"
	"swiftride/internal/models"
	"swiftride/internal/platform"
	"swiftride/internal/pricing"
	"swiftride/internal/utils"
	"swiftride/pkg/logger"
)

type VehicleService interface {
	// Catalog browsing
	ListVehicles(ctx context.Context, category models.VehicleCategory, page, pageSize int) (*models.VehiclePage, error)
	GetVehicle(ctx context.Context, id string) (*models.VehicleRecord, error)
	CurrentListing() (models.VehiclePage, bool)

	// Client-side refinement of the loaded page
	FilterVehicles(ctx context.Context, category models.VehicleCategory, page, pageSize int, spec models.FilterSpec) ([]models.VehicleRecord, error)

	// Pricing
	QuoteRental(category models.VehicleCategory, plan models.RentalPlan, withDriver, shared bool) (models.RentalQuote, error)
}

// vehicleAPI is the slice of the platform client the service needs.
type vehicleAPI interface {
	FetchVehicles(ctx context.Context, vehicleType string, page, limit int) (*platform.VehiclePageRaw, error)
	FetchVehicle(ctx context.Context, id string) (*models.RawVehicle, error)
}

type vehicleService struct {
	api     vehicleAPI
	browser *catalog.Browser
	logger  *logger.Logger
}

func NewVehicleService(api vehicleAPI, log *logger.Logger) VehicleService {
	svc := &vehicleService{
		api:    api,
		logger: log,
	}
	svc.browser = catalog.NewBrowser(svc.fetchPage)
	return svc
}

// fetchPage is the browser's fetch: one upstream page, normalized and wrapped
// in pagination metadata.
func (s *vehicleService) fetchPage(ctx context.Context, query catalog.BrowseQuery) (models.VehiclePage, error) {
	vehicleType := ""
	if query.Category != "" {
		vehicleType = catalog.PlatformVehicleType(query.Category)
	}

	raw, err := s.api.FetchVehicles(ctx, vehicleType, query.Page, query.PageSize)
	if err != nil {
		return models.VehiclePage{}, err
	}

	items := make([]models.VehicleRecord, 0, len(raw.Items))
	for _, rv := range raw.Items {
		items = append(items, catalog.NormalizeVehicle(rv))
	}
	return catalog.BuildPage(items, query.Page, query.PageSize, raw.Total), nil
}

// ListVehicles loads one catalog page through the browser, so a stale
// response can never replace a newer one.
func (s *vehicleService) ListVehicles(ctx context.Context, category models.VehicleCategory, page, pageSize int) (*models.VehiclePage, error) {
	query := catalog.BrowseQuery{
		Category: category,
		Page:     clampPage(page),
		PageSize: clampPageSize(pageSize),
	}

	result, err := s.browser.Browse(ctx, query)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"category": string(category),
		"page":     result.Page,
		"returned": len(result.Items),
		"total":    result.TotalCount,
	}).Debug("Catalog page loaded")
	return &result, nil
}

func (s *vehicleService) GetVehicle(ctx context.Context, id string) (*models.VehicleRecord, error) {
	raw, err := s.api.FetchVehicle(ctx, id)
	if err != nil {
		return nil, err
	}
	rec := catalog.NormalizeVehicle(*raw)
	return &rec, nil
}

func (s *vehicleService) CurrentListing() (models.VehiclePage, bool) {
	return s.browser.Latest()
}

// FilterVehicles loads the requested page and refines it in memory, matching
// how the listing page narrows results without another upstream round-trip.
func (s *vehicleService) FilterVehicles(ctx context.Context, category models.VehicleCategory, page, pageSize int, spec models.FilterSpec) ([]models.VehicleRecord, error) {
	loaded, err := s.ListVehicles(ctx, category, page, pageSize)
	if err != nil {
		return nil, err
	}
	return catalog.ApplyFilters(loaded.Items, spec), nil
}

func (s *vehicleService) QuoteRental(category models.VehicleCategory, plan models.RentalPlan, withDriver, shared bool) (models.RentalQuote, error) {
	if shared && !pricing.SupportsSharedRide(category) {
		return models.RentalQuote{}, booking.ErrSharedRideUnsupported
	}
	return pricing.Quote(category, plan, withDriver, shared), nil
}

func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func clampPageSize(size int) int {
	switch {
	case size < utils.MinPageSize:
		return utils.DefaultPageSize
	case size > utils.MaxPageSize:
		return utils.MaxPageSize
	default:
		return size
	}
}
