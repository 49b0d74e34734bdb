package platform

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"swiftride/internal/models"
)

// VehiclePageRaw is one undecorated catalog page: the raw items plus the
// total the platform claims. Normalization and clamping happen in catalog.
type VehiclePageRaw struct {
	Items []models.RawVehicle
	Total int
}

// FetchVehicles requests one catalog page. vehicleType uses the platform's
// display vocabulary and may be empty for all categories.
func (c *Client) FetchVehicles(ctx context.Context, vehicleType string, page, limit int) (*VehiclePageRaw, error) {
	query := url.Values{}
	if vehicleType != "" {
		query.Set("vehicleType", vehicleType)
	}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("page", strconv.Itoa(page))

	var items []models.RawVehicle
	env, err := c.do(ctx, http.MethodGet, "/vehicles", "", query, nil, &items)
	if err != nil {
		return nil, err
	}

	return &VehiclePageRaw{Items: items, Total: env.Total}, nil
}

// FetchVehicle retrieves a single vehicle by its platform id.
func (c *Client) FetchVehicle(ctx context.Context, id string) (*models.RawVehicle, error) {
	var raw models.RawVehicle
	if _, err := c.do(ctx, http.MethodGet, "/vehicles/"+id, "", nil, nil, &raw); err != nil {
		return nil, err
	}
	return &raw, nil
}
