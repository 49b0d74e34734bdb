package handlers

import (
	"strconv"
	"strings"

	"swiftride/internal/models"
	"swiftride/internal/pricing"
	"swiftride/internal/services"
	"swiftride/internal/utils"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	vehicleService services.VehicleService
}

func NewVehicleHandler(vehicleService services.VehicleService) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
	}
}

// ListVehicles returns one catalog page. The category query parameter is
// optional; anything unrecognized falls back to the default category. Filter
// parameters, when present, refine the loaded page in memory.
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	var category models.VehicleCategory
	if raw := c.Query("category"); raw != "" {
		category = pricing.NormalizeCategory(raw)
	}

	spec, filtered := filterSpecFromQuery(c)
	if filtered {
		items, err := h.vehicleService.FilterVehicles(c.Request.Context(), category, params.Page, params.PageSize, spec)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.SuccessResponseWithMeta(c, "Vehicles retrieved", items, &utils.Meta{
			Count: len(items),
		})
		return
	}

	page, err := h.vehicleService.ListVehicles(c.Request.Context(), category, params.Page, params.PageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Vehicles retrieved", page.Items, &utils.Meta{
		Pagination: utils.PaginationMetaFromPage(*page),
	})
}

// filterSpecFromQuery assembles a filter from the listing query parameters.
// The second return value reports whether any filter dimension was given.
func filterSpecFromQuery(c *gin.Context) (models.FilterSpec, bool) {
	spec := models.FilterSpec{
		Brands:    splitParam(c.Query("brands")),
		Locations: splitParam(c.Query("locations")),
		Features:  splitParam(c.Query("features")),
	}

	for _, raw := range splitParam(c.Query("seats")) {
		if n, err := strconv.Atoi(raw); err == nil {
			spec.SeatingCapacity = append(spec.SeatingCapacity, n)
		}
	}
	if raw := c.Query("min_price"); raw != "" {
		spec.PriceRange.Min, _ = strconv.ParseFloat(raw, 64)
	}
	if raw := c.Query("max_price"); raw != "" {
		spec.PriceRange.Max, _ = strconv.ParseFloat(raw, 64)
	}
	spec.AvailabilityOnly = c.Query("available_only") == "true"
	spec.SortBy = models.SortOrder(c.DefaultQuery("sort_by", string(models.SortDefault)))

	filtered := len(spec.Brands) > 0 || len(spec.Locations) > 0 || len(spec.Features) > 0 ||
		len(spec.SeatingCapacity) > 0 || spec.PriceRange.Min != 0 || spec.PriceRange.Max != 0 ||
		spec.AvailabilityOnly || spec.SortBy != models.SortDefault
	return spec, filtered
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	var values []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

// GetVehicle returns one vehicle by id.
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	rec, err := h.vehicleService.GetVehicle(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, "Vehicle retrieved", rec)
}

// FilterRequest is the filter body: the page to load plus the refinement to
// apply to it.
type FilterRequest struct {
	Category string            `json:"category"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	Filters  models.FilterSpec `json:"filters"`
}

// FilterVehicles loads a page and applies the refinement given as a JSON
// body, for filter structures too wide for query parameters.
func (h *VehicleHandler) FilterVehicles(c *gin.Context) {
	var req FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	var category models.VehicleCategory
	if req.Category != "" {
		category = pricing.NormalizeCategory(req.Category)
	}

	filtered, err := h.vehicleService.FilterVehicles(c.Request.Context(), category, req.Page, req.PageSize, req.Filters)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Vehicles filtered", filtered, &utils.Meta{
		Count: len(filtered),
	})
}

// QuoteRental prices a selection without touching any draft.
func (h *VehicleHandler) QuoteRental(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		utils.BadRequestResponse(c, "category is required")
		return
	}

	quote, err := h.vehicleService.QuoteRental(
		pricing.NormalizeCategory(category),
		pricing.NormalizePlan(models.RentalPlan(c.Query("plan"))),
		c.Query("with_driver") == "true",
		c.Query("shared") == "true",
	)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, "Quote computed", quote)
}
