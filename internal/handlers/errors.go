package handlers

import (
	"errors"
	"net/http"

	"swiftride/internal/booking"
	"swiftride/internal/catalog"
	"swiftride/internal/platform"
	"swiftride/internal/services"
	"swiftride/internal/utils"
	"swiftride/internal/validators"

	"github.com/gin-gonic/gin"
)

// respondError maps service and platform failures onto the response
// vocabulary. Every handler funnels its errors through here so the mapping
// stays in one place.
func respondError(c *gin.Context, err error) {
	var validationErrs validators.ValidationErrors
	var notFound *platform.NotFoundError
	var apiErr *platform.APIError
	var netErr *platform.NetworkError

	switch {
	case errors.As(err, &validationErrs):
		utils.ValidationErrorResponse(c, validationErrs.Details())

	case errors.Is(err, platform.ErrSessionExpired):
		utils.SessionExpiredResponse(c)

	case errors.Is(err, services.ErrDraftNotFound):
		utils.NotFoundResponse(c, "Booking draft")

	case errors.As(err, &notFound):
		utils.NotFoundResponse(c, notFound.Resource)

	case errors.Is(err, booking.ErrInvalidTransition):
		utils.ConflictResponse(c, err.Error())

	case errors.Is(err, booking.ErrSharedRideUnsupported),
		errors.Is(err, booking.ErrReturnBeforePickup):
		utils.BadRequestResponse(c, err.Error())

	case errors.Is(err, catalog.ErrSuperseded):
		utils.ConflictResponse(c, "A newer catalog request replaced this one")

	case errors.As(err, &apiErr):
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			utils.ErrorResponse(c, http.StatusBadRequest, "PLATFORM_REJECTED", apiErr.Message)
		} else {
			utils.UpstreamErrorResponse(c, apiErr.Message)
		}

	case errors.As(err, &netErr):
		utils.UpstreamErrorResponse(c, "")

	default:
		utils.InternalServerErrorResponse(c)
	}
}
