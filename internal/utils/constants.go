package utils

// Application Constants
const (
	AppName    = "SwiftRide"
	AppVersion = "1.0.0"

	// Response status values
	StatusSuccess = "success"
	StatusError   = "error"

	// Pagination
	DefaultPageSize = 5
	MaxPageSize     = 50
	MinPageSize     = 1

	// Listing price slider bounds (PKR)
	MinListingPrice = 5000
	MaxListingPrice = 150000
)

// Common error messages
const (
	ErrValidationFailed = "Validation failed"
	ErrInternalServer   = "Internal server error"
	ErrUnauthorized     = "Authentication required"
	ErrSessionExpired   = "Session expired, please login again"
	ErrUpstream         = "The rental platform is unreachable, please try again"
)
