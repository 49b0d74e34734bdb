package validators

import (
	"errors"
	"fmt"
	"strings"

	"swiftride/internal/models"
	"swiftride/internal/utils"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validation functions
	validate.RegisterValidation("pk_phone", validatePhone)
	validate.RegisterValidation("cnic", validateCNIC)
	validate.RegisterValidation("rental_plan", validateRentalPlan)
	validate.RegisterValidation("vehicle_category", validateVehicleCategory)
	validate.RegisterValidation("payment_method", validatePaymentMethod)
	validate.RegisterValidation("card_number", validateCardNumber)
	validate.RegisterValidation("card_expiry", validateCardExpiry)
	validate.RegisterValidation("card_cvv", validateCVV)
	validate.RegisterValidation("sort_order", validateSortOrder)
}

// Common validation errors
var (
	ErrInvalidPhoneNumber = errors.New("phone number must be in the format 0342-6988007")
	ErrInvalidCNIC        = errors.New("CNIC must be a valid 13-digit number")
	ErrInvalidCardNumber  = errors.New("card number must be 16 digits")
	ErrInvalidCardExpiry  = errors.New("expiry date must be in MM/YY format")
	ErrInvalidCVV         = errors.New("CVV must be 3 digits")
)

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// Details renders the errors as a field -> message map for responses.
func (v ValidationErrors) Details() map[string]string {
	details := make(map[string]string, len(v))
	for _, err := range v {
		details[err.Field] = err.Message
	}
	return details
}

// ValidateStruct validates a struct and returns detailed errors
func ValidateStruct(s interface{}) ValidationErrors {
	var validationErrors ValidationErrors

	err := validate.Struct(s)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			validationError := ValidationError{
				Field:   err.Field(),
				Tag:     err.Tag(),
				Value:   fmt.Sprintf("%v", err.Value()),
				Message: getErrorMessage(err),
			}
			validationErrors = append(validationErrors, validationError)
		}
	}

	return validationErrors
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", err.Field())
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
	case "pk_phone":
		return ErrInvalidPhoneNumber.Error()
	case "cnic":
		return ErrInvalidCNIC.Error()
	case "rental_plan":
		return "Invalid rental plan"
	case "vehicle_category":
		return "Invalid vehicle category"
	case "payment_method":
		return "Invalid payment method"
	case "card_number":
		return ErrInvalidCardNumber.Error()
	case "card_expiry":
		return ErrInvalidCardExpiry.Error()
	case "card_cvv":
		return ErrInvalidCVV.Error()
	case "sort_order":
		return "Invalid sort order"
	default:
		return fmt.Sprintf("%s is invalid", err.Field())
	}
}

func validatePhone(fl validator.FieldLevel) bool {
	return utils.IsValidPhone(fl.Field().String())
}

func validateCNIC(fl validator.FieldLevel) bool {
	return utils.IsValidCNIC(fl.Field().String())
}

func validateRentalPlan(fl validator.FieldLevel) bool {
	switch models.RentalPlan(fl.Field().String()) {
	case models.Plan12Hour, models.Plan2Day, models.Plan3Day, models.Plan1Week:
		return true
	}
	return false
}

func validateVehicleCategory(fl validator.FieldLevel) bool {
	switch models.VehicleCategory(strings.ToLower(fl.Field().String())) {
	case models.CategoryCar, models.CategoryBus, models.CategoryMinibus, models.CategoryCoaster:
		return true
	}
	return false
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	switch models.PaymentMethod(fl.Field().String()) {
	case models.PaymentMethodCard, models.PaymentMethodPayPal, models.PaymentMethodCOD:
		return true
	}
	return false
}

func validateCardNumber(fl validator.FieldLevel) bool {
	return utils.IsValidCardNumber(fl.Field().String())
}

func validateCardExpiry(fl validator.FieldLevel) bool {
	return utils.IsValidCardExpiry(fl.Field().String())
}

func validateCVV(fl validator.FieldLevel) bool {
	return utils.IsValidCVV(fl.Field().String())
}

func validateSortOrder(fl validator.FieldLevel) bool {
	switch models.SortOrder(fl.Field().String()) {
	case models.SortDefault, models.SortPriceLowHigh, models.SortPriceHighLow:
		return true
	}
	return false
}
