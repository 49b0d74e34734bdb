package validators

import (
	"swiftride/internal/models"
)

// ValidateBookingDetails checks everything the booking form must satisfy
// before the flow may advance to payment. The co-rider is validated with the
// same phone rule as the primary user, but only when ride-sharing is on.
func ValidateBookingDetails(details *models.BookingDetails) ValidationErrors {
	type detailsRules struct {
		FullName       string `validate:"required,min=2,max=100"`
		Email          string `validate:"required,email"`
		Phone          string `validate:"required,pk_phone"`
		PickupLocation string `validate:"required"`
		DropLocation   string `validate:"required"`
		PickupDate     string `validate:"required"`
		PickupTime     string `validate:"required"`
		ReturnDate     string `validate:"required"`
		ReturnTime     string `validate:"required"`
		RentalPlan     string `validate:"required,rental_plan"`
	}

	errs := ValidateStruct(detailsRules{
		FullName:       details.FullName,
		Email:          details.Email,
		Phone:          details.Phone,
		PickupLocation: details.PickupLocation,
		DropLocation:   details.DropLocation,
		PickupDate:     details.PickupDate,
		PickupTime:     details.PickupTime,
		ReturnDate:     details.ReturnDate,
		ReturnTime:     details.ReturnTime,
		RentalPlan:     string(details.RentalPlan),
	})

	if details.SharedRide {
		errs = append(errs, validateCoRider(details.CoRider)...)
	}
	return errs
}

func validateCoRider(rider *models.CoRider) ValidationErrors {
	if rider == nil {
		return ValidationErrors{{
			Field:   "CoRider",
			Tag:     "required",
			Message: "Co-rider information is required for a shared ride",
		}}
	}

	type coRiderRules struct {
		CoRiderName  string `validate:"required,min=2,max=100"`
		CoRiderPhone string `validate:"required,pk_phone"`
	}

	return ValidateStruct(coRiderRules{
		CoRiderName:  rider.Name,
		CoRiderPhone: rider.Phone,
	})
}

// ValidateCardDetails applies the card rules only when the method is card;
// the alternative methods carry no fields to check.
func ValidateCardDetails(card *models.CardDetails) ValidationErrors {
	type methodRules struct {
		Method string `validate:"required,payment_method"`
	}

	errs := ValidateStruct(methodRules{Method: string(card.Method)})
	if len(errs) > 0 || card.Method != models.PaymentMethodCard {
		return errs
	}

	type cardRules struct {
		CardName   string `validate:"required,min=2,max=100"`
		CardNumber string `validate:"required,card_number"`
		ExpiryDate string `validate:"required,card_expiry"`
		CVV        string `validate:"required,card_cvv"`
	}

	return ValidateStruct(cardRules{
		CardName:   card.CardName,
		CardNumber: card.CardNumber,
		ExpiryDate: card.ExpiryDate,
		CVV:        card.CVV,
	})
}
