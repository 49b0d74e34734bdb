package booking

import (
	"time"

	"swiftride/internal/models"
	"swiftride/internal/platform"
	"swiftride/internal/utils"
)

// PaymentStatusCompleted is the status stamped on every simulated payment.
// No payment gateway is involved; the platform treats the booking as paid.
const PaymentStatusCompleted = "completed"

// ProcessPayment turns validated card input into a receipt. The raw card
// number is masked here and the CVV is discarded; nothing downstream of this
// function ever sees either.
func ProcessPayment(card *models.CardDetails) *models.PaymentReceipt {
	receipt := &models.PaymentReceipt{
		Method:        card.Method,
		SaveCard:      card.SaveCard,
		PaymentDate:   time.Now().UTC(),
		PaymentStatus: PaymentStatusCompleted,
	}

	if card.Method == models.PaymentMethodCard {
		receipt.CardName = card.CardName
		receipt.MaskedCardNumber = utils.MaskCardNumber(card.CardNumber)
		receipt.ExpiryDate = card.ExpiryDate
	}
	return receipt
}

func paymentPayload(receipt *models.PaymentReceipt) platform.PaymentInfoPayload {
	return platform.PaymentInfoPayload{
		PaymentMethod:    string(receipt.Method),
		CardName:         receipt.CardName,
		MaskedCardNumber: receipt.MaskedCardNumber,
		ExpiryDate:       receipt.ExpiryDate,
		SaveCard:         receipt.SaveCard,
		PaymentDate:      receipt.PaymentDate,
		PaymentStatus:    receipt.PaymentStatus,
	}
}
