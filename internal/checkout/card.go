package checkout

import (
	"errors"
	"regexp"
	"strings"

	"luxe-be/internal/payment"
)

var (
	ErrIncompleteCardDetails = errors.New("complete card details are required")
	ErrInvalidCardNumber     = errors.New("invalid card number")
)

var cardDigitsRegex = regexp.MustCompile(`^\d{13,19}$`)

// ValidatePayment checks method-specific payment input. Card payments
// require the full card tuple and a Luhn-valid number; other methods
// carry no client-side checks.
func ValidatePayment(method string, details payment.Details) error {
	if method != "card" {
		return nil
	}

	if details.CardNumber == "" || details.ExpiryDate == "" || details.CVV == "" {
		return ErrIncompleteCardDetails
	}
	if !ValidCardNumber(details.CardNumber) {
		return ErrInvalidCardNumber
	}
	return nil
}

// ValidCardNumber runs the Luhn check over a card number, ignoring
// spaces and dashes.
func ValidCardNumber(cardNumber string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(cardNumber)

	if !cardDigitsRegex.MatchString(cleaned) {
		return false
	}

	sum := 0
	double := false
	for i := len(cleaned) - 1; i >= 0; i-- {
		digit := int(cleaned[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}

	return sum%10 == 0
}
