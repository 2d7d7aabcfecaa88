package payment

import "minipay/internal/models"

// CardCharger charges a payment amount to a credit card through an
// external card processor. Implementations report a processor-level
// failure by returning a non-nil error.
type CardCharger interface {
	Charge(cardNumber string, target *models.User, amount float64, note string) error
}

// NoopCardCharger is the default charger: every charge succeeds.
type NoopCardCharger struct{}

func (NoopCardCharger) Charge(string, *models.User, float64, string) error { return nil }
