// Package payment implements the pay operation between two users.
//
// A payment is funded from the actor's balance when it covers the whole
// amount, and otherwise charged in full to the actor's credit card.
// There is no partial split between balance and card.
package payment

import (
	"fmt"

	"minipay/internal/models"
)

// Service handles payments between users.
type Service interface {
	Pay(actor, target *models.User, amount float64, note string) (*models.Payment, error)
}

type service struct {
	charger CardCharger
}

// NewService creates a payment service. A nil charger defaults to the
// no-op processor, which accepts every charge.
func NewService(charger CardCharger) Service {
	if charger == nil {
		charger = NoopCardCharger{}
	}
	return &service{charger: charger}
}

// Pay transfers amount from actor to target and records the event in
// both users' feeds. On any failure neither user is mutated.
func (s *service) Pay(actor, target *models.User, amount float64, note string) (*models.Payment, error) {
	if actor.Username == target.Username {
		return nil, ErrSelfPayment
	}
	if amount <= 0 {
		return nil, ErrNonPositiveAmount
	}

	if actor.Balance >= amount {
		actor.Balance -= amount
	} else {
		if !actor.HasCreditCard() {
			return nil, ErrNoCreditCard
		}
		// The whole amount goes to the card; the balance is untouched.
		if err := s.charger.Charge(actor.CreditCardNumber, target, amount, note); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrChargeFailed, err)
		}
	}
	target.Balance += amount

	p := models.NewPayment(amount, actor, target, note)
	actor.Feed.AddPaymentEntry(p)
	target.Feed.AddPaymentEntry(p)
	return p, nil
}
