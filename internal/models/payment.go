package models

import "github.com/google/uuid"

// Payment records one completed transfer between two users. It is
// immutable once created and is shared by the feed entries of both parties.
type Payment struct {
	ID     string
	Amount float64
	Actor  *User
	Target *User
	Note   string
}

// NewPayment creates a payment with a fresh unique ID.
func NewPayment(amount float64, actor, target *User, note string) *Payment {
	return &Payment{
		ID:     uuid.NewString(),
		Amount: amount,
		Actor:  actor,
		Target: target,
		Note:   note,
	}
}
