package models

// User is a participant in the payment network. A user owns exactly one
// feed and holds at most one credit card for the lifetime of the account.
type User struct {
	Username         string
	Balance          float64
	CreditCardNumber string
	Friends          map[string]*User
	Feed             *Feed
}

// NewUser builds a user with an empty friend set and a fresh feed.
// Input validation is the user service's job, not the model's.
func NewUser(username string, balance float64, cardNumber string) *User {
	return &User{
		Username:         username,
		Balance:          balance,
		CreditCardNumber: cardNumber,
		Friends:          make(map[string]*User),
		Feed:             NewFeed(),
	}
}

// HasCreditCard reports whether a card has been linked to the account.
func (u *User) HasCreditCard() bool {
	return u.CreditCardNumber != ""
}

// IsFriendsWith reports whether other is in the user's friend set.
func (u *User) IsFriendsWith(other *User) bool {
	_, ok := u.Friends[other.Username]
	return ok
}
