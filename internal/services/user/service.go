package user

import (
	"minipay/internal/models"
	"minipay/internal/repositories"
	"minipay/internal/validation"
)

// Service handles user creation and credit card management.
type Service interface {
	Create(username string, balance float64, cardNumber string) (*models.User, error)
	Get(username string) (*models.User, error)
	AddCreditCard(user *models.User, cardNumber string) error
}

type service struct {
	repo repositories.UserRepository
}

// NewService creates a new user service backed by the given registry.
func NewService(repo repositories.UserRepository) Service {
	if repo == nil {
		panic("repo is required")
	}
	return &service{repo: repo}
}

// Create validates the username and optional card number, then registers
// a new user. cardNumber may be empty; the card can be linked later.
func (s *service) Create(username string, balance float64, cardNumber string) (*models.User, error) {
	if !validation.ValidUsername(username) {
		return nil, ErrInvalidUsername
	}
	if cardNumber != "" && !validation.ValidCardNumber(cardNumber) {
		return nil, ErrInvalidCard
	}

	user := models.NewUser(username, balance, cardNumber)
	if err := s.repo.Create(user); err != nil {
		if err == repositories.ErrUsernameTaken {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *service) Get(username string) (*models.User, error) {
	return s.repo.GetByUsername(username)
}

// AddCreditCard links a card to a user that does not have one yet.
// The card number, once set, never changes.
func (s *service) AddCreditCard(user *models.User, cardNumber string) error {
	if user.HasCreditCard() {
		return ErrCardAlreadySet
	}
	if !validation.ValidCardNumber(cardNumber) {
		return ErrInvalidCard
	}
	user.CreditCardNumber = cardNumber
	return nil
}
