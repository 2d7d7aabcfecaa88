// Package app is the application facade: it wires the services together,
// renders feeds to an output sink and drives the demo scenario.
package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	errs "minipay/internal/errors"
	"minipay/internal/models"
	"minipay/internal/services/friendship"
	"minipay/internal/services/payment"
	"minipay/internal/services/user"
)

// App exposes the application-level operations.
type App struct {
	users       user.Service
	payments    payment.Service
	friendships friendship.Service
	out         io.Writer
	log         *logrus.Logger
}

// New creates the facade over the given services, writing rendered
// feeds to out.
func New(users user.Service, payments payment.Service, friendships friendship.Service, out io.Writer, log *logrus.Logger) *App {
	if log == nil {
		log = logrus.New()
	}
	return &App{
		users:       users,
		payments:    payments,
		friendships: friendships,
		out:         out,
		log:         log,
	}
}

// CreateUser forwards to the user service; validation errors are
// propagated unchanged.
func (a *App) CreateUser(username string, balance float64, cardNumber string) (*models.User, error) {
	return a.users.Create(username, balance, cardNumber)
}

// RenderFeed writes one line per feed entry in feed order, bracketed by
// a fixed header and footer.
func (a *App) RenderFeed(feed *models.Feed) {
	fmt.Fprintln(a.out, "Feed:")
	for _, entry := range feed.Entries() {
		fmt.Fprintln(a.out, entry.Text)
	}
	fmt.Fprintln(a.out, "End of Feed")
}

// DemoConfig seeds the two users of the demo scenario.
type DemoConfig struct {
	ActorName     string
	ActorBalance  float64
	ActorCard     string
	TargetName    string
	TargetBalance float64
	TargetCard    string
}

// Run executes the demo scenario: two payments, a feed render, a
// friendship and two more renders. Declined payments are logged and the
// run continues; any other error is fatal to the run.
func (a *App) Run(cfg DemoConfig) error {
	actor, err := a.CreateUser(cfg.ActorName, cfg.ActorBalance, cfg.ActorCard)
	if err != nil {
		return err
	}
	target, err := a.CreateUser(cfg.TargetName, cfg.TargetBalance, cfg.TargetCard)
	if err != nil {
		return err
	}

	if err := a.pay(actor, target, 5.00, "Coffee"); err != nil {
		return err
	}
	if err := a.pay(target, actor, 15.00, "Lunch"); err != nil {
		return err
	}

	a.RenderFeed(actor.Feed)

	if err := a.friendships.AddFriend(actor, target); err != nil {
		return err
	}

	a.RenderFeed(actor.Feed)
	a.RenderFeed(target.Feed)
	return nil
}

func (a *App) pay(actor, target *models.User, amount float64, note string) error {
	_, err := a.payments.Pay(actor, target, amount, note)
	if errors.Is(err, errs.ErrPaymentFailed) {
		a.log.WithFields(logrus.Fields{
			"actor":  actor.Username,
			"target": target.Username,
			"amount": amount,
		}).WithError(err).Warn("payment declined")
		return nil
	}
	return err
}
