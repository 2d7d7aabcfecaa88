// Package main runs the demo scenario: it wires the services together,
// seeds two users and renders their feeds to standard output.
package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"minipay/internal/app"
	"minipay/internal/config"
	"minipay/internal/repositories"
	"minipay/internal/services/friendship"
	"minipay/internal/services/payment"
	"minipay/internal/services/user"
)

func main() {
	config.LoadEnv()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	repo := repositories.NewUserRepository()
	users := user.NewService(repo)
	payments := payment.NewService(nil) // no-op card processor
	friendships := friendship.NewService()

	a := app.New(users, payments, friendships, os.Stdout, log)

	cfg := app.DemoConfig{
		ActorName:     config.GetEnv("DEMO_ACTOR_NAME", "Bobby"),
		ActorBalance:  config.GetFloatEnv("DEMO_ACTOR_BALANCE", 5.00),
		ActorCard:     config.GetEnv("DEMO_ACTOR_CARD", "4111111111111111"),
		TargetName:    config.GetEnv("DEMO_TARGET_NAME", "Carol"),
		TargetBalance: config.GetFloatEnv("DEMO_TARGET_BALANCE", 10.00),
		TargetCard:    config.GetEnv("DEMO_TARGET_CARD", "4242424242424242"),
	}

	if err := a.Run(cfg); err != nil {
		log.WithError(err).Fatal("demo run failed")
	}
}
