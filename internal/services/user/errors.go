package user

import errs "minipay/internal/errors"

var (
	ErrInvalidUsername = errs.New(errs.CodeInvalidUsername, "username not valid")
	ErrUsernameTaken   = errs.New(errs.CodeInvalidUsername, "username already taken")
	ErrInvalidCard     = errs.New(errs.CodeInvalidCard, "invalid credit card number")
	ErrCardAlreadySet  = errs.New(errs.CodeInvalidCard, "only one credit card per user")
)
