package payment

import errs "minipay/internal/errors"

var (
	ErrSelfPayment       = errs.New(errs.CodePaymentFailed, "user cannot pay themselves")
	ErrNonPositiveAmount = errs.New(errs.CodePaymentFailed, "amount must be a non-negative number")
	ErrNoCreditCard      = errs.New(errs.CodePaymentFailed, "must have a credit card to make a payment")
	ErrChargeFailed      = errs.New(errs.CodePaymentFailed, "card charge failed")
)
