package errors

// Error kind codes.
const (
	CodeInvalidUsername = "INVALID_USERNAME"
	CodeInvalidCard     = "INVALID_CARD"
	CodePaymentFailed   = "PAYMENT_FAILED"
	CodeDuplicateFriend = "DUPLICATE_FRIEND"
)

// Kind sentinels, one per code. errors.Is(err, ErrPaymentFailed) is true
// for every payment error regardless of its message.
var (
	ErrInvalidUsername = &DomainError{
		Code:    CodeInvalidUsername,
		Message: "username not valid",
	}
	ErrInvalidCard = &DomainError{
		Code:    CodeInvalidCard,
		Message: "credit card not valid",
	}
	ErrPaymentFailed = &DomainError{
		Code:    CodePaymentFailed,
		Message: "payment failed",
	}
	ErrDuplicateFriend = &DomainError{
		Code:    CodeDuplicateFriend,
		Message: "users are already friends",
	}
)
