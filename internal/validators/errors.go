package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidCardNumber = errors.New("invalid card number")
	ErrInvalidCardExpiry = errors.New("invalid card expiry")
	ErrInvalidCardCvc    = errors.New("invalid card cvc")
	ErrInvalidStruct     = errors.New("invalid field value")
)
