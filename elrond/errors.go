package elrond

import "errors"

// Error kinds. Every error returned by this package wraps one of them, so
// callers can branch with errors.Is. A bad address inside a transaction wraps
// both ErrInvalidTransaction and ErrInvalidAddress.
var (
	ErrInvalidKey         = errors.New("invalid key")
	ErrInvalidAddress     = errors.New("invalid address")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrWrongSigner        = errors.New("signing account does not match transaction sender")
	ErrSigning            = errors.New("signing failed")
	ErrClient             = errors.New("client error")
)
