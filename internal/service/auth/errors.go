package auth

import "errors"

// Common authorization errors
var (
	// ErrForbidden indicates the acting identity lacks the scope or role the
	// operation requires.
	ErrForbidden = errors.New("identity is not allowed to perform this operation")

	// ErrAnonymous indicates an operation was attempted without an identity.
	ErrAnonymous = errors.New("no acting identity")
)
