package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials") // Credential mismatch on any login
	ErrValidation         = errors.New("validation failed")   // Missing or malformed required input
	ErrNotFound           = errors.New("not found")           // Entity absent from its store
	ErrUnauthenticated    = errors.New("not authenticated")   // Action needs a logged-in user
	ErrForbidden          = errors.New("insufficient role")   // Principal lacks the required role
)
