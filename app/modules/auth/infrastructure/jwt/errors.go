package authjwt

import "errors"

// Errors returned by ValidateToken. The middleware answers all of them with 401.
var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidSignature = errors.New("invalid token signature")

	// ErrMissingIdentity means the token verified but its sub is not a positive user
	// id or it carries no username.
	ErrMissingIdentity = errors.New("token does not identify a user")
)
