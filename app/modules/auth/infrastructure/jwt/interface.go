package authjwt

import authdomain "github.com/Black-And-White-Club/matchday/app/modules/auth/domain"

// Provider validates bearer tokens. Tokens are issued elsewhere.
type Provider interface {
	// ValidateToken validates a JWT token and returns the principal it names.
	ValidateToken(tokenString string) (*authdomain.Principal, error)
}
