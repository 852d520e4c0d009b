package authjwt

import (
	"errors"
	"strconv"

	authdomain "github.com/Black-And-White-Club/matchday/app/modules/auth/domain"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claims structure. The subject is the user id.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// provider implements the Provider interface.
type provider struct {
	secret []byte
	parser *jwt.Parser
}

// NewProvider creates a new HS256 JWT provider.
func NewProvider(secret string) Provider {
	return &provider{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}
}

// ValidateToken validates a JWT token and returns the principal if valid.
func (p *provider) ValidateToken(tokenString string) (*authdomain.Principal, error) {
	token, err := p.parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSignature
		}
		return p.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, ErrInvalidSignature
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 || claims.Username == "" {
		return nil, ErrMissingIdentity
	}

	principal := &authdomain.Principal{
		UserID:   userID,
		Username: claims.Username,
	}
	if claims.ExpiresAt != nil {
		principal.ExpiresAt = claims.ExpiresAt.Time
	}
	return principal, nil
}
