package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// GroupOrchestrator is the service-to-service principal group. Only tokens
// carrying it may drive notification deliveries.
const GroupOrchestrator = "orchestrator"

type Claims struct {
	Groups []string `json:"groups"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey     []byte
	tokenDuration time.Duration
}

func NewService(secretKey string, tokenDuration time.Duration) *Service {
	return &Service{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
	}
}

// MintServiceToken issues a short-lived HS256 token identifying an internal
// caller by subject and group membership.
func (s *Service) MintServiceToken(subject string, groups ...string) (string, error) {
	now := time.Now()
	claims := Claims{
		Groups: groups,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Decision is the tagged result of an authorization check.
type Decision struct {
	Allowed bool
	Reason  string
}

// Authorize checks that the claims carry the required group. It returns a
// decision value rather than signalling denial through an error.
func Authorize(claims *Claims, requiredGroup string) Decision {
	if claims == nil {
		return Decision{Allowed: false, Reason: "no claims present"}
	}
	for _, g := range claims.Groups {
		if g == requiredGroup {
			return Decision{Allowed: true}
		}
	}
	return Decision{Allowed: false, Reason: "caller is not in group " + requiredGroup}
}
