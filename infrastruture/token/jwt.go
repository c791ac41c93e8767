package token

import (
	"errors"
	"time"

	"github.com/beka-birhanu/alice-maze/service/i"
	"github.com/dgrijalva/jwt-go"
)

// ScopeSolve is the scope claim required to use the solve API.
const ScopeSolve = "maze:solve"

// JwtService handles JWT operations.
type JwtService struct {
	secretKey string
	issuer    string
}

var _ i.Tokenizer = &JwtService{}

// NewJwtService creates a new JWT Service with the provided configuration.
func NewJwtService(secretKey, issuer string) *JwtService {
	return &JwtService{
		secretKey: secretKey,
		issuer:    issuer,
	}
}

// Generate creates a JWT granting the solve scope to subject.
func (s *JwtService) Generate(subject string, expTime time.Duration) (string, error) {
	now := time.Now().UTC()
	jwtClaims := jwt.MapClaims{
		"sub":   subject,
		"iss":   s.issuer,
		"iat":   now.Unix(),
		"exp":   now.Add(expTime).Unix(),
		"scope": ScopeSolve,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims)
	return token.SignedString([]byte(s.secretKey))
}

// Decode parses and validates a JWT, returning the claims if valid and
// issued by this service for the solve scope.
func (s *JwtService) Decode(tokenString string) (map[string]interface{}, error) {
	token, err := jwt.Parse(tokenString, s.getSigningKey)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if !claims.VerifyIssuer(s.issuer, true) {
		return nil, errors.New("unexpected token issuer")
	}
	if scope, _ := claims["scope"].(string); scope != ScopeSolve {
		return nil, errors.New("token lacks the solve scope")
	}

	return claims, nil
}

// getSigningKey returns the signing key for token validation.
func (s *JwtService) getSigningKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("unexpected signing method")
	}
	return []byte(s.secretKey), nil
}
