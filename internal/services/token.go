package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"bloghub/internal/config"
	"bloghub/internal/models"
)

var ErrInvalidToken = errors.New("expired or invalid token")

// UserClaims embeds the user record under "data", matching the wire
// format clients already decode. The password field never marshals.
type UserClaims struct {
	User models.User `json:"data"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies bearer tokens. The secret and TTL come
// from config at startup; nothing here touches the environment.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
	}
}

// Issue signs a token for the user with an expiry.
func (s *TokenService) Issue(user *models.User) (string, error) {
	claims := UserClaims{
		User: *user,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded claims.
// Callers must re-resolve the user from the store by claims.User.ID
// before trusting anything else in the claim.
func (s *TokenService) Verify(raw string) (*UserClaims, error) {
	claims := &UserClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
