package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"problem_app/internal/domain/model"
	"problem_app/internal/platform/config"
)

// TokenIssuer mints HS256 bearer tokens and exposes the matching verifier.
type TokenIssuer struct {
	auth     *jwtauth.JWTAuth
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

func NewTokenIssuer(cfg config.JWT) *TokenIssuer {
	ttl := cfg.Expiration
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenIssuer{
		auth:     jwtauth.New("HS256", []byte(cfg.Secret), nil),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Auth returns the jwtauth instance used by the router's Verifier.
func (t *TokenIssuer) Auth() *jwtauth.JWTAuth {
	return t.auth
}

// Issue returns a signed token for user and the moment it expires.
func (t *TokenIssuer) Issue(user *model.User) (string, time.Time, error) {
	now := t.now().UTC()
	expiresAt := now.Add(t.ttl)

	claims := jwt.MapClaims{
		"sub":      user.ID,
		"user_id":  user.ID,
		"username": user.Username,
		"email":    user.Email,
		"jti":      uuid.NewString(),
		"iss":      t.issuer,
		"aud":      t.audience,
		"iat":      now.Unix(),
		"exp":      expiresAt.Unix(),
	}
	_, tokenString, err := t.auth.Encode(claims)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, expiresAt, nil
}

// Identity is the authenticated caller carried by a verified token.
type Identity struct {
	UserID   string
	Username string
	Email    string
}

// IdentityFromClaims checks issuer and audience and extracts the caller.
// Signature and expiry are checked earlier by jwtauth.Verifier.
func (t *TokenIssuer) IdentityFromClaims(claims jwt.MapClaims) (Identity, error) {
	if iss, _ := claims["iss"].(string); iss != t.issuer {
		return Identity{}, errors.New("token issuer is not accepted")
	}
	if !hasAudience(claims["aud"], t.audience) {
		return Identity{}, errors.New("token audience is not accepted")
	}

	userID, err := GetUserIDFromClaims(claims)
	if err != nil {
		return Identity{}, err
	}
	username, ok := claims["username"].(string)
	if !ok {
		return Identity{}, errors.New("username claim is missing or not a string")
	}
	email, _ := claims["email"].(string)

	return Identity{UserID: userID, Username: username, Email: email}, nil
}

func GetUserIDFromClaims(claims jwt.MapClaims) (string, error) {
	id, ok := claims["user_id"].(string)
	if !ok || id == "" {
		return "", errors.New("user_id claim is missing or not a string")
	}
	return id, nil
}

func hasAudience(raw interface{}, want string) bool {
	switch aud := raw.(type) {
	case string:
		return aud == want
	case []string:
		for _, a := range aud {
			if a == want {
				return true
			}
		}
	case []interface{}:
		for _, a := range aud {
			if s, ok := a.(string); ok && s == want {
				return true
			}
		}
	}
	return false
}
