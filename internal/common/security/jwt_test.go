package security

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"problem_app/internal/domain/model"
	"problem_app/internal/platform/config"
)

const testSecret = "a-test-signing-key-that-is-long-enough-for-hs256"

func newTestIssuer(now time.Time) *TokenIssuer {
	issuer := NewTokenIssuer(config.JWT{
		Secret:     testSecret,
		Issuer:     "TestApp",
		Audience:   "TestAppUsers",
		Expiration: 24 * time.Hour,
	})
	issuer.now = func() time.Time { return now }
	return issuer
}

func TestTokenIssuer_Issue(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	issuer := newTestIssuer(now)
	user := &model.User{ID: "u-1", Username: "alice", Email: "alice@example.com"}

	token, expiresAt, err := issuer.Issue(user)
	require.NoError(t, err)
	assert.Equal(t, now.Add(24*time.Hour).UTC(), expiresAt)

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer("TestApp"),
		jwt.WithAudience("TestAppUsers"),
	)
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	assert.Equal(t, "u-1", claims["sub"])
	assert.Equal(t, "u-1", claims["user_id"])
	assert.Equal(t, "alice", claims["username"])
	assert.Equal(t, "alice@example.com", claims["email"])
	assert.NotEmpty(t, claims["jti"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.Equal(t, expiresAt.Unix(), exp.Unix())
}

func TestTokenIssuer_UniqueTokenIDs(t *testing.T) {
	issuer := newTestIssuer(time.Now())
	user := &model.User{ID: "u-1", Username: "alice"}

	first, _, err := issuer.Issue(user)
	require.NoError(t, err)
	second, _, err := issuer.Issue(user)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestTokenIssuer_RejectsWrongKey(t *testing.T) {
	issuer := newTestIssuer(time.Now())
	token, _, err := issuer.Issue(&model.User{ID: "u-1", Username: "alice"})
	require.NoError(t, err)

	_, err = jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte("some-other-key-of-sufficient-length-000000"), nil
	})
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestTokenIssuer_IdentityFromVerifiedToken(t *testing.T) {
	issuer := newTestIssuer(time.Now())
	token, _, err := issuer.Issue(&model.User{ID: "u-7", Username: "bob", Email: "bob@example.com"})
	require.NoError(t, err)

	decoded, err := issuer.Auth().Decode(token)
	require.NoError(t, err)
	raw, err := decoded.AsMap(context.Background())
	require.NoError(t, err)

	id, err := issuer.IdentityFromClaims(jwt.MapClaims(raw))
	require.NoError(t, err)
	assert.Equal(t, Identity{UserID: "u-7", Username: "bob", Email: "bob@example.com"}, id)
}

func TestTokenIssuer_IdentityFromClaims(t *testing.T) {
	issuer := newTestIssuer(time.Now())

	tests := []struct {
		name    string
		claims  jwt.MapClaims
		wantErr bool
	}{
		{
			name:   "audience as string",
			claims: jwt.MapClaims{"iss": "TestApp", "aud": "TestAppUsers", "user_id": "u", "username": "n"},
		},
		{
			name:   "audience as list",
			claims: jwt.MapClaims{"iss": "TestApp", "aud": []interface{}{"x", "TestAppUsers"}, "user_id": "u", "username": "n"},
		},
		{
			name:    "wrong issuer",
			claims:  jwt.MapClaims{"iss": "Other", "aud": "TestAppUsers", "user_id": "u", "username": "n"},
			wantErr: true,
		},
		{
			name:    "wrong audience",
			claims:  jwt.MapClaims{"iss": "TestApp", "aud": []string{"Other"}, "user_id": "u", "username": "n"},
			wantErr: true,
		},
		{
			name:    "missing user id",
			claims:  jwt.MapClaims{"iss": "TestApp", "aud": "TestAppUsers", "username": "n"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := issuer.IdentityFromClaims(tt.claims)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
