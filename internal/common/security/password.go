package security

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns a bcrypt hash of password.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPasswordHash verifies password against hash. Hashes that are not bcrypt
// are treated as legacy unsalted SHA-256 digests (Base64).
func CheckPasswordHash(password, hash string) bool {
	if IsLegacyHash(hash) {
		want := []byte(legacyDigest(password))
		return subtle.ConstantTimeCompare(want, []byte(hash)) == 1
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IsLegacyHash reports whether hash predates bcrypt and should be upgraded.
func IsLegacyHash(hash string) bool {
	return !strings.HasPrefix(hash, "$2a$") &&
		!strings.HasPrefix(hash, "$2b$") &&
		!strings.HasPrefix(hash, "$2y$")
}

func legacyDigest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return base64.StdEncoding.EncodeToString(sum[:])
}
