// Package fixture provides test-data generators for seed values: random
// identifiers, emails, usernames, and password hashes. Plan placeholders
// ($uuid, $email, ...) expand through these generators.
package fixture

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// RandomID generates a random hex ID
func RandomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// UUID generates a random UUIDv4 string.
func UUID() string {
	return uuid.NewString()
}

// Email generates a unique address under the reserved test.local domain.
func Email() string {
	return fmt.Sprintf("user_%s@test.local", RandomID())
}

// Username generates a unique username.
func Username() string {
	return fmt.Sprintf("user_%s", RandomID())
}

// PasswordHash hashes password with bcrypt at MinCost. Seed data does not
// need production cost factors, and tests create many users.
func PasswordHash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
