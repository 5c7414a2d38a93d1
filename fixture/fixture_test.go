package fixture

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestRandomID_Unique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := RandomID()
		if len(id) != 16 {
			t.Fatalf("expected 16 hex chars, got %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestEmail_TestDomain(t *testing.T) {
	t.Parallel()

	email := Email()
	if !strings.HasSuffix(email, "@test.local") {
		t.Errorf("expected test.local domain, got %q", email)
	}
	if Email() == email {
		t.Error("expected unique emails")
	}
}

func TestUsername_Prefix(t *testing.T) {
	t.Parallel()

	if name := Username(); !strings.HasPrefix(name, "user_") {
		t.Errorf("expected user_ prefix, got %q", name)
	}
}

func TestUUID_Format(t *testing.T) {
	t.Parallel()

	id := UUID()
	if len(id) != 36 || strings.Count(id, "-") != 4 {
		t.Errorf("expected canonical UUID string, got %q", id)
	}
}

func TestPasswordHash_Verifiable(t *testing.T) {
	t.Parallel()

	hash, err := PasswordHash("testpass123")
	if err != nil {
		t.Fatalf("PasswordHash: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("testpass123")); err != nil {
		t.Errorf("hash does not verify: %v", err)
	}
}
