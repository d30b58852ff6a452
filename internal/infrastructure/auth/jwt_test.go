package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alexedwards/argon2id"
)

var secret = strings.Repeat("s", 32)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager(secret, time.Hour)

	token, exp, err := m.IssueCitizenToken("123.456.789-00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Fatalf("expected future expiry, got %v", exp)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Subject != "123.456.789-00" || !claims.HasRole(RoleCitizen) || claims.HasRole(RoleCaseworker) {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if len(claims.Audience) != 1 || claims.Audience[0] != AudienceCitizen {
		t.Fatalf("unexpected audience: %v", claims.Audience)
	}
}

func TestJWTManager_Caseworker(t *testing.T) {
	m := NewJWTManager(secret, time.Hour)
	token, _, err := m.IssueCaseworkerToken("servidor@inss.gov.br")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !claims.HasRole(RoleCaseworker) {
		t.Fatalf("expected caseworker role: %+v", claims)
	}
}

func TestJWTManager_Rejects(t *testing.T) {
	m := NewJWTManager(secret, time.Hour)
	token, _, _ := m.IssueCitizenToken("123.456.789-00")

	t.Run("other secret", func(t *testing.T) {
		other := NewJWTManager(strings.Repeat("x", 32), time.Hour)
		if _, err := other.Parse(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		later := NewJWTManager(secret, time.Hour)
		later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		if _, err := later.Parse(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := m.Parse("not-a-token"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("senha-forte")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("unexpected hash format %q", hash)
	}
	ok, err := argon2id.ComparePasswordAndHash("senha-forte", hash)
	if err != nil || !ok {
		t.Fatalf("expected hash to verify, got %v %v", ok, err)
	}
}
