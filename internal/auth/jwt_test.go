package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/splittab/splittab/internal/models"
)

func TestJWTManager(t *testing.T) {
	manager := NewJWTManager("test-secret-key-for-jwt-tests", time.Hour)
	user := &models.User{ID: "user-1", Email: "alice@example.com"}

	t.Run("round trip", func(t *testing.T) {
		token, err := manager.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		claims, err := manager.Validate(token)
		if err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		if claims.UserID != user.ID {
			t.Errorf("UserID = %s, want %s", claims.UserID, user.ID)
		}
		if claims.Email != user.Email {
			t.Errorf("Email = %s, want %s", claims.Email, user.Email)
		}
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		_, err := manager.Validate("not.a.token")
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("got %v, want ErrInvalidToken", err)
		}
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		other := NewJWTManager("a-completely-different-secret", time.Hour)
		token, err := other.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if _, err := manager.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("got %v, want ErrInvalidToken", err)
		}
	})

	t.Run("expired token rejected", func(t *testing.T) {
		expired := &JWTManager{
			secretKey:     []byte("test-secret-key-for-jwt-tests"),
			tokenDuration: -time.Minute,
		}
		token, err := expired.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if _, err := manager.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("got %v, want ErrInvalidToken", err)
		}
	})

	t.Run("zero duration falls back to the default", func(t *testing.T) {
		fallback := NewJWTManager("test-secret-key-for-jwt-tests", 0)
		token, err := fallback.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		claims, err := fallback.Validate(token)
		if err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		lower := time.Now().Add(DefaultTokenDuration - time.Minute)
		if claims.ExpiresAt.Before(lower) {
			t.Errorf("ExpiresAt = %v, want at least %v", claims.ExpiresAt, lower)
		}
	})
}
