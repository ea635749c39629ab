package auth

import (
	"errors"
	"testing"
	"time"

	apperrors "task-manager.com/task-manager/internal/errors"
)

func TestManager_IssueAndVerify(t *testing.T) {
	m := NewManager([]byte("test-secret"), time.Hour)

	token, err := m.Issue("user-1")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	userID, err := m.Verify(token)
	if err != nil {
		t.Fatalf("failed to verify token: %v", err)
	}
	if userID != "user-1" {
		t.Errorf("expected user-1, got %s", userID)
	}
}

func TestManager_RejectsTamperedToken(t *testing.T) {
	m := NewManager([]byte("test-secret"), time.Hour)

	token, err := m.Issue("user-1")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := m.Verify(tampered); !errors.Is(err, apperrors.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestManager_RejectsTokenSignedWithOtherSecret(t *testing.T) {
	issuer := NewManager([]byte("other-secret"), time.Hour)
	verifier := NewManager([]byte("test-secret"), time.Hour)

	token, err := issuer.Issue("user-2")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, apperrors.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestManager_RejectsExpiredToken(t *testing.T) {
	m := NewManager([]byte("test-secret"), -time.Minute)

	token, err := m.Issue("user-1")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	if _, err := m.Verify(token); !errors.Is(err, apperrors.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestManager_RejectsGarbage(t *testing.T) {
	m := NewManager([]byte("test-secret"), time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := m.Verify(token); !errors.Is(err, apperrors.ErrInvalidToken) {
			t.Errorf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}
