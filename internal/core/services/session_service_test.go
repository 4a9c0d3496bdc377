package services

import (
	"context"
	"errors"
	"testing"

	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/out"
)

func newSessionService(record out.SessionRecord) (*SessionService, *memorySessionStore) {
	store := &memorySessionStore{record: record}
	return NewSessionService(store, nopLogger{}), store
}

// ---------- Rehydrate ----------

func TestSessionRehydrateFullRecord(t *testing.T) {
	service, _ := newSessionService(out.SessionRecord{
		Token:  "jwt-token",
		Email:  "ana@clinic.com",
		Role:   "Admin",
		UserID: "1",
	})

	session, err := service.Rehydrate(context.Background())
	if err != nil {
		t.Fatalf("Rehydrate returned error: %v", err)
	}
	if !session.IsAuthenticated {
		t.Error("expected authenticated session")
	}
	if service.Current() != session {
		t.Error("Current must reflect the rehydrated session")
	}
	if service.Token() != "jwt-token" {
		t.Errorf("unexpected token: %s", service.Token())
	}
}

func TestSessionRehydratePartialRecord(t *testing.T) {
	cases := []struct {
		name   string
		record out.SessionRecord
	}{
		{"token without email", out.SessionRecord{Token: "jwt-token"}},
		{"email without token", out.SessionRecord{Email: "ana@clinic.com"}},
		{"empty store", out.SessionRecord{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service, _ := newSessionService(tc.record)

			session, err := service.Rehydrate(context.Background())
			if err != nil {
				t.Fatalf("Rehydrate returned error: %v", err)
			}
			if session.IsAuthenticated {
				t.Error("partial record must not produce an authenticated session")
			}
			if service.Current() != domain.EmptySession() {
				t.Error("expected empty current session")
			}
		})
	}
}

// ---------- Login / Logout ----------

func TestSessionLoginPersistsRecord(t *testing.T) {
	service, store := newSessionService(out.SessionRecord{})

	session, err := service.Login(context.Background(), "joao@clinic.com", "jwt-token", "Paciente", "42")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if !session.IsAuthenticated {
		t.Error("expected authenticated session after login")
	}
	if session.Role != domain.RolePatient {
		t.Errorf("unexpected role: %s", session.Role)
	}
	if store.record.Token != "jwt-token" || store.record.Email != "joao@clinic.com" ||
		store.record.Role != "Paciente" || store.record.UserID != "42" {
		t.Errorf("store record not persisted: %+v", store.record)
	}
}

func TestSessionLoginRejectsIncompleteCredentials(t *testing.T) {
	service, store := newSessionService(out.SessionRecord{})

	_, err := service.Login(context.Background(), "joao@clinic.com", "", "Paciente", "42")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if store.saved != 0 {
		t.Error("rejected login must not touch the store")
	}
	if service.Current().IsAuthenticated {
		t.Error("rejected login must leave the session unauthenticated")
	}
}

func TestSessionLogoutClearsEverything(t *testing.T) {
	service, store := newSessionService(out.SessionRecord{
		Token: "jwt-token",
		Email: "ana@clinic.com",
	})
	service.Rehydrate(context.Background())

	if err := service.Logout(context.Background()); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if store.cleared != 1 {
		t.Error("expected store to be cleared once")
	}
	if service.Current() != domain.EmptySession() {
		t.Error("expected empty session after logout")
	}
	if service.Token() != "" {
		t.Error("expected empty token after logout")
	}
}

// ---------- Invalidate (the 401 path) ----------

func TestSessionInvalidateDestroysSession(t *testing.T) {
	service, store := newSessionService(out.SessionRecord{
		Token: "stale-token",
		Email: "ana@clinic.com",
	})
	service.Rehydrate(context.Background())

	service.Invalidate(context.Background())

	if store.cleared != 1 {
		t.Error("expected durable record to be cleared")
	}
	if service.Current().IsAuthenticated {
		t.Error("expected unauthenticated session after invalidation")
	}
}
