package in

import (
	"context"

	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
)

type SessionUseCase interface {
	// Rehydrate populates the in-memory session from durable storage once
	// at process start. Partially populated storage stays unauthenticated.
	Rehydrate(ctx context.Context) (domain.Session, error)

	// Login persists the four identity fields and authenticates the
	// session. No network call: credential verification happened upstream.
	Login(ctx context.Context, email, token, role, userID string) (domain.Session, error)

	// Logout clears durable storage and the in-memory session.
	Logout(ctx context.Context) error

	Current() domain.Session
}
