package services

import (
	"context"
	"sync"

	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/out"
)

// SessionService is the single source of truth for "who is using the app and
// with what privilege". One instance owns the session for the process
// lifetime; everything else reads through it.
//
// It also implements out.CredentialsPort so the backend gateway can read the
// bearer token and destroy the session on a 401.
type SessionService struct {
	store   out.SessionStorePort
	logger  out.LoggerPort
	mu      sync.RWMutex
	session domain.Session
}

func NewSessionService(store out.SessionStorePort, logger out.LoggerPort) *SessionService {
	return &SessionService{
		store:  store,
		logger: logger.WithModule("SessionService"),
	}
}

func (s *SessionService) Rehydrate(ctx context.Context) (domain.Session, error) {
	record, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("session.rehydrate.load_failed", out.LogFields{
			"error": err.Error(),
		})
		return domain.EmptySession(), err
	}

	// The invariant is enforced here, not only at login: token without
	// email (or the reverse) stays unauthenticated.
	session := domain.SessionFromRecord(record.Token, record.Email, record.Role, record.UserID)

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	s.logger.Info("session.rehydrate.done", out.LogFields{
		"authenticated": session.IsAuthenticated,
		"role":          session.Role,
	})

	return session, nil
}

func (s *SessionService) Login(ctx context.Context, email, token, role, userID string) (domain.Session, error) {
	session := domain.SessionFromRecord(token, email, role, userID)
	if !session.IsAuthenticated {
		s.logger.Warn("session.login.rejected", out.LogFields{
			"email": email,
		})
		return domain.EmptySession(), domain.ErrValidation
	}

	record := out.SessionRecord{
		Token:  token,
		Email:  email,
		Role:   role,
		UserID: userID,
	}
	if err := s.store.Save(ctx, record); err != nil {
		s.logger.Error("session.login.persist_failed", out.LogFields{
			"error": err.Error(),
		})
		return domain.EmptySession(), err
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	s.logger.Info("session.login.done", out.LogFields{
		"email": email,
		"role":  role,
	})

	return session, nil
}

func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		s.logger.Error("session.logout.clear_failed", out.LogFields{
			"error": err.Error(),
		})
		return err
	}

	s.mu.Lock()
	s.session = domain.EmptySession()
	s.mu.Unlock()

	s.logger.Info("session.logout.done", out.LogFields{})
	return nil
}

func (s *SessionService) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Token implements out.CredentialsPort.
func (s *SessionService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Token
}

// Invalidate implements out.CredentialsPort. Called by the gateway when the
// backend answers 401: the session is always cleared, not only redirected.
func (s *SessionService) Invalidate(ctx context.Context) {
	if err := s.store.Clear(ctx); err != nil {
		s.logger.Warn("session.invalidate.clear_failed", out.LogFields{
			"error": err.Error(),
		})
	}

	s.mu.Lock()
	s.session = domain.EmptySession()
	s.mu.Unlock()

	s.logger.Info("session.invalidate.done", out.LogFields{})
}
