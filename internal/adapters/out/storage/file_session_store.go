package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/suchimauz/clinic-booking-gateway/internal/config"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/out"
)

// FileSessionStore is the durable side of the session: one JSON file holding
// the four fixed keys (token, userEmail, userRole, userId). It mirrors the
// browser localStorage the UI used to own. All four values are written in
// one operation and cleared together; a missing file reads as an empty
// record, not an error.
type FileSessionStore struct {
	path   string
	mu     sync.Mutex
	logger out.LoggerPort
}

func NewFileSessionStore(cfg *config.Config, logger out.LoggerPort) *FileSessionStore {
	return &FileSessionStore{
		path:   cfg.Session.FilePath,
		logger: logger,
	}
}

func (s *FileSessionStore) Load(ctx context.Context) (out.SessionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return out.SessionRecord{}, nil
		}
		return out.SessionRecord{}, err
	}

	var record out.SessionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		// A corrupt store must not block startup; it reads as logged out.
		s.logger.Warn("session_store.load.corrupt", out.LogFields{
			"path":  s.path,
			"error": err.Error(),
		})
		return out.SessionRecord{}, nil
	}

	return record, nil
}

func (s *FileSessionStore) Save(ctx context.Context, record out.SessionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}

	// Write-then-rename so a crash never leaves a half-written session.
	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileSessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
