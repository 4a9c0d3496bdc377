package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/clinic-booking-gateway/internal/config"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/out"
)

// BackendAdapter is the single authenticated gateway to the clinic REST API.
// Every outbound request goes through request(): the bearer token is
// attached when the session has one and omitted otherwise, and a 401 answer
// uniformly destroys the session before surfacing domain.ErrUnauthorized.
// No other call site inspects authorization.
type BackendAdapter struct {
	client      *http.Client
	baseURL     string
	credentials out.CredentialsPort
	logger      out.LoggerPort
}

func NewBackendAdapter(cfg *config.Config, credentials out.CredentialsPort, logger out.LoggerPort) *BackendAdapter {
	timeout := cfg.Backend.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &BackendAdapter{
		client:      &http.Client{Timeout: timeout},
		baseURL:     cfg.Backend.URL,
		credentials: credentials,
		logger:      logger,
	}
}

// request performs one backend call. result, when non-nil, receives the
// decoded JSON body; an undecodable shape maps to ErrMalformedResponse so
// callers can treat it as an empty result.
func (a *BackendAdapter) request(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	requestID := uuid.NewString()
	url := a.baseURL + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("backend.request.encode_failed: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("backend.request.build_failed: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := a.credentials.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("backend.request.transport_failed", out.LogFields{
			"requestId": requestID,
			"method":    method,
			"path":      path,
			"error":     err.Error(),
		})
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		a.logger.Warn("backend.request.unauthorized", out.LogFields{
			"requestId": requestID,
			"method":    method,
			"path":      path,
		})
		// The session is always cleared on 401, not only redirected.
		a.credentials.Invalidate(ctx)
		return domain.ErrUnauthorized
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		a.logger.Error("backend.request.rejected", out.LogFields{
			"requestId": requestID,
			"method":    method,
			"path":      path,
			"status":    resp.StatusCode,
		})
		return fmt.Errorf("%w: unexpected status code %d", domain.ErrBackendRejected, resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			a.logger.Error("backend.request.decode_failed", out.LogFields{
				"requestId": requestID,
				"method":    method,
				"path":      path,
				"error":     err.Error(),
			})
			return fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
		}
	}

	a.logger.Debug("backend.request.done", out.LogFields{
		"requestId": requestID,
		"method":    method,
		"path":      path,
		"status":    resp.StatusCode,
	})

	return nil
}
