package domain

import "errors"

// Failure taxonomy. Everything is caught at the call site and converted to a
// notification; none of these are fatal to the process.
var (
	// ErrUnauthorized: the backend answered 401. The session has already
	// been cleared by the gateway when this surfaces.
	ErrUnauthorized = errors.New("session unauthorized")

	// ErrValidation: a local guard failed, no network call was made.
	ErrValidation = errors.New("validation failed")

	// ErrBackendRejected: a non-2xx backend answer other than 401.
	ErrBackendRejected = errors.New("backend rejected request")

	// ErrUnavailable: transport-level failure, retryable by user action.
	ErrUnavailable = errors.New("backend unavailable")

	// ErrMalformedResponse: decodable transport, undecodable shape.
	ErrMalformedResponse = errors.New("malformed backend response")

	// ErrSubmitInFlight: a booking submission is already running.
	ErrSubmitInFlight = errors.New("submission already in flight")

	// ErrStaleResolution: a slot resolution finished after its selection
	// state was superseded; the result was discarded.
	ErrStaleResolution = errors.New("stale slot resolution")

	// ErrForbidden: the current role does not expose this action.
	ErrForbidden = errors.New("action not available for role")
)
