package models

import "errors"

// Domain specific errors shared by the services and handlers.
var (
	ErrUnauthenticated      = errors.New("authentication required or invalid credentials")
	ErrBadRequest           = errors.New("bad request")
	ErrProviderUnavailable  = errors.New("completion provider not configured")
	ErrIdentityUnavailable  = errors.New("identity provider not configured")
	ErrVideoSearchDisabled  = errors.New("video search API not configured")
	ErrImageNotFound        = errors.New("no image found for query")
	ErrInvalidItinerary     = errors.New("itinerary document failed validation")
	ErrMalformedModelOutput = errors.New("model output is not valid JSON")
)

// CredentialError is a rejected credential together with the reason given by
// the verifier. It matches ErrUnauthenticated under errors.Is.
type CredentialError struct {
	Reason error
}

func (e *CredentialError) Error() string {
	return e.Reason.Error()
}

func (e *CredentialError) Unwrap() []error {
	return []error{ErrUnauthenticated, e.Reason}
}
