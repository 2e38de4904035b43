package apiclient

import (
	"errors"
	"fmt"
)

// Kind classifies a failed API call.
type Kind int

const (
	// KindTransport covers network failures and unreachable servers.
	KindTransport Kind = iota + 1
	// KindRejected covers non-2xx responses; Body describes why.
	KindRejected
	// KindMalformed covers 2xx responses missing expected fields.
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport_failure"
	case KindRejected:
		return "auth_rejected"
	case KindMalformed:
		return "malformed_response"
	default:
		return "unknown"
	}
}

var (
	// ErrTransportFailure matches errors of KindTransport via errors.Is
	ErrTransportFailure = errors.New("apiclient.transport_failure")

	// ErrAuthRejected matches errors of KindRejected via errors.Is
	ErrAuthRejected = errors.New("apiclient.auth_rejected")

	// ErrMalformedResponse matches errors of KindMalformed via errors.Is
	ErrMalformedResponse = errors.New("apiclient.malformed_response")

	// ErrEmptyBaseURL is returned by New when no API URL is configured
	ErrEmptyBaseURL = errors.New("apiclient.empty_base_url")

	errNotAnObject = errors.New("expected a JSON object")
)

// Error is the uniform failure shape of every client call.
type Error struct {
	Op     string // e.g. "POST /auth/login"
	Kind   Kind
	Status int    // HTTP status, zero for transport failures
	Body   string // raw response body for rejected and malformed responses
	Err    error  // underlying cause, if any
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindRejected:
		return fmt.Sprintf("apiclient: %s: status %d: %s", e.Op, e.Status, e.Body)
	case KindMalformed:
		if e.Err != nil {
			return fmt.Sprintf("apiclient: %s: malformed response: %v", e.Op, e.Err)
		}
		return fmt.Sprintf("apiclient: %s: malformed response", e.Op)
	default:
		return fmt.Sprintf("apiclient: %s: %v", e.Op, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match the kind sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrTransportFailure:
		return e.Kind == KindTransport
	case ErrAuthRejected:
		return e.Kind == KindRejected
	case ErrMalformedResponse:
		return e.Kind == KindMalformed
	}
	return false
}

// Reason returns the user-facing failure reason for err.
// For rejected calls it is the response body verbatim.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Kind == KindRejected {
		return apiErr.Body
	}
	return err.Error()
}

// StatusCode returns the HTTP status carried by err, or zero.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
