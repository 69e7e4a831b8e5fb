package advisor

import (
	"errors"
	"fmt"
)

// ServiceErrorKind distinguishes "the assistant is unreachable" from "the
// assistant answered but unusably". Callers branch on it.
type ServiceErrorKind string

const (
	// KindUnavailable is a transport/auth/rate-limit failure reaching the
	// service. Never retried here; retry is the caller's decision.
	KindUnavailable ServiceErrorKind = "unavailable"
	// KindInvalidResponse means the service replied but the payload failed
	// to parse or failed structural checks.
	KindInvalidResponse ServiceErrorKind = "invalid_response"
)

// ServiceError is the typed failure surfaced by every advisor operation.
type ServiceError struct {
	Kind ServiceErrorKind
	Err  error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("advisor: %s: %v", e.Kind, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// IsUnavailable reports whether err is a ServiceError of kind Unavailable.
func IsUnavailable(err error) bool { return kindOf(err) == KindUnavailable }

// IsInvalidResponse reports whether err is a ServiceError of kind
// InvalidResponse.
func IsInvalidResponse(err error) bool { return kindOf(err) == KindInvalidResponse }

func kindOf(err error) ServiceErrorKind {
	var se *ServiceError
	if !errors.As(err, &se) {
		return ""
	}
	return se.Kind
}
