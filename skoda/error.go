package skoda

import (
	"errors"
	"fmt"
)

// ErrorKind tells a locally rejected call apart from a failed remote call.
type ErrorKind int

const (
	KindRemote ErrorKind = iota
	KindValidation
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	default:
		return "remote"
	}
}

var (
	ErrRemote     = errors.New("remote call failed")
	ErrValidation = errors.New("rejected by local validation")

	ErrDurationExceeded = errors.New("duration limit exceeded, max 30 minutes")

	ErrGroupNotFound = errors.New("data group not found")
	ErrFieldNotFound = errors.New("data field not found")
)

// CommandError is returned by every Client operation. Summary is a fixed
// description of the operation, Message is the original message of whatever
// failed underneath.
type CommandError struct {
	Summary string
	Message string
	Kind    ErrorKind

	err error
}

func (e *CommandError) Error() string {
	if e.Message == "" {
		return e.Summary
	}
	return e.Summary + ": " + e.Message
}

func (e *CommandError) Unwrap() error {
	return e.err
}

// Is matches ErrRemote / ErrValidation against the error kind.
func (e *CommandError) Is(target error) bool {
	switch target {
	case ErrRemote:
		return e.Kind == KindRemote
	case ErrValidation:
		return e.Kind == KindValidation
	}
	return false
}

func remoteError(summary string, err error) *CommandError {
	return &CommandError{
		Summary: summary,
		Message: err.Error(),
		Kind:    KindRemote,
		err:     err,
	}
}

func validationError(summary string, err error) *CommandError {
	return &CommandError{
		Summary: summary,
		Message: err.Error(),
		Kind:    KindValidation,
		err:     err,
	}
}

// ErrorResponse is the error body returned by the API on non-2xx responses.
type ErrorResponse struct {
	Message string `json:"message"`
}

type statusError struct {
	status  string
	message string
}

func (e *statusError) Error() string {
	if e.message == "" {
		return fmt.Sprintf("unexpected status %s", e.status)
	}
	return fmt.Sprintf("unexpected status %s: %s", e.status, e.message)
}
