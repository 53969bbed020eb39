// Package errors provides the harness's typed, wrappable error, grounded on
// the teacher's errors.Error pattern but without the gRPC/protobuf status
// marshalling the teacher carries for its RPC services - this package has
// no RPC surface to attach that to.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Code identifies the class of failure a harness operation can return. The
// four statistical outcomes (pass/fail/indeterminate/skipped) are NOT error
// codes - they are Verdict values returned on success; a Code here always
// means the operation itself could not run to a verdict.
type Code int

const (
	ErrUnknown Code = iota
	ErrConfiguration
	ErrVerification
	ErrStatistical
	ErrResourceBudget
	ErrCancelled
	ErrInternal
)

func (c Code) String() string {
	switch c {
	case ErrConfiguration:
		return "CONFIGURATION"
	case ErrVerification:
		return "VERIFICATION"
	case ErrStatistical:
		return "STATISTICAL"
	case ErrResourceBudget:
		return "RESOURCE_BUDGET"
	case ErrCancelled:
		return "CANCELLED"
	case ErrInternal:
		return "INTERNAL"
	default:
		return "UNKNOWN"
	}
}

// Error is the harness's error type: a stable code, a message, and an
// optional wrapped cause.
type Error struct {
	Code       Code
	Message    string
	WrappedErr error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.WrappedErr == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.WrappedErr)
}

// Is reports whether error codes match.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}

	var ue *Error
	if stderrors.As(target, &ue) {
		if e.Code == ue.Code {
			return true
		}
	}

	if unwrapped := stderrors.Unwrap(e); unwrapped != nil {
		if ue, ok := unwrapped.(*Error); ok {
			return ue.Is(target)
		}
	}

	return false
}

func (e *Error) As(target interface{}) bool {
	if e == nil {
		return false
	}

	if targetErr, ok := target.(**Error); ok {
		*targetErr = e
		return true
	}

	if e.WrappedErr != nil {
		return stderrors.As(e.WrappedErr, target)
	}

	return false
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.WrappedErr
}

// New builds an Error, optionally wrapping a trailing error/*Error argument.
func New(code Code, format string, params ...interface{}) *Error {
	var wrapped error

	if len(params) > 0 {
		if last, ok := params[len(params)-1].(error); ok {
			wrapped = last
			params = params[:len(params)-1]
		}
	}

	message := format
	if len(params) > 0 {
		message = fmt.Sprintf(format, params...)
	}

	return &Error{Code: code, Message: message, WrappedErr: wrapped}
}

// Configuration builds an ErrConfiguration error, as returned by
// hashsurface.Descriptor.Validate. The orchestrator reports a descriptor
// that fails validation as an overall Fail verdict; nothing terminates the
// process on this code.
func Configuration(format string, params ...interface{}) *Error {
	return New(ErrConfiguration, format, params...)
}

// Verification builds an ErrVerification error.
func Verification(format string, params ...interface{}) *Error {
	return New(ErrVerification, format, params...)
}

// Is delegates to the standard library, present so callers need not import
// both "errors" packages.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As delegates to the standard library.
func As(err error, target any) bool { return stderrors.As(err, target) }

// Join concatenates non-nil error messages, mirroring the teacher's Join
// helper used to summarize multiple sub-test failures into one report line.
func Join(errs ...error) error {
	var msg string
	n := 0
	for _, err := range errs {
		if err == nil {
			continue
		}
		if n > 0 {
			msg += ", "
		}
		msg += err.Error()
		n++
	}
	if n == 0 {
		return nil
	}
	return stderrors.New(msg)
}
