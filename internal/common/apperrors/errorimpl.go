package apperrors

import (
	"errors"
)

type appError struct {
	msg        string
	base       error
	causes     []error
	statuscode int
}

func (e *appError) Error() string {
	return e.msg
}

// Unwrap returns the error this one was derived from.
func (e *appError) Unwrap() error {
	return e.base
}

// UnwrapAll returns the causes attached with Err or MsgErr in the order they
// were added.
func (e *appError) UnwrapAll() []error {
	return e.causes
}

func (e *appError) derive(msg string, causes []error) *appError {
	return &appError{
		msg:        msg,
		base:       e,
		causes:     causes,
		statuscode: e.statuscode,
	}
}

func (e *appError) New(msg string) Error {
	return e.derive(msg, nil)
}

func (e *appError) Msg(msg string) Error {
	return e.derive(msg, append([]error{e}, e.causes...))
}

func (e *appError) MsgErr(msg string, errs ...error) Error {
	return e.derive(msg, append([]error{e}, errs...))
}

func (e *appError) Err(errs ...error) Error {
	return e.derive(e.msg, append([]error{e}, errs...))
}

// SetStatusCode returns a shallow copy; the receiver is left unchanged. A
// copy of a root error is derived from it so errors.Is still matches.
func (e *appError) SetStatusCode(code int) Error {
	cp := *e
	cp.statuscode = code
	if e.base == nil {
		cp.base = e
	}
	return &cp
}

func (e *appError) StatusCode() int {
	return e.statuscode
}

// Is reports whether target is the base error or any attached cause.
func (e *appError) Is(target error) bool {
	if target == nil {
		return false
	}
	if errors.Is(e.base, target) {
		return true
	}
	for _, err := range e.causes {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// As lets errors.As reach typed causes attached with Err or MsgErr.
func (e *appError) As(target any) bool {
	for _, err := range e.causes {
		if errors.As(err, target) {
			return true
		}
	}
	return false
}

// New creates a root error with the given message.
func New(msg string) Error {
	return &appError{
		msg: msg,
	}
}
