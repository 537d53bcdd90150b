// Package apperrors provides chainable application errors that carry a status
// code and any number of wrapped causes while staying compatible with
// errors.Is and errors.As.
package apperrors

// Error is an application error. Derived errors keep a link to the error they
// were derived from, so a sentinel created with New can be matched with
// errors.Is against every error built from it.
type Error interface {
	error
	Unwrap() error // support for errors.Is / errors.As

	New(msg string) Error                  // new error using the current one as its kind
	Msg(msg string) Error                  // new message, current error wrapped as a cause
	MsgErr(msg string, err ...error) Error // new message plus extra causes
	Err(err ...error) Error                // same message plus extra causes
	SetStatusCode(int) Error               // copy with the given status code
	StatusCode() int
	UnwrapAll() []error
}
