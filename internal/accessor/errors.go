package accessor

import (
	"net/http"
	"strings"

	"github.com/tansive/hecate/internal/common/apperrors"
)

// Error kinds. Every error returned by a call matches exactly one of these
// with errors.Is.
var (
	ErrTransport        apperrors.Error = apperrors.New("transport error")
	ErrUnexpectedStatus apperrors.Error = apperrors.New("unexpected status")
	ErrPrompt           apperrors.Error = apperrors.New("prompt failed")
)

// TransportError wraps a failure to obtain any response. Its message is the
// message of the underlying error.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// UnexpectedStatusError is returned for any status other than 200. Its
// message is the JSON serialization of the response body.
type UnexpectedStatusError struct {
	StatusCode int
	Body       []byte
}

func (e *UnexpectedStatusError) Error() string {
	return serializeBody(e.StatusCode, e.Body)
}

func (e *UnexpectedStatusError) Is(target error) bool { return target == ErrUnexpectedStatus }

// StatusError returns the error as an apperrors.Error carrying the status code.
func (e *UnexpectedStatusError) StatusError() apperrors.Error {
	return ErrUnexpectedStatus.SetStatusCode(e.StatusCode).MsgErr(e.Error(), e)
}

// PromptError wraps a failure to collect credentials interactively.
type PromptError struct {
	Err error
}

func (e *PromptError) Error() string { return "prompt failed: " + e.Err.Error() }

func (e *PromptError) Unwrap() error { return e.Err }

func (e *PromptError) Is(target error) bool { return target == ErrPrompt }

// serializeBody renders a response body the way it would appear in JSON:
// JSON bodies normalized and compacted, anything else as a JSON string. An
// empty body falls back to the status text.
func serializeBody(status int, body []byte) string {
	if strings.TrimSpace(string(body)) == "" {
		return http.StatusText(status)
	}
	return string(payloadFromBody(body))
}
