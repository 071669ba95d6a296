package blink

import "fmt"

// Kind classifies every failure the Blink client can report.
type Kind int

const (
	UnexpectedError Kind = iota
	ConfigurationError
	RemoteAPIError
	TransportError
)

// String returns the snake_case name of the kind, used in logs.
func (k Kind) String() string {
	switch k {
	case ConfigurationError:
		return "configuration_error"
	case RemoteAPIError:
		return "remote_api_error"
	case TransportError:
		return "transport_error"
	default:
		return "unexpected_error"
	}
}

// MissingClientKeyMessage is reported when no client key was configured.
const MissingClientKeyMessage = "Missing BLINK_CLIENT_KEY environment variable"

// Error carries the failure kind alongside the message shown to tool callers.
// StatusCode is only set for RemoteAPIError.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	Err        error
}

// Error renders the message shown to tool callers for each kind.
func (e *Error) Error() string {
	switch e.Kind {
	case ConfigurationError:
		return e.Message
	case RemoteAPIError:
		return "API error: " + e.Message
	case TransportError:
		return "API request failed: " + e.Message
	default:
		return "Unexpected error: " + e.Message
	}
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.Err }

// newConfigurationError reports settings that make any call pointless.
func newConfigurationError(msg string) *Error {
	return &Error{Kind: ConfigurationError, Message: msg}
}

// newRemoteAPIError reports a non-2xx response with the extracted message.
func newRemoteAPIError(status int, msg string) *Error {
	return &Error{Kind: RemoteAPIError, StatusCode: status, Message: msg}
}

// newTransportError reports a call that produced no usable response.
func newTransportError(err error) *Error {
	return &Error{Kind: TransportError, Message: err.Error(), Err: err}
}

// newUnexpectedError reports any failure outside the other kinds.
func newUnexpectedError(format string, args ...any) *Error {
	err := fmt.Errorf(format, args...)
	return &Error{Kind: UnexpectedError, Message: err.Error(), Err: err}
}
