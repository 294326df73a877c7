package brave

import "fmt"

// APIError describes a provider call that did not yield a usable payload.
// StatusCode is the status to relay to the client: zero when the call never
// produced a response or the success body could not be decoded.
// ResponseStatus is always the status the provider actually sent.
type APIError struct {
	StatusCode     int
	ResponseStatus int
	StatusText     string
	Body           string
	Endpoint       string
	// Malformed is set when a success response could not be decoded
	Malformed bool
	Err       error
}

func (e *APIError) Error() string {
	switch {
	case e.Malformed:
		return fmt.Sprintf("brave response %d from %s could not be decoded: %v", e.ResponseStatus, e.Endpoint, e.Err)
	case e.StatusCode == 0:
		return fmt.Sprintf("brave request to %s failed: %v", e.Endpoint, e.Err)
	default:
		return fmt.Sprintf("brave API returned status %d for %s", e.StatusCode, e.Endpoint)
	}
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func transportError(endpoint string, err error) *APIError {
	return &APIError{Endpoint: endpoint, Err: err}
}

func statusError(endpoint string, code int, text string, body []byte) *APIError {
	return &APIError{
		StatusCode:     code,
		ResponseStatus: code,
		StatusText:     text,
		Body:           string(body),
		Endpoint:       endpoint,
	}
}

// malformedError reports an undecodable success body. It carries no relay
// status, so clients see a generic upstream failure.
func malformedError(endpoint string, code int, body []byte, err error) *APIError {
	return &APIError{
		ResponseStatus: code,
		Body:           string(body),
		Endpoint:       endpoint,
		Malformed:      true,
		Err:            err,
	}
}
