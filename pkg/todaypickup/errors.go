package todaypickup

import "fmt"

// StatusError reports a non-2xx response from the upstream API. Body
// holds the error payload parsed as JSON when possible; Raw always
// holds the unparsed body text.
type StatusError struct {
	StatusCode int
	Body       any
	Raw        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Raw)
}

// Payload returns the parsed error body, falling back to the raw text.
func (e *StatusError) Payload() any {
	if e.Body != nil {
		return e.Body
	}
	return e.Raw
}

// UnavailableError reports that the outbound call could not complete
// (timeout, connection failure, DNS failure).
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return "upstream unavailable: " + e.Err.Error()
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}
