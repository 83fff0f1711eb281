package crawler

import "fmt"

// FetchError reports that one history page could not be retrieved.
// Either StatusCode is set (the server answered with a non-2xx status) or
// Err is set (the request never produced a usable response).
type FetchError struct {
	// URL is the page that was requested.
	URL string

	// StatusCode is the HTTP status of a non-2xx response, or 0.
	StatusCode int

	// Err is the underlying transport or read error, or nil.
	Err error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status code %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error so errors.Is works on timeouts and
// context cancellation.
func (e *FetchError) Unwrap() error {
	return e.Err
}
