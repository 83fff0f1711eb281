package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and can be matched with
// errors.Is.
var (
	// ErrNoChannel is returned when the channel username is empty.
	ErrNoChannel = errors.New("no channel specified")

	// ErrInvalidChannel is returned when the channel username contains
	// characters other than letters, digits and underscores.
	ErrInvalidChannel = errors.New("invalid channel: use the public username without '@'")

	// ErrInvalidBaseURL is returned when the base URL is not an absolute http(s) URL.
	ErrInvalidBaseURL = errors.New("invalid base URL: must be an absolute http or https URL")

	// ErrNoOutput is returned when the snapshot path is empty.
	ErrNoOutput = errors.New("no output path specified")

	// ErrInvalidTimeout is returned when the request timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidMaxPages is returned when the iteration cap is not positive.
	ErrInvalidMaxPages = errors.New("invalid max pages: must be positive")

	// ErrInvalidDelay is returned when the delay between pages is negative.
	// Use 0 for no delay.
	ErrInvalidDelay = errors.New("invalid delay: must be non-negative")

	// ErrInvalidMaxBodySize is returned when the max body size is negative.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")

	// ErrInvalidAcceptLanguage is returned when the Accept-Language value
	// cannot be parsed as a language priority list.
	ErrInvalidAcceptLanguage = errors.New("invalid Accept-Language header value")
)
