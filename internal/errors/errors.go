package gerr

import "errors"

var (
	ErrMissingConfig = errors.New("missing required configuration")
	ErrInvalidRange  = errors.New("invalid date range")

	// ErrUpstream marks any failed call to Shopify, GA4 or LINE.
	ErrUpstream = errors.New("upstream request failed")
	ErrDecode   = errors.New("malformed upstream response")
)
