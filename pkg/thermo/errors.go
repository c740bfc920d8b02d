package thermo

import "errors"

var (
	ErrInvalidPayload     = errors.New("invalid readings data")
	ErrMissingParameter   = errors.New("missing parameter")
	ErrInvalidParameter   = errors.New("invalid parameter")
	ErrTileNotFound       = errors.New("tile not found")
	ErrRateLimited        = errors.New("rate limit exceeded")
	ErrServiceUnavailable = errors.New("service not available")
)
