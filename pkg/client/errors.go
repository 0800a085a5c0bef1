package client

import "errors"

var (
	errInvalidBaseURL   = errors.New("invalid base URL")
	errUnexpectedStatus = errors.New("unexpected HTTP status")
	errUnexpectedBody   = errors.New("unexpected response body")
)
