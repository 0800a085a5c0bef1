package lifecycle

import "errors"

var (
	// ErrBind is returned when a listener cannot bind its address.
	ErrBind = errors.New("failed to bind listener")

	errServe = errors.New("server error")
)
