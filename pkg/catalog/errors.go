package catalog

import "errors"

var (
	ErrUnknownCategory = errors.New("unknown catalog category")
)
