package config

// Validator is implemented by configurations that check themselves after
// loading. LoadAndValidate calls it once the file is decoded.
type Validator interface {
	Validate() error
}
