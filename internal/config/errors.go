// internal/config/errors.go
package config

import (
	"errors"
	"fmt"
)

// ErrLoad matches every configuration failure, whatever the cause: missing
// file, malformed document, missing key, or tables that fail validation.
var ErrLoad = errors.New("config: cannot load configuration")

// LoadError wraps the underlying cause of a configuration failure.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("config: %v", e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool { return target == ErrLoad }
