package domain

import (
	"errors"
	"fmt"
)

var (
	ErrConfig    = errors.New("configuration error")
	ErrTemporary = errors.New("temporary failure")
	ErrUpstream  = errors.New("upstream failure")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}
