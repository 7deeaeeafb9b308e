package services

import (
	"errors"
	"fmt"
)

var (
	ErrItemNotFound         = errors.New("Meal item not found")
	ErrPackageNotFound      = errors.New("Meal package not found")
	ErrSizeNotFound         = errors.New("Meal item size not found")
	ErrAddonNotFound        = errors.New("Addon not found")
	ErrConfigurationMissing = errors.New("System settings not found")
	ErrPersistence          = errors.New("order could not be saved")
	ErrOrderNotFound        = errors.New("Order not found")
	ErrInvalidGuestToken    = errors.New("invalid guest token")
)

// ValidationError reports malformed or missing input. Nothing has been written when it is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validationf(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
