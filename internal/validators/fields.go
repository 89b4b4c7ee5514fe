package validators

import (
	"fmt"
	"unicode/utf8"
)

// Minimum lengths carried over from the persisted schema constraints.
const (
	ClientNameMin  = 5
	ClientPhoneMin = 5
	ClientEmailMin = 8
	UserNameMin    = 4
	UserEmailMin   = 7
)

func Required(field, value string) error {
	if value == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

// MinLen rejects a too-short value, counting characters rather than bytes;
// empty optional values pass and are caught by Required where the field is
// mandatory.
func MinLen(field, value string, min int) error {
	if value != "" && utf8.RuneCountInString(value) < min {
		return fmt.Errorf("%s must be at least %d characters", field, min)
	}
	return nil
}

func RequiredMinLen(field, value string, min int) error {
	if err := Required(field, value); err != nil {
		return err
	}
	return MinLen(field, value, min)
}
