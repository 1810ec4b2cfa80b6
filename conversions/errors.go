package conversions

import "fmt"

// FieldTooShortError is returned when a string field is below its minimum length.
type FieldTooShortError struct {
	Field string
}

func (e *FieldTooShortError) Error() string {
	return fmt.Sprintf("%s field length too short", e.Field)
}

// FieldTooLongError is returned when a string field exceeds its maximum length.
type FieldTooLongError struct {
	Field string
}

func (e *FieldTooLongError) Error() string {
	return fmt.Sprintf("%s field length too long", e.Field)
}

// FieldTooSmallError is returned when a numeric field is below its minimum value.
type FieldTooSmallError struct {
	Field string
}

func (e *FieldTooSmallError) Error() string {
	return fmt.Sprintf("%s field value too small", e.Field)
}

// FieldTooLargeError is returned when a numeric field exceeds its maximum value.
type FieldTooLargeError struct {
	Field string
}

func (e *FieldTooLargeError) Error() string {
	return fmt.Sprintf("%s field value too large", e.Field)
}

// InvalidFieldValueError is returned when a value cannot be coerced to its
// registered kind.
type InvalidFieldValueError struct {
	Field string
	Kind  string
}

func (e *InvalidFieldValueError) Error() string {
	return fmt.Sprintf("%s field value is not a valid %s", e.Field, e.Kind)
}

// NoPaymentMethodError is returned when the supplied fields do not satisfy any
// payment method.
type NoPaymentMethodError struct {
	Reason string
}

func (e *NoPaymentMethodError) Error() string {
	if e.Reason == "" {
		return "no valid payment details provided"
	}
	return fmt.Sprintf("no valid payment details provided: %s", e.Reason)
}

// MissingRequiredFieldError is returned when a vendor response lacks one of
// the always-required top level fields.
type MissingRequiredFieldError struct {
	Field string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("vendor response missing required field: %s", e.Field)
}
