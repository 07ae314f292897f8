package rut

import "fmt"

// Error types for RUT validation. Each carries the diagnostic values a
// caller needs to explain the failure; match them with errors.As.

// InvalidInputError is returned when input cannot be decomposed into a
// number and a check character at all.
type InvalidInputError struct {
	Input  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid rut input %q: %s", e.Input, e.Reason)
}

// BelowMinimumError is returned when the numeric part is under the
// accepted floor.
type BelowMinimumError struct {
	Number int
	Min    int
	Max    int
}

func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf("rut number %s is below the minimum: must be between %s and %s",
		groupDigits(e.Number), groupDigits(e.Min), groupDigits(e.Max))
}

// AboveMaximumError is returned when the numeric part is over the
// accepted ceiling.
type AboveMaximumError struct {
	Number int
	Min    int
	Max    int
}

func (e *AboveMaximumError) Error() string {
	return fmt.Sprintf("rut number %s is above the maximum: must be between %s and %s",
		groupDigits(e.Number), groupDigits(e.Min), groupDigits(e.Max))
}

// CheckDigitFormatError is returned when the supplied check character is
// not a digit or K.
type CheckDigitFormatError struct {
	DV string
}

func (e *CheckDigitFormatError) Error() string {
	return fmt.Sprintf("invalid check digit %q: must be a digit from 0 to 9 or the letter K", e.DV)
}

// ChecksumError is returned when the supplied check character does not
// match the one computed for the number.
type ChecksumError struct {
	Number   int
	DV       string
	Expected string
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("invalid check digit %q for rut number %s: the correct rut is %s-%s (expected check digit %q)",
		e.DV, groupDigits(e.Number), groupDigits(e.Number), e.Expected, e.Expected)
}
