package rut

import (
	"fmt"
	"strconv"
	"strings"
)

// Practical bounds for a RUT number. Parsing and formatting accept any
// non-negative number; only Validate enforces the range.
const (
	MinNumber = 1_000_000
	MaxNumber = 99_999_999
)

var cleaner = strings.NewReplacer(".", "", ",", "", "-", "")

// Clean strips grouping punctuation and the dash from a RUT string
// and uppercases the result. It performs no validation.
func Clean(text string) string {
	return strings.ToUpper(cleaner.Replace(strings.TrimSpace(text)))
}

// Decompose splits a RUT string into its number and check character.
// The last character of the cleaned input is taken as the check character,
// everything before it as the number. No checksum or range validation is
// performed; a RUT with a wrong check character decomposes without error.
// Leading zeros in the numeric part are lost through integer parsing.
func Decompose(text string) (int, string, error) {
	cleaned := Clean(text)
	if len(cleaned) < 2 {
		return 0, "", &InvalidInputError{Input: text, Reason: "a rut needs at least one digit and a check character"}
	}
	dv := cleaned[len(cleaned)-1:]
	number, err := strconv.Atoi(cleaned[:len(cleaned)-1])
	if err != nil || number < 0 {
		return 0, "", &InvalidInputError{Input: text, Reason: "numeric part is not a non-negative integer"}
	}
	return number, dv, nil
}

// CheckDigit computes the check character for a RUT number using the
// standard modulo-11 algorithm: digits are consumed from least to most
// significant with weights cycling 9,8,7,6,5,4 and the sum seeded at 1.
// A final sum of 0 maps to "K", anything else to the digit sum-1.
func CheckDigit(number int) (string, error) {
	if number < 0 {
		return "", &InvalidInputError{Input: strconv.Itoa(number), Reason: "number must be non-negative"}
	}
	sum := 1
	n := number
	for m := 0; ; m++ {
		sum = (sum + (n%10)*(9-m%6)) % 11
		n /= 10
		if n == 0 {
			break
		}
	}
	if sum == 0 {
		return "K", nil
	}
	return strconv.Itoa(sum - 1), nil
}

// Validate checks that text is a well-formed RUT whose number lies within
// the default bounds and whose check character matches the computed one.
// A nil return means the RUT is valid.
func Validate(text string) error {
	return ValidateRange(text, MinNumber, MaxNumber)
}

// ValidateRange is Validate with caller-supplied bounds. Checks run in
// order and the first failure wins: decomposition, range, check character
// shape, checksum.
func ValidateRange(text string, min, max int) error {
	number, dv, err := Decompose(text)
	if err != nil {
		return err
	}
	if number < min {
		return &BelowMinimumError{Number: number, Min: min, Max: max}
	}
	if number > max {
		return &AboveMaximumError{Number: number, Min: min, Max: max}
	}
	if !isCheckChar(dv) {
		return &CheckDigitFormatError{DV: dv}
	}
	expected, err := CheckDigit(number)
	if err != nil {
		return err
	}
	if dv != expected {
		return &ChecksumError{Number: number, DV: dv, Expected: expected}
	}
	return nil
}

// Format renders a RUT in compact form ("12345678-5"). A string input is
// cleaned and re-joined, keeping whatever check character it carried; a
// wrong check character is preserved, never corrected. An integer input
// gets its check character computed. Accepted types: string and the
// signed/unsigned integer kinds.
func Format(v any) (string, error) {
	switch x := v.(type) {
	case string:
		number, dv, err := Decompose(x)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(number) + "-" + dv, nil
	case int:
		return formatNumber(x)
	case int8:
		return formatNumber(int(x))
	case int16:
		return formatNumber(int(x))
	case int32:
		return formatNumber(int(x))
	case int64:
		return formatNumber(int(x))
	case uint:
		return formatNumber(int(x))
	case uint8:
		return formatNumber(int(x))
	case uint16:
		return formatNumber(int(x))
	case uint32:
		return formatNumber(int(x))
	case uint64:
		return formatNumber(int(x))
	default:
		return "", &InvalidInputError{Input: fmt.Sprint(v), Reason: fmt.Sprintf("unsupported type %T", v)}
	}
}

// formatNumber appends the computed check character and reuses the
// string path, so both input kinds produce identical output.
func formatNumber(number int) (string, error) {
	full, err := AppendCheckDigit(number)
	if err != nil {
		return "", err
	}
	return Format(full)
}

// FormatGrouped renders a RUT in grouped form ("12.345.678-5"), with the
// digits of the numeric part grouped in triples from the right. Input
// handling is identical to Format.
func FormatGrouped(v any) (string, error) {
	compact, err := Format(v)
	if err != nil {
		return "", err
	}
	number, dv, err := Decompose(compact)
	if err != nil {
		return "", err
	}
	return groupDigits(number) + "-" + dv, nil
}

// RemoveCheckDigit returns only the numeric part of a RUT string,
// discarding the check character. No validation is performed.
func RemoveCheckDigit(text string) (int, error) {
	number, _, err := Decompose(text)
	return number, err
}

// AppendCheckDigit concatenates a number with its computed check
// character, without separators: 12345678 becomes "123456785".
func AppendCheckDigit(number int) (string, error) {
	dv, err := CheckDigit(number)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(number) + dv, nil
}

// isCheckChar reports whether dv is a single character in [0-9K].
func isCheckChar(dv string) bool {
	if len(dv) != 1 {
		return false
	}
	return dv == "K" || (dv[0] >= '0' && dv[0] <= '9')
}

// groupDigits renders a non-negative number with a dot every three
// digits from the right, the Chilean thousands convention.
func groupDigits(number int) string {
	digits := strconv.Itoa(number)
	var sb strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte('.')
		}
		sb.WriteRune(d)
	}
	return sb.String()
}
