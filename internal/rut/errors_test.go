package rut

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "invalid input",
			err:  &InvalidInputError{Input: "x", Reason: "a rut needs at least one digit and a check character"},
			want: `invalid rut input "x": a rut needs at least one digit and a check character`,
		},
		{
			name: "below minimum",
			err:  &BelowMinimumError{Number: 999999, Min: 1000000, Max: 99999999},
			want: "rut number 999.999 is below the minimum: must be between 1.000.000 and 99.999.999",
		},
		{
			name: "above maximum",
			err:  &AboveMaximumError{Number: 100000000, Min: 1000000, Max: 99999999},
			want: "rut number 100.000.000 is above the maximum: must be between 1.000.000 and 99.999.999",
		},
		{
			name: "check digit format",
			err:  &CheckDigitFormatError{DV: "Z"},
			want: `invalid check digit "Z": must be a digit from 0 to 9 or the letter K`,
		},
		{
			name: "checksum mismatch",
			err:  &ChecksumError{Number: 12345678, DV: "K", Expected: "5"},
			want: `invalid check digit "K" for rut number 12.345.678: the correct rut is 12.345.678-5 (expected check digit "5")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}
