package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLuhn(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "Valid card number", input: "4242424242424242", want: true},
		{name: "Wrong check digit", input: "4242424242424241", want: false},
		{name: "Non-numeric", input: "4242-4242", want: false},
		{name: "Empty string", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLuhn(tt.input))
		})
	}
}

func TestIsFiscalNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "Valid number", input: "123456789", want: true},
		{name: "Check digit folds to zero", input: "000000000", want: true},
		{name: "Wrong check digit", input: "123456780", want: false},
		{name: "Too short", input: "12345678", want: false},
		{name: "Too long", input: "1234567890", want: false},
		{name: "Non-numeric", input: "12345678X", want: false},
		{name: "Empty string", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsFiscalNumber(tt.input))
		})
	}
}
