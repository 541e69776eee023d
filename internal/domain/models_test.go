package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "No fraction", input: "612", expected: "612"},
		{name: "Two places kept", input: "16998.32", expected: "16998.32"},
		{name: "Half rounds up", input: "10.005", expected: "10.01"},
		{name: "Below half rounds down", input: "71.7911", expected: "71.79"},
		{name: "Above half rounds up", input: "16665.016665", expected: "16665.02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := decimal.NewFromString(tt.input)
			assert.NoError(t, err)
			want, err := decimal.NewFromString(tt.expected)
			assert.NoError(t, err)

			got := Round2(in)
			assert.True(t, got.Equal(want), "Round2(%s) = %s, want %s", tt.input, got, want)
		})
	}
}
