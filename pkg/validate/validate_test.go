package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStruct(t *testing.T) {
	type payload struct {
		Amount float64 `validate:"required,gt=0"`
	}

	tests := []struct {
		name      string
		input     payload
		expectErr bool
	}{
		{
			name:      "Valid value",
			input:     payload{Amount: 10.5},
			expectErr: false,
		},
		{
			name:      "Zero value",
			input:     payload{Amount: 0},
			expectErr: true,
		},
		{
			name:      "Negative value",
			input:     payload{Amount: -3},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
