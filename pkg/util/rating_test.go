package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundRating(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"Zero", 0, 0},
		{"Whole number", 4.0, 4.0},
		{"Rounds down", 4.333333, 4.3},
		{"Rounds up", 4.666666, 4.7},
		{"Halfway rounds up", 4.25, 4.3},
		{"Max rating", 5.0, 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundRating(tt.input))
		})
	}
}
