package minutes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodePrefix(t *testing.T) {
	tests := []struct {
		name          string
		meetingTypeID int
		want          string
	}{
		{"manco", 1, "M"},
		{"finance", 2, "F"},
		{"ptl", 3, "P"},
		{"unknown type falls back", 42, "X"},
		{"zero falls back", 0, "X"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, codePrefix(tt.meetingTypeID))
		})
	}
}

func TestFormatCode(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		want string
	}{
		{"first meeting", 1, "F01"},
		{"single digit padded", 9, "F09"},
		{"tenth meeting", 10, "F10"},
		{"width grows past two digits", 100, "F100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatCode("F", tt.n))
		})
	}
}
