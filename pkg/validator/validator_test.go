package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type notblankSubject struct {
	Name string `validate:"required,notblank"`
}

func TestNotBlank(t *testing.T) {
	cv := New()

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"value", "Alice", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"tab and newline", "\t\n", true},
		{"padded value", "  Alice  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cv.Validate(notblankSubject{Name: tt.value})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
