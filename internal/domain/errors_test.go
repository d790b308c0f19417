package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "plain error", err: errors.New("boom"), want: ""},
		{name: "domain error", err: ErrDateTimeInPast, want: "datetime_in_past"},
		{name: "wrapped domain error", err: fmt.Errorf("set phase: %w", ErrInvalidDateTime), want: "invalid_datetime"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Code(tt.err))
		})
	}
}

func TestError_IsComparable(t *testing.T) {
	err := fmt.Errorf("validate: %w", ErrInvalidSettings)
	assert.ErrorIs(t, err, ErrInvalidSettings)
	assert.NotErrorIs(t, err, ErrInvalidTimezone)
}
