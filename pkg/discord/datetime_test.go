package discord

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"h37bot/internal/domain"
)

func TestParsePhaseDateTime(t *testing.T) {
	loc, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)
	now := time.Date(2024, 6, 10, 13, 0, 0, 0, loc)

	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr error
	}{
		{name: "canonical", raw: "06/25/2024 8:00AM", want: time.Date(2024, 6, 25, 8, 0, 0, 0, loc)},
		{name: "lower case with space", raw: " 06/25/2024  8:30 pm ", want: time.Date(2024, 6, 25, 20, 30, 0, 0, loc)},
		{name: "single digit month and day", raw: "7/4/2024 12:00PM", want: time.Date(2024, 7, 4, 12, 0, 0, 0, loc)},
		{name: "midnight", raw: "06/11/2024 12:00AM", want: time.Date(2024, 6, 11, 0, 0, 0, 0, loc)},
		{name: "empty", raw: "  ", wantErr: domain.ErrInvalidDateTime},
		{name: "24h clock", raw: "06/25/2024 18:00", wantErr: domain.ErrInvalidDateTime},
		{name: "day first", raw: "25/06/2024 8:00AM", wantErr: domain.ErrInvalidDateTime},
		{name: "in the past", raw: "06/10/2024 12:59PM", wantErr: domain.ErrDateTimeInPast},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePhaseDateTime(tt.raw, loc, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
			assert.Equal(t, loc, got.Location())
		})
	}
}

func TestFormatPhaseDateTime(t *testing.T) {
	loc, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)

	assert.Equal(t, "June 25 2024, 8:00 AM CDT", FormatPhaseDateTime(time.Date(2024, 6, 25, 8, 0, 0, 0, loc)))
	assert.Empty(t, FormatPhaseDateTime(time.Time{}))
}
