package tz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"h37bot/internal/domain"
)

func TestLoad(t *testing.T) {
	loc, err := Load("Europe/Paris")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Paris", loc.String())

	loc, err = Load("  ")
	require.NoError(t, err)
	assert.Equal(t, Default, loc.String())

	_, err = Load("Mars/Olympus_Mons")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTimezone)
}
