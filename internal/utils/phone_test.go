package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	t.Setenv("DEFAULT_PHONE_REGION", "US")

	got, err := NormalizePhone("(415) 555-2671")
	require.NoError(t, err)
	assert.Equal(t, "+14155552671", got)

	// Already-international numbers pass through regardless of region.
	got, err = NormalizePhone("+39 333 123 4567")
	require.NoError(t, err)
	assert.Equal(t, "+393331234567", got)

	_, err = NormalizePhone("not a phone")
	assert.Error(t, err)
}
