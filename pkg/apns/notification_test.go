package apns

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollapseID(t *testing.T) {
	t.Run("Empty id is accepted", func(t *testing.T) {
		id, err := NewCollapseID("")
		require.NoError(t, err)
		assert.Equal(t, "", id.String())
	})

	t.Run("64 bytes is accepted", func(t *testing.T) {
		value := strings.Repeat("a", 64)
		id, err := NewCollapseID(value)
		require.NoError(t, err)
		assert.Equal(t, value, id.String())
	})

	t.Run("65 bytes fails at construction", func(t *testing.T) {
		_, err := NewCollapseID(strings.Repeat("a", 65))
		assert.ErrorIs(t, err, ErrCollapseIDTooLong)
	})
}

func TestPriorityValues(t *testing.T) {
	// The numeric values are the wire contract.
	assert.Equal(t, 5, int(PriorityLow))
	assert.Equal(t, 10, int(PriorityHigh))
}
