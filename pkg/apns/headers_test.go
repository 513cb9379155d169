package apns

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeHeaders(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	t.Run("Unset optionals encode as empty values, never omitted", func(t *testing.T) {
		n := NewNotification("com.example.app", "token").Build()

		headers := encodeHeaders(n, id)

		require.Len(t, headers, 5)
		assert.Equal(t, header{name: "apns-id", value: id.String()}, headers[0])
		assert.Equal(t, header{name: "apns-expiration", value: ""}, headers[1])
		assert.Equal(t, header{name: "apns-priority", value: ""}, headers[2])
		assert.Equal(t, header{name: "apns-topic", value: "com.example.app"}, headers[3])
		assert.Equal(t, header{name: "apns-collapse-id", value: ""}, headers[4])
	})

	t.Run("Set optionals are formatted", func(t *testing.T) {
		collapseID, err := NewCollapseID("group-1")
		require.NoError(t, err)
		n := NewNotification("com.example.app", "token").
			Expiration(1700000000).
			Priority(PriorityHigh).
			CollapseID(collapseID).
			Build()

		headers := encodeHeaders(n, id)

		assert.Equal(t, "1700000000", headers[1].value)
		assert.Equal(t, "10", headers[2].value)
		assert.Equal(t, "group-1", headers[4].value)
	})

	t.Run("Priority low encodes as 5", func(t *testing.T) {
		n := NewNotification("com.example.app", "token").Priority(PriorityLow).Build()

		headers := encodeHeaders(n, id)

		assert.Equal(t, "5", headers[2].value)
	})

	t.Run("Expiration zero is a value, not unset", func(t *testing.T) {
		n := NewNotification("com.example.app", "token").Expiration(0).Build()

		headers := encodeHeaders(n, id)

		assert.Equal(t, "0", headers[1].value)
	})
}
