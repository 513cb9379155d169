package apns

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKnownReasons = []Reason{
	ReasonBadCollapseID,
	ReasonBadDeviceToken,
	ReasonBadExpirationDate,
	ReasonBadMessageID,
	ReasonBadPriority,
	ReasonBadTopic,
	ReasonDeviceTokenNotForTopic,
	ReasonDuplicateHeaders,
	ReasonIdleTimeout,
	ReasonMissingDeviceToken,
	ReasonMissingTopic,
	ReasonPayloadEmpty,
	ReasonTopicDisallowed,
	ReasonBadCertificate,
	ReasonBadCertificateEnvironment,
	ReasonExpiredProviderToken,
	ReasonForbidden,
	ReasonInvalidProviderToken,
	ReasonMissingProviderToken,
	ReasonBadPath,
	ReasonMethodNotAllowed,
	ReasonUnregistered,
	ReasonPayloadTooLarge,
	ReasonTooManyProviderTokenUpdates,
	ReasonTooManyRequests,
	ReasonInternalServerError,
	ReasonServiceUnavailable,
	ReasonShutdown,
}

func TestReasonRoundTrip(t *testing.T) {
	t.Run("Every known reason survives an encode/decode cycle", func(t *testing.T) {
		for _, reason := range allKnownReasons {
			body, err := json.Marshal(map[string]string{"reason": string(reason)})
			require.NoError(t, err)

			decoded := parseReason(body)

			assert.Equal(t, reason, decoded)
			assert.True(t, decoded.Known(), "%s should be a known reason", reason)
		}
	})

	t.Run("Unknown reason passes through losslessly", func(t *testing.T) {
		decoded := parseReason([]byte(`{"reason":"SomethingNewFromApple"}`))

		assert.Equal(t, Reason("SomethingNewFromApple"), decoded)
		assert.False(t, decoded.Known())
		// Re-encoding must yield the same literal string.
		assert.Equal(t, "SomethingNewFromApple", string(decoded))
	})

	t.Run("Empty reason string passes through", func(t *testing.T) {
		decoded := parseReason([]byte(`{"reason":""}`))

		assert.Equal(t, Reason(""), decoded)
		assert.False(t, decoded.Known())
	})
}

func TestParseReasonTotality(t *testing.T) {
	bodies := [][]byte{
		[]byte(`not json at all`),
		[]byte(`{}`),
		[]byte(`{"reason":42}`),
		[]byte(`[]`),
		[]byte(``),
		[]byte("\x00\x01\x02"),
	}

	for _, body := range bodies {
		t.Run(fmt.Sprintf("Never fails on %q", body), func(t *testing.T) {
			decoded := parseReason(body)

			assert.False(t, decoded.Known())
			assert.Contains(t, string(decoded), "unrecognized APNs response")
		})
	}
}

func TestIsBadDeviceToken(t *testing.T) {
	t.Run("Only the literal BadDeviceToken matches", func(t *testing.T) {
		assert.True(t, ReasonBadDeviceToken.IsBadDeviceToken())

		for _, reason := range allKnownReasons {
			if reason == ReasonBadDeviceToken {
				continue
			}
			assert.False(t, reason.IsBadDeviceToken(), "%s must not match", reason)
		}

		// Token-adjacent reasons and unknown strings do not match either.
		assert.False(t, ReasonUnregistered.IsBadDeviceToken())
		assert.False(t, Reason("BadDeviceTokenV2").IsBadDeviceToken())
	})
}
