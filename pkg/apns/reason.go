package apns

import (
	"encoding/json"
	"fmt"
)

// Reason is the failure reason reported by the APNs API in an error
// response body. The named constants cover the documented reasons; any
// string the service introduces later passes through unchanged, so an
// unrecognized reason is never lost. Known reports whether a Reason is one
// of the documented names.
type Reason string

const (
	ReasonBadCollapseID               Reason = "BadCollapseId"
	ReasonBadDeviceToken              Reason = "BadDeviceToken"
	ReasonBadExpirationDate           Reason = "BadExpirationDate"
	ReasonBadMessageID                Reason = "BadMessageId"
	ReasonBadPriority                 Reason = "BadPriority"
	ReasonBadTopic                    Reason = "BadTopic"
	ReasonDeviceTokenNotForTopic      Reason = "DeviceTokenNotForTopic"
	ReasonDuplicateHeaders            Reason = "DuplicateHeaders"
	ReasonIdleTimeout                 Reason = "IdleTimeout"
	ReasonMissingDeviceToken          Reason = "MissingDeviceToken"
	ReasonMissingTopic                Reason = "MissingTopic"
	ReasonPayloadEmpty                Reason = "PayloadEmpty"
	ReasonTopicDisallowed             Reason = "TopicDisallowed"
	ReasonBadCertificate              Reason = "BadCertificate"
	ReasonBadCertificateEnvironment   Reason = "BadCertificateEnvironment"
	ReasonExpiredProviderToken        Reason = "ExpiredProviderToken"
	ReasonForbidden                   Reason = "Forbidden"
	ReasonInvalidProviderToken        Reason = "InvalidProviderToken"
	ReasonMissingProviderToken        Reason = "MissingProviderToken"
	ReasonBadPath                     Reason = "BadPath"
	ReasonMethodNotAllowed            Reason = "MethodNotAllowed"
	ReasonUnregistered                Reason = "Unregistered"
	ReasonPayloadTooLarge             Reason = "PayloadTooLarge"
	ReasonTooManyProviderTokenUpdates Reason = "TooManyProviderTokenUpdates"
	ReasonTooManyRequests             Reason = "TooManyRequests"
	ReasonInternalServerError         Reason = "InternalServerError"
	ReasonServiceUnavailable          Reason = "ServiceUnavailable"
	ReasonShutdown                    Reason = "Shutdown"
)

var knownReasons = map[Reason]struct{}{
	ReasonBadCollapseID:               {},
	ReasonBadDeviceToken:              {},
	ReasonBadExpirationDate:           {},
	ReasonBadMessageID:                {},
	ReasonBadPriority:                 {},
	ReasonBadTopic:                    {},
	ReasonDeviceTokenNotForTopic:      {},
	ReasonDuplicateHeaders:            {},
	ReasonIdleTimeout:                 {},
	ReasonMissingDeviceToken:          {},
	ReasonMissingTopic:                {},
	ReasonPayloadEmpty:                {},
	ReasonTopicDisallowed:             {},
	ReasonBadCertificate:              {},
	ReasonBadCertificateEnvironment:   {},
	ReasonExpiredProviderToken:        {},
	ReasonForbidden:                   {},
	ReasonInvalidProviderToken:        {},
	ReasonMissingProviderToken:        {},
	ReasonBadPath:                     {},
	ReasonMethodNotAllowed:            {},
	ReasonUnregistered:                {},
	ReasonPayloadTooLarge:             {},
	ReasonTooManyProviderTokenUpdates: {},
	ReasonTooManyRequests:             {},
	ReasonInternalServerError:         {},
	ReasonServiceUnavailable:          {},
	ReasonShutdown:                    {},
}

// Known reports whether r is one of the documented reason names.
func (r Reason) Known() bool {
	_, ok := knownReasons[r]
	return ok
}

// IsBadDeviceToken reports whether r is the literal BadDeviceToken reason.
// Callers commonly branch on it to prune dead tokens from their own device
// registries. No other reason, known or unknown, satisfies it.
func (r Reason) IsBadDeviceToken() bool {
	return r == ReasonBadDeviceToken
}

// parseReason decodes an error response body of the shape
// {"reason": "<name>"}. It is total: a body that does not decode yields a
// diagnostic Reason derived from the raw bytes instead of an error.
func parseReason(body []byte) Reason {
	var response struct {
		Reason *string `json:"reason"`
	}
	if err := json.Unmarshal(body, &response); err != nil || response.Reason == nil {
		return Reason(fmt.Sprintf("unrecognized APNs response: %q", body))
	}
	return Reason(*response.Reason)
}
