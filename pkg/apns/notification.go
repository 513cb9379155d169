// Package apns implements a synchronous client for the Apple Push
// Notification service HTTP/2 provider API, authenticated with a provider
// certificate.
package apns

import (
	"errors"

	"github.com/google/uuid"

	"github.com/tinywideclouds/go-apns/pkg/payload"
)

// APNs provider API endpoints.
const (
	// HostProduction is the APNs production endpoint.
	HostProduction = "https://api.push.apple.com"

	// HostDevelopment is the APNs development sandbox endpoint.
	HostDevelopment = "https://api.development.push.apple.com"
)

// Priority of a notification. The numeric values are part of the wire
// contract: low is sent as "5", high as "10". See the APNs documentation
// for the effects.
type Priority int

const (
	PriorityLow  Priority = 5
	PriorityHigh Priority = 10
)

// maxCollapseIDLength is the limit APNs imposes on the apns-collapse-id
// header value.
const maxCollapseIDLength = 64

// ErrCollapseIDTooLong is returned by NewCollapseID when the id exceeds the
// 64 byte limit.
var ErrCollapseIDTooLong = errors.New("collapse id too long (must be at most 64 bytes)")

// CollapseID is a client-supplied grouping key letting APNs coalesce and
// replace superseded notifications. It may be an arbitrary string of at most
// 64 bytes and is immutable once constructed.
type CollapseID struct {
	value string
}

// NewCollapseID validates the length bound at construction so that a bad id
// can never surface as a send-time failure.
func NewCollapseID(value string) (CollapseID, error) {
	if len(value) > maxCollapseIDLength {
		return CollapseID{}, ErrCollapseIDTooLong
	}
	return CollapseID{value: value}, nil
}

// String returns the raw id.
func (c CollapseID) String() string {
	return c.value
}

// Notification carries all data for one delivery request: the payload sent
// as the request body plus the options transferred as HTTP headers.
//
// Values are treated as immutable once built. When ID is unset the client
// generates a delivery id at send time and returns it to the caller; the
// notification itself is never written back.
type Notification struct {
	// Topic scopes the target app, usually the app bundle id.
	Topic string

	// DeviceToken identifies the recipient device, as issued by APNs.
	DeviceToken string

	Payload payload.Payload

	// ID identifies the message. uuid.Nil means unset.
	ID uuid.UUID

	// Expiration is a UNIX timestamp in seconds. nil means unset; 0 asks
	// APNs to attempt delivery only once.
	Expiration *int64

	// Priority of the delivery. The zero value means unset.
	Priority Priority

	CollapseID *CollapseID
}
