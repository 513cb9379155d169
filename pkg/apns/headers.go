package apns

import (
	"strconv"

	"github.com/google/uuid"
)

// header is one name/value pair of the outgoing request.
type header struct {
	name  string
	value string
}

// encodeHeaders derives the fixed, ordered header set for a notification.
//
// Optional fields that are unset encode as an empty value instead of being
// dropped from the set: an empty value means "send no header", and emitting
// it explicitly guarantees that a transport reusing connection state cannot
// leak a previous request's value. The request builder skips empty values
// when populating the wire request.
func encodeHeaders(n Notification, id uuid.UUID) []header {
	var expiration string
	if n.Expiration != nil {
		expiration = strconv.FormatInt(*n.Expiration, 10)
	}

	var priority string
	if n.Priority != 0 {
		priority = strconv.Itoa(int(n.Priority))
	}

	var collapseID string
	if n.CollapseID != nil {
		collapseID = n.CollapseID.String()
	}

	return []header{
		{name: "apns-id", value: id.String()},
		{name: "apns-expiration", value: expiration},
		{name: "apns-priority", value: priority},
		{name: "apns-topic", value: n.Topic},
		{name: "apns-collapse-id", value: collapseID},
	}
}
