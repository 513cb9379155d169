package apns

import (
	"github.com/google/uuid"

	"github.com/tinywideclouds/go-apns/pkg/payload"
)

// NotificationBuilder accumulates notification fields incrementally. Every
// mutator returns the builder, and Build yields the finished Notification
// by value.
//
// Title and Body cooperate with an existing alert instead of overwriting
// it; see their doc comments. All other setters simply assign their field.
type NotificationBuilder struct {
	n Notification
}

// NewNotification starts a builder for the given topic and device token
// with an empty payload.
func NewNotification(topic, deviceToken string) *NotificationBuilder {
	return &NotificationBuilder{
		n: Notification{
			Topic:       topic,
			DeviceToken: deviceToken,
		},
	}
}

// Payload replaces the whole aps payload.
func (b *NotificationBuilder) Payload(p payload.Payload) *NotificationBuilder {
	b.n.Payload = p
	return b
}

// Alert sets a plain message alert, replacing any existing alert.
func (b *NotificationBuilder) Alert(message string) *NotificationBuilder {
	a := payload.Simple(message)
	b.n.Payload.Alert = &a
	return b
}

// Title sets the alert title. An existing structured alert keeps its other
// fields; a simple alert is discarded entirely, its message does not
// survive as the body.
func (b *NotificationBuilder) Title(title string) *NotificationBuilder {
	var dict payload.AlertPayload
	if a := b.n.Payload.Alert; a != nil {
		if d, ok := a.Dictionary(); ok {
			dict = d
		}
	}
	dict.Title = title
	b.setStructuredAlert(dict)
	return b
}

// Body sets the alert body. An existing structured alert keeps its other
// fields; a simple alert's message is promoted to the title.
func (b *NotificationBuilder) Body(body string) *NotificationBuilder {
	var dict payload.AlertPayload
	if a := b.n.Payload.Alert; a != nil {
		if d, ok := a.Dictionary(); ok {
			dict = d
		} else if msg, ok := a.Message(); ok {
			dict.Title = msg
		}
	}
	dict.Body = body
	b.setStructuredAlert(dict)
	return b
}

func (b *NotificationBuilder) setStructuredAlert(dict payload.AlertPayload) {
	a := payload.Structured(dict)
	b.n.Payload.Alert = &a
}

// Badge sets the numeric badge for the app. Use 0 to remove the badge.
func (b *NotificationBuilder) Badge(number int) *NotificationBuilder {
	b.n.Payload.Badge = &number
	return b
}

// Sound sets the sound to play. Use "default" for the default sound.
func (b *NotificationBuilder) Sound(sound string) *NotificationBuilder {
	b.n.Payload.Sound = sound
	return b
}

// ContentAvailable marks the app as having content available to fetch.
func (b *NotificationBuilder) ContentAvailable() *NotificationBuilder {
	available := true
	b.n.Payload.ContentAvailable = &available
	return b
}

func (b *NotificationBuilder) Category(category string) *NotificationBuilder {
	b.n.Payload.Category = category
	return b
}

func (b *NotificationBuilder) ThreadID(threadID string) *NotificationBuilder {
	b.n.Payload.ThreadID = threadID
	return b
}

// ID sets the message id. When unset, the client generates one at send
// time.
func (b *NotificationBuilder) ID(id uuid.UUID) *NotificationBuilder {
	b.n.ID = id
	return b
}

// Expiration sets the expiration time as a UNIX timestamp in seconds.
func (b *NotificationBuilder) Expiration(expiration int64) *NotificationBuilder {
	b.n.Expiration = &expiration
	return b
}

func (b *NotificationBuilder) Priority(priority Priority) *NotificationBuilder {
	b.n.Priority = priority
	return b
}

func (b *NotificationBuilder) CollapseID(id CollapseID) *NotificationBuilder {
	b.n.CollapseID = &id
	return b
}

// Build returns the accumulated Notification.
func (b *NotificationBuilder) Build() Notification {
	return b.n
}
