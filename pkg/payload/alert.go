// Package payload provides the types making up the `aps` dictionary of an
// APNs notification and their JSON encoding rules.
//
// Every optional field is omitted entirely from the encoded output when it
// is unset. APNs treats the presence of some keys as significant, so a null
// entry is not equivalent to an absent one.
//
// For the meaning of individual keys, see the Apple Developer Documentation:
// https://developer.apple.com/documentation/usernotifications/generating-a-remote-notification
package payload

import (
	"encoding/json"
	"fmt"
)

// AlertPayload is the dictionary form of an alert.
type AlertPayload struct {
	// Title is the title of the notification.
	Title string `json:"title,omitempty"`

	// Body is the main content of the notification.
	Body string `json:"body,omitempty"`

	// TitleLocKey is the key for a localized string to be used for the
	// notification's title.
	TitleLocKey string `json:"title-loc-key,omitempty"`

	// TitleLocArgs are the arguments for `title-loc-key`.
	TitleLocArgs []string `json:"title-loc-args,omitempty"`

	// ActionLocKey is the key for a localized string to be used as the
	// title of the action button.
	ActionLocKey string `json:"action-loc-key,omitempty"`

	// LocKey is the key for a localized string in the app's
	// `Localizable.strings` file to be used for the notification's body.
	LocKey string `json:"loc-key,omitempty"`

	// LocArgs are the variable string values to appear in place of the
	// format specifiers in `loc-key`.
	LocArgs []string `json:"loc-args,omitempty"`

	// LocImage is the name of an image file in the app bundle to display.
	LocImage string `json:"loc-image,omitempty"`
}

// Alert is the alert content of a notification: either a plain message
// string or a structured AlertPayload. On the wire there is no
// discriminator; a simple alert is a bare JSON string and a structured
// alert is the AlertPayload object itself.
type Alert struct {
	message    string
	dictionary *AlertPayload
}

// Simple returns an alert holding a plain message string.
func Simple(message string) Alert {
	return Alert{message: message}
}

// Structured returns an alert holding a full AlertPayload dictionary.
func Structured(p AlertPayload) Alert {
	return Alert{dictionary: &p}
}

// Message returns the plain message and true if the alert is in simple form.
func (a Alert) Message() (string, bool) {
	if a.dictionary != nil {
		return "", false
	}
	return a.message, true
}

// Dictionary returns a copy of the AlertPayload and true if the alert is in
// structured form.
func (a Alert) Dictionary() (AlertPayload, bool) {
	if a.dictionary == nil {
		return AlertPayload{}, false
	}
	return *a.dictionary, true
}

// MarshalJSON encodes a simple alert as a bare string and a structured alert
// as the AlertPayload object, with no wrapper key in either case.
func (a Alert) MarshalJSON() ([]byte, error) {
	if a.dictionary != nil {
		return json.Marshal(a.dictionary)
	}
	return json.Marshal(a.message)
}

// UnmarshalJSON tries the string form first, then the object form.
func (a *Alert) UnmarshalJSON(data []byte) error {
	var message string
	if err := json.Unmarshal(data, &message); err == nil {
		*a = Simple(message)
		return nil
	}
	var dict AlertPayload
	if err := json.Unmarshal(data, &dict); err != nil {
		return fmt.Errorf("alert is neither a string nor an object: %w", err)
	}
	*a = Structured(dict)
	return nil
}
