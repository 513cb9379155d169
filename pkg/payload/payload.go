package payload

// Payload is the `aps` dictionary of a notification. The zero value is a
// valid, empty payload.
//
// Badge and ContentAvailable are pointers because the service distinguishes
// an absent key from a zero value: a badge of 0 clears the app badge, and
// content-available marks the app as having data to fetch.
type Payload struct {
	Alert *Alert `json:"alert,omitempty"`

	// Badge updates the numeric badge for the app. Set to 0 to remove.
	Badge *int `json:"badge,omitempty"`

	// Sound to play. Use "default" for the default sound.
	Sound string `json:"sound,omitempty"`

	ContentAvailable *bool  `json:"content-available,omitempty"`
	Category         string `json:"category,omitempty"`
	ThreadID         string `json:"thread-id,omitempty"`
}
