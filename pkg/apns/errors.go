package apns

import (
	"errors"
	"fmt"
)

// APIError is returned by Send when APNs explicitly rejected the request
// with a non-200 status. Every other failure mode (connectivity, TLS,
// encoding) is returned as an ordinary wrapped error, so the two are
// distinguishable with errors.As or AsAPIError: transport failures are
// plausibly transient, most API rejections are not.
type APIError struct {
	Status int
	Reason Reason
}

func (e *APIError) Error() string {
	return fmt.Sprintf("apns: %s (status %d)", e.Reason, e.Status)
}

// IsBadDeviceToken reports whether the rejection reason is the literal
// BadDeviceToken.
func (e *APIError) IsBadDeviceToken() bool {
	return e.Reason.IsBadDeviceToken()
}

// AsAPIError unwraps err to the APIError it carries, if any.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsBadDeviceToken reports whether err is an API rejection for the literal
// BadDeviceToken reason. Transport failures and all other rejection reasons
// report false.
func IsBadDeviceToken(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.IsBadDeviceToken()
}
