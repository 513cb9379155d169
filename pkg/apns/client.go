package apns

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/tinywideclouds/go-apns/internal/transport"
	"github.com/tinywideclouds/go-apns/pkg/payload"
)

// httpDoer is the subset of http.Client the client uses. It allows the
// transport to be mocked in tests.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client sends notifications to the APNs provider API. It owns its
// transport and credential for its whole lifetime.
//
// Send is safe for concurrent use: a mutex gives each call exclusive access
// to the shared transport for its duration. Callers needing real
// parallelism should use one Client per concurrent call.
type Client struct {
	host             string
	verbose          bool
	deliveryDisabled bool
	logger           *slog.Logger

	mu   sync.Mutex
	http httpDoer
}

// Option configures a Client at construction.
type Option func(*Client)

// WithLogger replaces the default logger used for verbose tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger.With("component", "apns")
	}
}

// NewClient builds a client from a PKCS#12 provider-certificate bundle on
// disk with an optional passphrase (pass "" for none). The client targets
// the production endpoint; use SetProduction(false) for the sandbox.
func NewClient(p12Path, passphrase string, opts ...Option) (*Client, error) {
	certificate, err := transport.CertificateFromP12File(p12Path, passphrase)
	if err != nil {
		return nil, fmt.Errorf("apns: loading certificate: %w", err)
	}
	return NewClientFromCertificate(certificate, opts...), nil
}

// NewClientFromCertificate builds a client from an already-parsed TLS
// client certificate, for callers that hold PEM material rather than a
// PKCS#12 bundle.
func NewClientFromCertificate(certificate tls.Certificate, opts ...Option) *Client {
	c := &Client{
		host:   HostProduction,
		logger: slog.Default().With("component", "apns"),
		http:   transport.NewClient(certificate),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetVerbose enables debug tracing of requests and responses.
func (c *Client) SetVerbose(verbose bool) {
	c.verbose = verbose
}

// SetProduction selects the production or the development sandbox endpoint.
func (c *Client) SetProduction(production bool) {
	if production {
		c.host = HostProduction
	} else {
		c.host = HostDevelopment
	}
}

// DisableDeliveryForTesting completely disables communication with the
// APNs API. No connection is established; Send returns the delivery id
// without serializing anything.
//
// Useful for integration tests in a larger application when nothing should
// actually be sent.
func (c *Client) DisableDeliveryForTesting() {
	c.deliveryDisabled = true
}

// request is the top-level body sent to the API.
type request struct {
	APS payload.Payload `json:"aps"`
}

// buildURL returns the delivery URL for a device token.
func (c *Client) buildURL(deviceToken string) string {
	return c.host + "/3/device/" + deviceToken
}

// Send delivers one notification in a single synchronous round trip and
// returns its delivery id: the notification's own id when set, otherwise a
// UUID generated for this send. The notification itself is never modified.
//
// A non-200 response is returned as an *APIError; any transport or
// encoding failure is returned as a wrapped opaque error. Send never
// retries.
func (c *Client) Send(ctx context.Context, n Notification) (uuid.UUID, error) {
	id := n.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	if c.deliveryDisabled {
		return id, nil
	}

	url := c.buildURL(n.DeviceToken)

	body, err := json.Marshal(request{APS: n.Payload})
	if err != nil {
		return uuid.Nil, fmt.Errorf("apns: encoding payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return uuid.Nil, fmt.Errorf("apns: building request: %w", err)
	}
	req.Header.Set("content-type", "application/json; charset=utf-8")
	for _, h := range encodeHeaders(n, id) {
		// An empty value means "no header"; see encodeHeaders.
		if h.value == "" {
			continue
		}
		req.Header.Set(h.name, h.value)
	}

	if c.verbose {
		c.logger.Debug("sending notification", "url", url, "id", id, "topic", n.Topic)
	}

	c.mu.Lock()
	resp, err := c.http.Do(req)
	c.mu.Unlock()
	if err != nil {
		return uuid.Nil, fmt.Errorf("apns: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusOK {
		if c.verbose {
			c.logger.Debug("notification accepted", "id", id)
		}
		return id, nil
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return uuid.Nil, fmt.Errorf("apns: reading response: %w", err)
	}
	apiErr := &APIError{Status: resp.StatusCode, Reason: parseReason(responseBody)}
	if c.verbose {
		c.logger.Debug("notification rejected", "id", id, "status", apiErr.Status, "reason", apiErr.Reason)
	}
	return uuid.Nil, apiErr
}
