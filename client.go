package hafas

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Client is the public facade: one configured profile plus a transport, safe
// for concurrent use by many callers, following the teacher's Client shape
// (a thin struct whose methods delegate to the transport).
type Client struct {
	profile       Profile
	transport     Transport
	log           *logrus.Logger
	defaultResult struct {
		locations int
		journeys  int
	}
}

// ClientOption configures a Client at construction, mirroring the teacher's
// ClientOption / WithHTTPClient functional-option idiom.
type ClientOption func(*Client)

// WithTransport overrides the default go-requester-backed transport, useful
// for tests that substitute an httptest.Server-backed stub.
func WithTransport(t Transport) ClientOption {
	return func(c *Client) { c.transport = t }
}

// WithLogger overrides the package-default logrus logger.
func WithLogger(log *logrus.Logger) ClientOption {
	return func(c *Client) { c.log = log }
}

// NewClient builds a Client for the given profile. If no transport is
// supplied via WithTransport, one is built from the profile's custom PEM
// bundle, if any.
func NewClient(profile Profile, opts ...ClientOption) (*Client, error) {
	c := &Client{profile: profile, log: logrus.StandardLogger()}
	c.defaultResult.locations = 10
	c.defaultResult.journeys = 5

	for _, opt := range opts {
		opt(c)
	}

	if c.transport == nil {
		t, err := NewTransport(profile.CustomPEMBundle(), c.log)
		if err != nil {
			return nil, err
		}
		c.transport = t
	}

	return c, nil
}

// call runs one envelope build / transport POST / unpack round-trip and
// returns the raw `res` payload for a typed second-pass decode.
func (c *Client) call(ctx context.Context, meth string, cfg map[string]any, req map[string]any) ([]byte, error) {
	body, q, reqID, err := buildEnvelope(c.profile, meth, cfg, req)
	if err != nil {
		return nil, err
	}
	logRequest(c.log, c.profile, meth, reqID)

	raw, err := c.transport.Post(ctx, requestURL(c.profile, q), body, buildHeaders(c.profile))
	if err != nil {
		return nil, err
	}

	res, err := unpackEnvelope(raw)
	if err != nil {
		return nil, err
	}
	return res, nil
}
