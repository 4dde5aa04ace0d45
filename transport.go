package hafas

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"net/http"

	"github.com/nobina/go-requester"
	"github.com/sirupsen/logrus"
)

// Transport is the minimal HTTP contract the envelope builder needs: a
// single signed POST per call, plus a GET for the rare profile that resolves
// auxiliary endpoints (none of the wired profiles currently do, but the
// public interface leaves room for one that does).
type Transport interface {
	Get(ctx context.Context, url string, headers map[string]string) ([]byte, error)
	Post(ctx context.Context, url string, body []byte, headers map[string]string) ([]byte, error)
}

// httpTransport wraps go-requester the same way the teacher's client wraps
// it for SL's departures endpoint: a thin struct around requester.Client,
// building one request per call from functional options.
type httpTransport struct {
	client *requester.Client
	log    *logrus.Logger
}

// NewTransport builds a Transport. pemBundle is an optional PEM-encoded
// collection of extra root certificates; a malformed block is logged at
// Warn and skipped rather than treated as fatal, since a vendor rotating
// certs shouldn't be able to brick every profile that embeds the old bundle.
func NewTransport(pemBundle []byte, log *logrus.Logger) (Transport, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}

	opts := []requester.ClientOption{}
	if len(pemBundle) > 0 {
		pool, err := x509.SystemCertPool()
		if err != nil || pool == nil {
			pool = x509.NewCertPool()
		}
		rest := pemBundle
		for len(rest) > 0 {
			var block *pem.Block
			block, rest = pem.Decode(rest)
			if block == nil {
				break
			}
			cert, err := x509.ParseCertificate(block.Bytes)
			if err != nil {
				log.WithError(err).Warn("hafas: skipping malformed PEM block in custom root bundle")
				continue
			}
			pool.AddCert(cert)
		}
		httpClient := &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{RootCAs: pool},
			},
		}
		opts = append(opts, requester.WithHTTPClient(httpClient))
	}

	client, err := requester.New(opts...)
	if err != nil {
		return nil, err
	}

	return &httpTransport{client: client, log: log}, nil
}

func (t *httpTransport) Get(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	return t.do(ctx, http.MethodGet, url, nil, headers)
}

func (t *httpTransport) Post(ctx context.Context, url string, body []byte, headers map[string]string) ([]byte, error) {
	return t.do(ctx, http.MethodPost, url, body, headers)
}

func (t *httpTransport) do(ctx context.Context, method, url string, body []byte, headers map[string]string) ([]byte, error) {
	opts := []requester.RequestOption{
		requester.WithContext(ctx),
		requester.WithMethod(method),
		requester.WithURL(url),
	}
	if body != nil {
		opts = append(opts, requester.WithBody(body))
	}
	for k, v := range headers {
		opts = append(opts, requester.WithHeader(k, v))
	}

	resp, err := t.client.Do(opts...)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	raw, err := resp.Bytes()
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if code := resp.StatusCode(); code < 200 || code >= 300 {
		return nil, &TransportError{Code: code, Reason: http.StatusText(code), Body: raw}
	}

	return raw, nil
}
