package netmon

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

// httpProbe establishes reachability by issuing a HEAD request against a
// known endpoint, typically the remote gateway's health URL.
type httpProbe struct {
	client *resty.Client
	url    string
}

// NewHTTPProbe constructs a [Probe] backed by an HTTP HEAD request.
func NewHTTPProbe(url string, timeout time.Duration) Probe {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &httpProbe{
		client: resty.New().SetTimeout(timeout),
		url:    url,
	}
}

// Check implements [Probe]. Any transport error means "not connected"; the
// response status does not matter, reaching the endpoint at all does.
func (p *httpProbe) Check(ctx context.Context) (bool, error) {
	_, err := p.client.R().SetContext(ctx).Head(p.url)
	if err != nil {
		return false, nil
	}
	return true, nil
}
