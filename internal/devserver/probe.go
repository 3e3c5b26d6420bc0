// Where: cli/internal/devserver/probe.go
// What: Dev server readiness probing.
// Why: Avoid announcing a URL before the delegate accepts connections.
package devserver

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"
)

// Probe polls a URL until the server answers. Any HTTP response counts as
// ready, including 404; only transport failures keep the probe waiting.
type Probe struct {
	Client   *http.Client
	Timeout  time.Duration
	Interval time.Duration
}

// NewProbe builds a probe with a short per-request timeout and relaxed TLS,
// since https dev servers run on self-signed certificates.
func NewProbe() *Probe {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	}
	return &Probe{
		Client: &http.Client{
			Transport: transport,
			Timeout:   1 * time.Second,
		},
		Timeout:  60 * time.Second,
		Interval: 250 * time.Millisecond,
	}
}

// Wait blocks until the URL answers, the timeout elapses, or ctx is
// canceled.
func (p *Probe) Wait(ctx context.Context, url string) error {
	if p.Client == nil {
		return fmt.Errorf("probe client not configured")
	}
	deadline := time.Now().Add(p.Timeout)

	for time.Now().Before(deadline) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		resp, err := p.Client.Do(req)
		if err == nil {
			_ = resp.Body.Close()
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.Interval):
		}
	}

	return fmt.Errorf("dev server did not answer at %s within %s", url, p.Timeout)
}
