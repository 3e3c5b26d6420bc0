// Where: cli/internal/devserver/url.go
// What: Base URL derivation for a running dev server.
// Why: Wildcard bind addresses are not browsable; public overrides the authority.
package devserver

import (
	"fmt"
	"net"
	"strings"

	"github.com/poruru-code/vue-serve-box/cli/internal/options"
)

// DisplayHost maps bind addresses to something a browser can open.
func DisplayHost(host string) string {
	switch strings.TrimSpace(host) {
	case "", "0.0.0.0", "::", "[::]":
		return "localhost"
	}
	return strings.TrimSpace(host)
}

// BaseURL computes the URL announced for a dev server listening on port.
// A public option replaces scheme and authority wholesale, matching how
// proxied setups expose the server.
func BaseURL(opts options.ServeOptions, port int) string {
	scheme := "http"
	if opts.HTTPS {
		scheme = "https"
	}
	if public := strings.TrimSpace(opts.Public); public != "" {
		if strings.Contains(public, "://") {
			return public
		}
		return scheme + "://" + public
	}
	return fmt.Sprintf("%s://%s:%d/", scheme, DisplayHost(opts.Host), port)
}

// ProbeURL computes the direct URL used for readiness checks. Unlike
// BaseURL it ignores the public override and always targets the local
// listener.
func ProbeURL(opts options.ServeOptions, port int) string {
	scheme := "http"
	if opts.HTTPS {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s:%d/", scheme, DisplayHost(opts.Host), port)
}

// NetworkURL returns a LAN-reachable URL for wildcard binds, or empty when
// the server only answers locally or no candidate interface exists.
func NetworkURL(opts options.ServeOptions, port int) string {
	switch strings.TrimSpace(opts.Host) {
	case "", "0.0.0.0", "::", "[::]":
	default:
		return ""
	}
	ip := outboundIPv4()
	if ip == "" {
		return ""
	}
	scheme := "http"
	if opts.HTTPS {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s:%d/", scheme, ip, port)
}

func outboundIPv4() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return ""
	}
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok || ipNet.IP.IsLoopback() {
			continue
		}
		if v4 := ipNet.IP.To4(); v4 != nil {
			return v4.String()
		}
	}
	return ""
}
