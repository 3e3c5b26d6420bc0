// Where: cli/internal/devserver/port.go
// What: Free TCP port selection for auto-assigned dev servers.
package devserver

import (
	"fmt"
	"net"
	"strings"
)

// PickPort asks the kernel for a free TCP port on the given bind host.
// The listener closes before returning, so a small race with other
// processes remains; the delegate reports its own bind failure in that
// case.
func PickPort(host string) (int, error) {
	listener, err := net.Listen("tcp", net.JoinHostPort(listenHost(host), "0"))
	if err != nil {
		return 0, fmt.Errorf("pick free port: %w", err)
	}
	defer func() { _ = listener.Close() }()

	addr, ok := listener.Addr().(*net.TCPAddr)
	if !ok {
		return 0, fmt.Errorf("pick free port: unexpected address %v", listener.Addr())
	}
	return addr.Port, nil
}

// listenHost maps wildcard binds to the empty host so the trial listener
// claims the port on every interface the delegate will bind.
func listenHost(host string) string {
	trimmed := strings.TrimSpace(host)
	switch trimmed {
	case "", "0.0.0.0", "::", "[::]":
		return ""
	}
	return trimmed
}
