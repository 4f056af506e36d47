package dockerhost

import (
	"errors"
	"net/netip"
	"strings"
)

var ErrNoDefaultRoute = errors.New("no default route")

const defaultRoutePrefix = "default"

// ParseDefaultRoute returns the first IP literal found on the first
// "default" line of `ip route` output.
func ParseDefaultRoute(output string) (string, error) {
	output = strings.TrimSpace(output)

	for _, line := range strings.Split(output, "\n") {
		if !strings.HasPrefix(line, defaultRoutePrefix) {
			continue
		}

		for _, part := range strings.Fields(line) {
			if isIPLiteral(part) {
				return part, nil
			}
		}
	}

	return "", ErrNoDefaultRoute
}

// isIPLiteral reports whether s is a plain IPv4 or IPv6 address. Zoned
// addresses like "fe80::1%eth0" are not accepted.
func isIPLiteral(s string) bool {
	if s == "" {
		return false
	}
	addr, err := netip.ParseAddr(s)
	return err == nil && addr.Zone() == ""
}
