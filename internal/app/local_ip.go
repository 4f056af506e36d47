package app

import (
	"fmt"
	"net"
)

// localIPFor returns the source address the kernel picks for traffic to
// host.
func localIPFor(host string) (net.IP, error) {
	// The port number here is arbitrary; UDP dial doesn't actually send
	// packets or connect.
	conn, err := net.Dial("udp", net.JoinHostPort(host, "1"))
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	udpAddr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return nil, fmt.Errorf("unexpected local addr type %T", conn.LocalAddr())
	}

	return udpAddr.IP, nil
}
