package main

import (
	"net"
	"os"
	"strconv"
	"time"
)

const defaultPort = "3000"

func main() {
	os.Exit(check())
}

// check dials the server's port on loopback. Dialing rather than issuing a
// request keeps the probe from triggering an upstream Reddit fetch.
func check() int {
	conn, err := net.DialTimeout("tcp", probeAddr(os.Getenv("PORT")), 2*time.Second)
	if err != nil {
		return 1
	}
	_ = conn.Close()

	return 0
}

// probeAddr returns the loopback address for the configured PORT, falling
// back to the default when it is unset or not a valid port number.
func probeAddr(port string) string {
	if _, err := strconv.ParseUint(port, 10, 16); err != nil {
		port = defaultPort
	}

	return net.JoinHostPort("127.0.0.1", port)
}
