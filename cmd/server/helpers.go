package main

import (
	"fmt"
	"strconv"
)

// sanitizePort returns a sensible default when empty.
func sanitizePort(p string) string {
	if p == "" {
		return "8080"
	}
	return p
}

// validatePort rejects ports outside 1..65535.
func validatePort(p string) error {
	n, err := strconv.Atoi(p)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("invalid port number: %s, must be between 1 and 65535", p)
	}
	return nil
}
