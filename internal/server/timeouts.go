package server

import "time"

// Every request makes at most one upstream call, so the write timeout must
// outlast the upstream client's 10s default plus response serialization.
// Reads are just small GETs with query params and can be cut off sooner.
const (
	readTimeout  = 5 * time.Second
	writeTimeout = 15 * time.Second
	idleTimeout  = 90 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
