package services

import "time"

// Polling bounds for asynchronous side effects (email delivery).
const (
	waitFor = 2 * time.Second
	tick    = 10 * time.Millisecond
)
