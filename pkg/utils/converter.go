package utils

import "time"

// ToDuration converts whole seconds to a time.Duration.
func ToDuration(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}

// ToDurationMs converts milliseconds to a time.Duration.
func ToDurationMs(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
