package network

import "sync"

var (
	defaultClient     Module
	defaultClientOnce sync.Once
)

// DefaultClient returns the process-wide network client used when a
// configuration does not supply one. It is created on first use and the same
// instance is returned afterwards.
func DefaultClient() Module {
	defaultClientOnce.Do(func() {
		defaultClient = NewHTTPClient(DefaultTimeout)
	})

	return defaultClient
}
