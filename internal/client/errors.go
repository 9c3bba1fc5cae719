package client

import "errors"

var (
	// ErrNoAuthority is returned by CheckAuthority when the resolved
	// configuration has no authority to probe.
	ErrNoAuthority = errors.New("authority is not configured")
	// ErrNilConfiguration is returned by NewApp when no configuration is given.
	ErrNilConfiguration = errors.New("nil client configuration")
)
