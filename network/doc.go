// SPDX-License-Identifier: Apache-2.0

// Package network defines the request-sending capability an authentication
// client is configured with, and ships the default implementation.
//
// The capability is the [Module] interface: anything that can send a GET or a
// POST and hand back a [Response]. Callers may plug in their own Module through
// the client configuration; when they do not, [DefaultClient] supplies a shared
// [HTTPClient] backed by resty.
//
// A Module never turns an HTTP status into an error on its own. The status is
// reported in [Response.Status] and [Response.Err] maps non-2xx codes to the
// sentinel errors in errors.go so consumers can use [errors.Is].
package network
