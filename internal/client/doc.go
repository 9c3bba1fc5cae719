// SPDX-License-Identifier: Apache-2.0

// Package client implements the msalconfig command runtime.
//
// It resolves a loaded partial configuration into a complete one, reports
// what it resolved to through the configured logger, can probe the authority
// with the configured network client, and prints the result as JSON.
package client
