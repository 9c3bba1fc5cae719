// SPDX-License-Identifier: Apache-2.0

package config

import "flag"

// LoadClientConfiguration gathers a partial [ClientConfiguration] from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables (MSAL_ prefix)
//  2. Command-line flags registered on fs and parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
//
// The result is meant to be passed to [BuildConfiguration]; sections no
// source mentioned are left nil. Callers may register their own flags on fs
// before calling; they are parsed together with the configuration flags.
//
// Returns an error if any source fails to load.
func LoadClientConfiguration(fs *flag.FlagSet, args []string) (*ClientConfiguration, error) {
	return newSourceBuilder().
		withEnv().
		withFlags(fs, args).
		withJSON().
		build()
}
