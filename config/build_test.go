// SPDX-License-Identifier: Apache-2.0

package config

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mahmoudchebbani/microsoft-authentication-library-for-js/internal/mock"
	"github.com/mahmoudchebbani/microsoft-authentication-library-for-js/network"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func requireComplete(t *testing.T, cfg ClientConfiguration) {
	t.Helper()
	require.NotNil(t, cfg.Auth)
	require.NotNil(t, cfg.Cache)
	require.NotNil(t, cfg.System)
	require.NotNil(t, cfg.System.LoggerOptions)
	require.NotNil(t, cfg.System.NetworkClient)
}

func assertDefaultLogger(t *testing.T, opts *LoggerOptions) {
	t.Helper()
	require.NotNil(t, opts)
	require.NotNil(t, opts.LoggerCallback)
	assert.False(t, opts.PiiLoggingEnabled)
	assert.Equal(t, LogLevelInfo, opts.LogLevel)
	assert.NotPanics(t, func() { opts.LoggerCallback(LogLevelError, "dropped", true) })
}

func funcPointer(f LoggerCallback) uintptr {
	return reflect.ValueOf(f).Pointer()
}

// ── totality & defaults ───────────────────────────────────────────────────────

// TestBuildConfiguration_Empty verifies that an empty configuration yields
// exactly the default auth, cache and system sections.
func TestBuildConfiguration_Empty(t *testing.T) {
	cfg := BuildConfiguration(ClientConfiguration{})

	requireComplete(t, cfg)
	assert.Equal(t, NodeAuthOptions{ClientID: "", Authority: ""}, *cfg.Auth)
	assert.Equal(t, CacheOptions{CacheLocation: "fileCache", StoreAuthStateInCookie: false}, *cfg.Cache)
	assertDefaultLogger(t, cfg.System.LoggerOptions)
	assert.Same(t, network.DefaultClient(), cfg.System.NetworkClient)
}

// TestBuildConfiguration_EmptySections verifies that empty section records
// behave exactly like absent ones.
func TestBuildConfiguration_EmptySections(t *testing.T) {
	cfg := BuildConfiguration(ClientConfiguration{
		Auth:   &NodeAuthOptions{},
		Cache:  &CacheOptions{},
		System: &NodeSystemOptions{},
	})

	requireComplete(t, cfg)
	assert.Equal(t, DefaultAuthOptions(), *cfg.Auth)
	assert.Equal(t, DefaultCacheOptions(), *cfg.Cache)
	assertDefaultLogger(t, cfg.System.LoggerOptions)
	assert.Same(t, network.DefaultClient(), cfg.System.NetworkClient)
}

// TestBuildConfiguration_ExampleScenario covers the documented example with
// only a client id supplied.
func TestBuildConfiguration_ExampleScenario(t *testing.T) {
	const clientID = "00000000-0000-0000-0000-000000000000"

	cfg := BuildConfiguration(ClientConfiguration{
		Auth: &NodeAuthOptions{ClientID: clientID},
	})

	requireComplete(t, cfg)
	assert.Equal(t, NodeAuthOptions{ClientID: clientID, Authority: ""}, *cfg.Auth)
	assert.Equal(t, CacheOptions{CacheLocation: CacheLocationFileCache, StoreAuthStateInCookie: false}, *cfg.Cache)
	assertDefaultLogger(t, cfg.System.LoggerOptions)
	assert.Same(t, network.DefaultClient(), cfg.System.NetworkClient)
}

// ── override precedence ───────────────────────────────────────────────────────

func TestBuildConfiguration_AuthOverrides(t *testing.T) {
	tests := []struct {
		name     string
		auth     *NodeAuthOptions
		expected NodeAuthOptions
	}{
		{
			name:     "client id only",
			auth:     &NodeAuthOptions{ClientID: "abc"},
			expected: NodeAuthOptions{ClientID: "abc", Authority: ""},
		},
		{
			name:     "authority only",
			auth:     &NodeAuthOptions{Authority: "https://login.microsoftonline.com/common"},
			expected: NodeAuthOptions{ClientID: "", Authority: "https://login.microsoftonline.com/common"},
		},
		{
			name: "both",
			auth: &NodeAuthOptions{ClientID: "abc", Authority: "https://login.microsoftonline.com/tenant"},
			expected: NodeAuthOptions{
				ClientID:  "abc",
				Authority: "https://login.microsoftonline.com/tenant",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := BuildConfiguration(ClientConfiguration{Auth: tt.auth})
			assert.Equal(t, tt.expected, *cfg.Auth)
		})
	}
}

func TestBuildConfiguration_CacheOverrides(t *testing.T) {
	tests := []struct {
		name     string
		cache    *CacheOptions
		expected CacheOptions
	}{
		{
			name:     "location only",
			cache:    &CacheOptions{CacheLocation: "extension_library"},
			expected: CacheOptions{CacheLocation: "extension_library", StoreAuthStateInCookie: false},
		},
		{
			name:     "cookie flag only",
			cache:    &CacheOptions{StoreAuthStateInCookie: true},
			expected: CacheOptions{CacheLocation: CacheLocationFileCache, StoreAuthStateInCookie: true},
		},
		{
			name:     "both",
			cache:    &CacheOptions{CacheLocation: "memory", StoreAuthStateInCookie: true},
			expected: CacheOptions{CacheLocation: "memory", StoreAuthStateInCookie: true},
		},
		{
			name:     "explicit empty location",
			cache:    &CacheOptions{CacheLocation: ""},
			expected: CacheOptions{CacheLocation: DefaultCacheLocation, StoreAuthStateInCookie: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := BuildConfiguration(ClientConfiguration{Cache: tt.cache})
			assert.Equal(t, tt.expected, *cfg.Cache)
		})
	}
}

// TestBuildConfiguration_UserNetworkClient verifies that a caller-supplied
// network client is used as is and never replaced by the default.
func TestBuildConfiguration_UserNetworkClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockModule(ctrl)

	cfg := BuildConfiguration(ClientConfiguration{
		System: &NodeSystemOptions{NetworkClient: client},
	})

	requireComplete(t, cfg)
	assert.Same(t, client, cfg.System.NetworkClient)
	assertDefaultLogger(t, cfg.System.LoggerOptions)
}

func TestBuildConfiguration_UserLoggerOptions(t *testing.T) {
	var got []string
	opts := &LoggerOptions{
		LoggerCallback: func(level LogLevel, message string, containsPii bool) {
			got = append(got, level.String()+":"+message)
		},
		PiiLoggingEnabled: true,
		LogLevel:          LogLevelVerbose,
	}

	cfg := BuildConfiguration(ClientConfiguration{
		System: &NodeSystemOptions{LoggerOptions: opts},
	})

	require.NotNil(t, cfg.System)
	assert.Same(t, opts, cfg.System.LoggerOptions)
	assert.Same(t, network.DefaultClient(), cfg.System.NetworkClient)

	cfg.System.LoggerOptions.LoggerCallback(LogLevelWarning, "hello", false)
	assert.Equal(t, []string{"Warning:hello"}, got)
}

// ── shallow merge boundary ────────────────────────────────────────────────────

// TestBuildConfiguration_LoggerOptionsReplacedWhole verifies that a partial
// LoggerOptions is not completed with default fields.
func TestBuildConfiguration_LoggerOptionsReplacedWhole(t *testing.T) {
	t.Run("level only", func(t *testing.T) {
		cfg := BuildConfiguration(ClientConfiguration{
			System: &NodeSystemOptions{LoggerOptions: &LoggerOptions{LogLevel: LogLevelVerbose}},
		})

		opts := cfg.System.LoggerOptions
		require.NotNil(t, opts)
		assert.Equal(t, LogLevelVerbose, opts.LogLevel)
		assert.False(t, opts.PiiLoggingEnabled)
		assert.Nil(t, opts.LoggerCallback, "default callback must not be merged in")
	})

	t.Run("pii only", func(t *testing.T) {
		cfg := BuildConfiguration(ClientConfiguration{
			System: &NodeSystemOptions{LoggerOptions: &LoggerOptions{PiiLoggingEnabled: true}},
		})

		opts := cfg.System.LoggerOptions
		require.NotNil(t, opts)
		assert.True(t, opts.PiiLoggingEnabled)
		assert.Equal(t, LogLevelError, opts.LogLevel, "default Info level must not be merged in")
		assert.Nil(t, opts.LoggerCallback)
	})
}

// ── idempotence ───────────────────────────────────────────────────────────────

func TestBuildConfiguration_Idempotent(t *testing.T) {
	inputs := map[string]ClientConfiguration{
		"empty": {},
		"auth only": {
			Auth: &NodeAuthOptions{ClientID: "abc"},
		},
		"everything": {
			Auth:   &NodeAuthOptions{ClientID: "abc", Authority: "https://login.example.com/tenant"},
			Cache:  &CacheOptions{CacheLocation: "memory", StoreAuthStateInCookie: true},
			System: &NodeSystemOptions{LoggerOptions: &LoggerOptions{LogLevel: LogLevelWarning}},
		},
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			first := BuildConfiguration(in)
			second := BuildConfiguration(first)

			requireComplete(t, second)
			assert.Equal(t, *first.Auth, *second.Auth)
			assert.Equal(t, *first.Cache, *second.Cache)
			assert.Same(t, first.System.LoggerOptions, second.System.LoggerOptions)
			assert.Same(t, first.System.NetworkClient, second.System.NetworkClient)
		})
	}
}

// ── independence ──────────────────────────────────────────────────────────────

func TestBuildConfiguration_SectionsIndependent(t *testing.T) {
	auth := &NodeAuthOptions{ClientID: "abc", Authority: "https://login.example.com/tenant"}
	opts := &LoggerOptions{LogLevel: LogLevelVerbose}

	withoutCache := BuildConfiguration(ClientConfiguration{
		Auth:   auth,
		System: &NodeSystemOptions{LoggerOptions: opts},
	})
	withCache := BuildConfiguration(ClientConfiguration{
		Auth:   auth,
		Cache:  &CacheOptions{CacheLocation: "memory", StoreAuthStateInCookie: true},
		System: &NodeSystemOptions{LoggerOptions: opts},
	})

	assert.Equal(t, *withoutCache.Auth, *withCache.Auth)
	assert.Same(t, withoutCache.System.LoggerOptions, withCache.System.LoggerOptions)
	assert.Same(t, withoutCache.System.NetworkClient, withCache.System.NetworkClient)
	assert.NotEqual(t, *withoutCache.Cache, *withCache.Cache)

	withoutAuth := BuildConfiguration(ClientConfiguration{
		Cache: &CacheOptions{CacheLocation: "memory"},
	})
	withAuth := BuildConfiguration(ClientConfiguration{
		Auth:  auth,
		Cache: &CacheOptions{CacheLocation: "memory"},
	})
	assert.Equal(t, *withoutAuth.Cache, *withAuth.Cache)
}

// ── aliasing & concurrency ────────────────────────────────────────────────────

// TestBuildConfiguration_DoesNotAliasInput verifies that mutating the result
// leaves the caller's records and the defaults untouched.
func TestBuildConfiguration_DoesNotAliasInput(t *testing.T) {
	in := ClientConfiguration{
		Auth:  &NodeAuthOptions{ClientID: "abc"},
		Cache: &CacheOptions{CacheLocation: "memory"},
	}

	cfg := BuildConfiguration(in)
	cfg.Auth.ClientID = "changed"
	cfg.Cache.CacheLocation = "changed"
	cfg.System.LoggerOptions.LogLevel = LogLevelVerbose

	assert.Equal(t, "abc", in.Auth.ClientID)
	assert.Equal(t, "memory", in.Cache.CacheLocation)
	assert.Equal(t, LogLevelInfo, BuildConfiguration(ClientConfiguration{}).System.LoggerOptions.LogLevel)
}

func TestBuildConfiguration_Concurrent(t *testing.T) {
	const workers = 16

	var wg sync.WaitGroup
	results := make([]ClientConfiguration, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = BuildConfiguration(ClientConfiguration{Auth: &NodeAuthOptions{ClientID: "abc"}})
		}()
	}
	wg.Wait()

	for _, cfg := range results {
		requireComplete(t, cfg)
		assert.Equal(t, "abc", cfg.Auth.ClientID)
		assert.Same(t, results[0].System.NetworkClient, cfg.System.NetworkClient)
	}
}

// ── defaults ──────────────────────────────────────────────────────────────────

func TestDefaultLoggerOptions_FreshCopies(t *testing.T) {
	first := DefaultLoggerOptions()
	second := DefaultLoggerOptions()

	assert.NotSame(t, first, second)
	assert.Equal(t, funcPointer(first.LoggerCallback), funcPointer(second.LoggerCallback))
}

func TestDefaultSystemOptions(t *testing.T) {
	opts := DefaultSystemOptions()

	assertDefaultLogger(t, opts.LoggerOptions)
	assert.Same(t, network.DefaultClient(), opts.NetworkClient)
}
