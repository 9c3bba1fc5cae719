package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/mahmoudchebbani/microsoft-authentication-library-for-js/config"
	"github.com/mahmoudchebbani/microsoft-authentication-library-for-js/internal/logger"
)

const openIDConfigurationPath = "/v2.0/.well-known/openid-configuration"

// App holds a resolved client configuration and the logger it reports to.
type App struct {
	cfg config.ClientConfiguration
	log *logger.Logger
}

// NewApp resolves partial with [config.BuildConfiguration]. When partial
// carries logger options without a callback, the callback is bound to log at
// the configured level; partial is updated in place. A nil log discards
// output.
func NewApp(partial *config.ClientConfiguration, log *logger.Logger) (*App, error) {
	if partial == nil {
		return nil, ErrNilConfiguration
	}
	if log == nil {
		log = logger.Nop()
	}
	log = log.GetChildLogger("client")

	if partial.System != nil && partial.System.LoggerOptions != nil && partial.System.LoggerOptions.LoggerCallback == nil {
		opts := partial.System.LoggerOptions
		opts.LoggerCallback = logger.NewCallback(log.LevelFor(opts.LogLevel))
	}

	return &App{cfg: config.BuildConfiguration(*partial), log: log}, nil
}

// Config returns the resolved configuration.
func (a *App) Config() config.ClientConfiguration {
	return a.cfg
}

// Describe logs the resolved configuration and sends a summary through the
// configured logger callback. A client id that is empty or not a GUID only
// produces a warning.
func (a *App) Describe() {
	auth, cache, logOpts := a.cfg.Auth, a.cfg.Cache, a.cfg.System.LoggerOptions

	a.log.Info().
		Str("client_id", auth.ClientID).
		Str("authority", auth.Authority).
		Str("cache_location", cache.CacheLocation).
		Bool("store_auth_state_in_cookie", cache.StoreAuthStateInCookie).
		Stringer("log_level", logOpts.LogLevel).
		Bool("pii_logging_enabled", logOpts.PiiLoggingEnabled).
		Str("network_client", fmt.Sprintf("%T", a.cfg.System.NetworkClient)).
		Msg("client configuration resolved")

	switch {
	case auth.ClientID == "":
		a.log.Warn().Msg("client id is not set")
	case uuid.Validate(auth.ClientID) != nil:
		a.log.Warn().Str("client_id", auth.ClientID).Msg("client id is not a GUID")
	}

	if logOpts.LoggerCallback != nil {
		logOpts.LoggerCallback(config.LogLevelInfo, "client configuration resolved for "+auth.ClientID, false)
	}
}

// CheckAuthority fetches the authority's OpenID configuration document with
// the configured network client and logs the issuer it advertises to the
// logger carried by ctx, or the app logger when ctx has none.
func (a *App) CheckAuthority(ctx context.Context) error {
	authority := strings.TrimRight(a.cfg.Auth.Authority, "/")
	if authority == "" {
		return ErrNoAuthority
	}

	endpoint := authority + openIDConfigurationPath
	resp, err := a.cfg.System.NetworkClient.SendGetRequest(ctx, endpoint, nil)
	if err != nil {
		return fmt.Errorf("check authority: %w", err)
	}
	if err = resp.Err(); err != nil {
		return fmt.Errorf("check authority %s: %w", endpoint, err)
	}

	var doc struct {
		Issuer string `json:"issuer"`
	}
	if err = resp.DecodeJSON(&doc); err != nil {
		return fmt.Errorf("check authority: %w", err)
	}

	logger.FromContext(ctx, a.log).Info().
		Str("endpoint", endpoint).
		Int("status", resp.Status).
		Str("issuer", doc.Issuer).
		Msg("authority reachable")

	return nil
}

// Print writes the resolved configuration to w as indented JSON. The logger
// callback and network client are capabilities, not data, and are omitted.
func (a *App) Print(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(a.cfg); err != nil {
		return fmt.Errorf("encode configuration: %w", err)
	}

	return nil
}
