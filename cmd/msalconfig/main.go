package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mahmoudchebbani/microsoft-authentication-library-for-js/config"
	"github.com/mahmoudchebbani/microsoft-authentication-library-for-js/internal/client"
	"github.com/mahmoudchebbani/microsoft-authentication-library-for-js/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	client.NewBuildInfo(buildVersion, buildDate, buildCommit).Print(os.Stderr)

	log := logger.NewLogger("msalconfig")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, log); err != nil {
		log.Fatal().Err(err).Msg("msalconfig run error")
	}
}

func run(ctx context.Context, args []string, out io.Writer, log *logger.Logger) error {
	fs := flag.NewFlagSet("msalconfig", flag.ContinueOnError)
	checkAuthority := fs.Bool("check-authority", false, "Fetch the authority's OpenID configuration with the configured network client")

	partial, err := config.LoadClientConfiguration(fs, args)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	app, err := client.NewApp(partial, log)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}

	app.Describe()

	if *checkAuthority {
		if err = app.CheckAuthority(log.WithContext(ctx)); err != nil {
			return err
		}
	}

	return app.Print(out)
}
