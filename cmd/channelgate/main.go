// Command channelgate manages a channelgate seller account from the terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/channelgate/channelgate-go/client"
	"github.com/channelgate/channelgate-go/internal/config"
	"github.com/channelgate/channelgate-go/internal/logger"
	"github.com/channelgate/channelgate-go/session"
)

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// app carries flag values and everything built from them for one run.
type app struct {
	apiURL      string
	sessionFile string
	debug       bool

	cfg        *config.Config
	logger     zerolog.Logger
	store      session.Store
	storeDesc  string
	closeStore func() error
	client     *client.Client
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "channelgate",
		Short:         "Manage channels, members, payments and webhooks of a channelgate seller",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.apiURL, "api-url", "", "Backend base URL (default $CHANNELGATE_API_BASE_URL or "+config.DefaultBaseURL+")")
	rootCmd.PersistentFlags().StringVar(&a.sessionFile, "session-file", "", "Session file path; forces the file session backend")
	rootCmd.PersistentFlags().BoolVarP(&a.debug, "debug", "d", false, "Enable debug logging and HTTP dumps")

	// Sub-commands
	rootCmd.AddCommand(newRegisterCmd(a))
	rootCmd.AddCommand(newLoginCmd(a))
	rootCmd.AddCommand(newLogoutCmd(a))
	rootCmd.AddCommand(newWhoamiCmd(a))
	rootCmd.AddCommand(newStatsCmd(a))
	rootCmd.AddCommand(newStripeKeysCmd(a))
	rootCmd.AddCommand(newSessionCmd(a))
	rootCmd.AddCommand(newChannelsCmd(a))
	rootCmd.AddCommand(newMembersCmd(a))
	rootCmd.AddCommand(newPaymentsCmd(a))
	rootCmd.AddCommand(newWebhooksCmd(a))

	return rootCmd
}

// setup loads .env and CHANNELGATE_* settings, applies flag overrides and
// builds the session store and client.
func (a *app) setup(cmd *cobra.Command) error {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("api-url") {
		cfg.BaseURL = a.apiURL
	}
	if a.sessionFile != "" {
		cfg.SessionBackend = config.SessionBackendFile
		cfg.SessionFile = a.sessionFile
	}
	if a.debug {
		cfg.Debug = true
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.logger = logger.New(cmd.ErrOrStderr(), cfg.LogLevel)
	log.Logger = a.logger
	zerolog.SetGlobalLevel(a.logger.GetLevel())

	a.store, a.storeDesc, a.closeStore, err = openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	a.client, err = client.New(cfg.BaseURL,
		client.WithSessionStore(a.store),
		client.WithHTTPTimeout(cfg.HTTPTimeout),
		client.WithDebugLogging(cfg.Debug),
		client.WithLogger(a.logger),
		client.WithNavigator(loginHint(cmd.ErrOrStderr())),
	)
	return err
}

func (a *app) teardown() error {
	if a.closeStore == nil {
		return nil
	}
	return a.closeStore()
}

// openStore builds the configured session backend and a human-readable
// description of where it lives.
func openStore(ctx context.Context, cfg *config.Config) (session.Store, string, func() error, error) {
	noop := func() error { return nil }
	switch cfg.SessionBackend {
	case config.SessionBackendMemory:
		return session.NewMemoryStore(), "memory (not persisted)", noop, nil
	case config.SessionBackendRedis:
		store, rdb, err := session.DialRedis(ctx, cfg.RedisURL, session.WithRedisKey(cfg.RedisKey))
		if err != nil {
			return nil, "", nil, err
		}
		return store, fmt.Sprintf("redis hash %q", cfg.RedisKey), rdb.Close, nil
	default:
		path := cfg.SessionFile
		if path == "" {
			var err error
			if path, err = session.DefaultFilePath(); err != nil {
				return nil, "", nil, err
			}
		}
		return session.NewFileStore(path), "file " + path, noop, nil
	}
}

// loginHint is the terminal's version of redirecting to the login page.
func loginHint(w io.Writer) client.Navigator {
	return client.NavigatorFunc(func(_ context.Context, route string) {
		if route != client.LoginRoute {
			return
		}
		_, _ = fmt.Fprintln(w, "Session ended. Run `channelgate login` to sign in again.")
	})
}
