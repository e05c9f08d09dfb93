package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/channelgate/channelgate-go/client"
	"github.com/channelgate/channelgate-go/format"
	"github.com/channelgate/channelgate-go/session"
)

func newRegisterCmd(a *app) *cobra.Command {
	var email, password, company string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a seller account",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.client.Register(cmd.Context(), client.RegisterRequest{
				Email:       email,
				Password:    password,
				CompanyName: company,
			})
			if err != nil {
				return err
			}
			dbg(env)
			if env.Data == nil {
				return fmt.Errorf("register: %s", env.Message)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Seller registered: %s (%s)\n", env.Data.SellerID, env.Data.Email)
			fmt.Fprintf(out, "API key: %s\n", env.Data.APIKey)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Seller email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (required)")
	cmd.Flags().StringVar(&company, "company", "", "Company name (optional)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLoginCmd(a *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			env, err := a.client.Login(cmd.Context(), client.LoginRequest{Email: email, Password: password})
			if err != nil {
				a.logger.Debug().Err(err).Str("email", email).Dur("elapsed", time.Since(start)).Msg("login failed")
				return err
			}
			dbg(env)
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (session: %s)\n", email, a.storeDesc)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Seller email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in seller",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.client.GetProfile(cmd.Context())
			if err != nil {
				return err
			}
			dbg(env)
			me := env.Data
			if me == nil {
				return fmt.Errorf("profile: %s", env.Message)
			}
			tw := newTable(cmd.OutOrStdout(), "FIELD", "VALUE")
			row(tw, "Email", me.Email)
			row(tw, "Company", orDash(me.CompanyName))
			row(tw, "Seller ID", me.ID)
			row(tw, "Subscription", me.SubscriptionStatus)
			row(tw, "Verified", me.IsVerified)
			row(tw, "Member since", format.Date(me.CreatedAt.Time))
			if me.LastLogin != nil {
				row(tw, "Last login", format.RelativeTime(me.LastLogin.Time, time.Now()))
			}
			return tw.Flush()
		},
	}
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show channel, member and revenue totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.client.GetStats(cmd.Context())
			if err != nil {
				return err
			}
			dbg(env)
			st := env.Data
			if st == nil {
				return fmt.Errorf("stats: %s", env.Message)
			}
			tw := newTable(cmd.OutOrStdout(), "METRIC", "VALUE")
			row(tw, "Channels", st.TotalChannels)
			row(tw, "Active members", st.ActiveMembers)
			row(tw, "Total members", st.TotalMembers)
			row(tw, "Revenue", format.Currency(st.TotalRevenueCents, format.DefaultCurrency))
			return tw.Flush()
		},
	}
}

func newStripeKeysCmd(a *app) *cobra.Command {
	var publishable, secret string

	cmd := &cobra.Command{
		Use:   "stripe-keys",
		Short: "Store your own Stripe keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.client.UpdateStripeKeys(cmd.Context(), client.StripeKeysRequest{
				PublishableKey: publishable,
				SecretKey:      secret,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), orDash(env.Message))
			return nil
		},
	}

	cmd.Flags().StringVar(&publishable, "publishable-key", "", "Stripe publishable key (required)")
	cmd.Flags().StringVar(&secret, "secret-key", "", "Stripe secret key (required)")
	_ = cmd.MarkFlagRequired("publishable-key")
	_ = cmd.MarkFlagRequired("secret-key")

	return cmd
}

// newSessionCmd reports what is stored locally without calling the backend.
func newSessionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Show which credentials are stored locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			tw := newTable(cmd.OutOrStdout(), "KEY", "STORED")
			row(tw, "backend", a.storeDesc)
			for _, key := range []string{session.KeyAccessToken, session.KeyRefreshToken, session.KeyTokenType, session.KeyAPIKey} {
				v, err := a.store.Get(ctx, key)
				if err != nil {
					return err
				}
				row(tw, key, v != "")
			}

			token, err := a.store.Get(ctx, session.KeyAccessToken)
			if err != nil {
				return err
			}
			if token != "" {
				info, err := session.Inspect(token)
				if err != nil {
					row(tw, "token", "opaque")
				} else {
					row(tw, "subject", orDash(info.Subject))
					if !info.ExpiresAt.IsZero() {
						state := "valid"
						if info.Expired(time.Now()) {
							state = "expired"
						}
						row(tw, "expires", format.Date(info.ExpiresAt.Local())+" ("+state+")")
					}
				}
			}
			return tw.Flush()
		},
	}
}
