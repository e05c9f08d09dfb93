package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/channelgate/channelgate-go/client"
	"github.com/channelgate/channelgate-go/format"
)

func newChannelsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "channels",
		Short: "List, add and update channels",
	}
	cmd.AddCommand(newListChannelsCmd(a))
	cmd.AddCommand(newSaveChannelCmd(a, "add"))
	cmd.AddCommand(newSaveChannelCmd(a, "update"))
	return cmd
}

func newListChannelsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your channels",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.client.ListChannels(cmd.Context())
			if err != nil {
				return err
			}
			dbg(env)
			if env.Data == nil || len(*env.Data) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No channels")
				return nil
			}
			tw := newTable(cmd.OutOrStdout(), "CHAT ID", "NAME", "PRICE/MONTH", "ACTIVE", "MEMBERS")
			for _, ch := range *env.Data {
				price := "-"
				if ch.PricePerMonth != nil {
					price = format.MajorUnits(*ch.PricePerMonth, format.DefaultCurrency)
				}
				row(tw, ch.ChatID, ch.Name, price, ch.ActiveMembers, ch.TotalMembers)
			}
			return tw.Flush()
		},
	}
}

// newSaveChannelCmd builds "add" or "update"; both send the same body.
func newSaveChannelCmd(a *app, verb string) *cobra.Command {
	var req client.AddChannelRequest
	var price float64

	cmd := &cobra.Command{
		Use:   verb,
		Short: verb + " a channel",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("price") {
				req.PricePerMonth = &price
			}
			save := a.client.AddChannel
			if verb == "update" {
				save = a.client.UpdateChannel
			}
			env, err := save(cmd.Context(), req)
			if err != nil {
				return err
			}
			dbg(env)
			out := cmd.OutOrStdout()
			if env.Data == nil {
				fmt.Fprintln(out, orDash(env.Message))
				return nil
			}
			fmt.Fprintf(out, "Channel %d saved as %q (join model %s)\n", env.Data.StoredChatID, env.Data.Name, env.Data.JoinModel)
			checks := env.Data.Checks
			fmt.Fprintf(out, "Bot %d admin=%t invite=%t restrict=%t\n",
				checks.BotID, checks.IsAdmin, checks.Permissions.CanInviteUsers, checks.Permissions.CanRestrictMembers)
			return nil
		},
	}

	cmd.Flags().Int64Var(&req.ChatID, "chat-id", 0, "Telegram chat ID (required)")
	cmd.Flags().StringVar(&req.Name, "name", "", "Channel name (required)")
	cmd.Flags().StringVar(&req.JoinModel, "join-model", "", "invite_link or join_request")
	cmd.Flags().StringVar(&req.Description, "description", "", "Description (optional)")
	cmd.Flags().Float64Var(&price, "price", 0, "Monthly price in major units, e.g. 9.99")
	_ = cmd.MarkFlagRequired("chat-id")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
