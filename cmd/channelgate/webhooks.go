package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/channelgate/channelgate-go/client"
	"github.com/channelgate/channelgate-go/format"
)

func newWebhooksCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhooks",
		Short: "Manage outbound webhooks",
	}
	cmd.AddCommand(newListWebhooksCmd(a))
	cmd.AddCommand(newCreateWebhookCmd(a))
	cmd.AddCommand(newDeleteWebhookCmd(a))
	return cmd
}

func newListWebhooksCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List webhooks",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.client.ListWebhooks(cmd.Context())
			if err != nil {
				return err
			}
			dbg(env)
			if env.Data == nil || len(*env.Data) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No webhooks")
				return nil
			}
			tw := newTable(cmd.OutOrStdout(), "ID", "URL", "EVENTS", "ACTIVE", "CREATED")
			for _, wh := range *env.Data {
				row(tw, wh.WebhookID, wh.URL, strings.Join(wh.Events, ","), wh.IsActive, format.ShortDate(wh.CreatedAt.Time))
			}
			return tw.Flush()
		},
	}
}

func newCreateWebhookCmd(a *app) *cobra.Command {
	var req client.CreateWebhookRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Subscribe a URL to events",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.client.CreateWebhook(cmd.Context(), req)
			if err != nil {
				return err
			}
			dbg(env)
			if env.Data == nil {
				fmt.Fprintln(cmd.OutOrStdout(), orDash(env.Message))
				return nil
			}
			// The signing secret is only shown once.
			fmt.Fprintf(cmd.OutOrStdout(), "Webhook %s created\nSecret: %s\n", env.Data.WebhookID, env.Data.Secret)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.URL, "url", "", "Destination URL (required)")
	cmd.Flags().StringSliceVar(&req.Events, "event", nil, "Event name, repeatable (required)")
	_ = cmd.MarkFlagRequired("url")
	_ = cmd.MarkFlagRequired("event")

	return cmd
}

func newDeleteWebhookCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <webhook-id>",
		Short: "Delete a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.client.DeleteWebhook(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Webhook %s deleted\n", args[0])
			return nil
		},
	}
}
