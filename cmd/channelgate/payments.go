package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/channelgate/channelgate-go/client"
	"github.com/channelgate/channelgate-go/format"
)

func newPaymentsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payments",
		Short: "List payments and start checkouts",
	}
	cmd.AddCommand(newListPaymentsCmd(a))
	cmd.AddCommand(newCheckoutCmd(a))
	return cmd
}

func newListPaymentsCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent payments",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.client.ListPayments(cmd.Context(), limit)
			if err != nil {
				return err
			}
			dbg(env)
			if env.Data == nil || len(*env.Data) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No payments")
				return nil
			}
			tw := newTable(cmd.OutOrStdout(), "DATE", "AMOUNT", "STATUS", "PAYMENT INTENT")
			for _, p := range *env.Data {
				row(tw, format.ShortDate(p.CreatedAt.Time), format.Currency(p.Amount, strings.ToUpper(p.Currency)), p.Status, orDash(p.StripePaymentIntentID))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 100, "Maximum number of payments")

	return cmd
}

func newCheckoutCmd(a *app) *cobra.Command {
	var req client.CreateCheckoutRequest
	var metadata map[string]string

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Create a hosted checkout session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(metadata) > 0 {
				req.Metadata = metadata
			}
			env, err := a.client.CreateCheckout(cmd.Context(), req)
			if err != nil {
				return err
			}
			dbg(env)
			if env.Data == nil {
				fmt.Fprintln(cmd.OutOrStdout(), orDash(env.Message))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Checkout session %s\n%s\n", env.Data.SessionID, env.Data.URL)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.PriceID, "price-id", "", "Price ID (required)")
	cmd.Flags().StringVar(&req.SuccessURL, "success-url", "", "Redirect after payment (required)")
	cmd.Flags().StringVar(&req.CancelURL, "cancel-url", "", "Redirect on cancel (required)")
	cmd.Flags().StringVar(&req.CustomerEmail, "email", "", "Prefill customer email")
	cmd.Flags().StringToStringVar(&metadata, "metadata", nil, "key=value pairs attached to the session")
	_ = cmd.MarkFlagRequired("price-id")
	_ = cmd.MarkFlagRequired("success-url")
	_ = cmd.MarkFlagRequired("cancel-url")

	return cmd
}
