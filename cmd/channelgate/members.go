package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/channelgate/channelgate-go/client"
	"github.com/channelgate/channelgate-go/format"
)

func newMembersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members",
		Short: "List, remove and grant members",
	}
	cmd.AddCommand(newListMembersCmd(a))
	cmd.AddCommand(newRemoveMemberCmd(a))
	cmd.AddCommand(newGrantAccessCmd(a))
	return cmd
}

func newListMembersCmd(a *app) *cobra.Command {
	var filter client.MemberFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List memberships",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.client.ListMembers(cmd.Context(), filter)
			if err != nil {
				return err
			}
			dbg(env)
			if env.Data == nil || len(*env.Data) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No members")
				return nil
			}
			tw := newTable(cmd.OutOrStdout(), "USER", "TELEGRAM", "CHAT ID", "STATUS", "PERIOD END")
			for _, m := range *env.Data {
				tg := m.User.TelegramUsername
				if tg != "" {
					tg = "@" + tg
				}
				row(tw, m.User.ExtUserID, orDash(tg), m.Membership.ChatID, m.Membership.Status, format.ShortDate(m.Membership.CurrentPeriodEnd.Time))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().Int64Var(&filter.ChatID, "chat-id", 0, "Only this chat")
	cmd.Flags().StringVar(&filter.Status, "status", "all", "active, cancelled, expired or all")

	return cmd
}

func newRemoveMemberCmd(a *app) *cobra.Command {
	var req client.RemoveMemberRequest

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Force-remove a user from a chat",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.client.RemoveMember(cmd.Context(), req)
			if err != nil {
				return err
			}
			dbg(env)
			msg := orDash(env.Message)
			if req.DryRun {
				msg += " (dry run)"
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.ExtUserID, "user", "", "External user ID (required)")
	cmd.Flags().Int64Var(&req.ChatID, "chat-id", 0, "Telegram chat ID (required)")
	cmd.Flags().StringVar(&req.Reason, "reason", "", "Reason recorded with the removal")
	cmd.Flags().BoolVar(&req.DryRun, "dry-run", false, "Check without removing")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("chat-id")

	return cmd
}

func newGrantAccessCmd(a *app) *cobra.Command {
	var req client.GrantAccessRequest

	cmd := &cobra.Command{
		Use:   "grant",
		Short: "Grant a user timed access to chats",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.client.GrantAccess(cmd.Context(), req)
			if err != nil {
				return err
			}
			dbg(env)
			out := cmd.OutOrStdout()
			if env.Data == nil {
				fmt.Fprintln(out, orDash(env.Message))
				return nil
			}
			fmt.Fprintf(out, "Access until %s\n", format.Date(env.Data.PeriodEnd.Time))

			chats := make([]string, 0, len(env.Data.Invites))
			for chat := range env.Data.Invites {
				chats = append(chats, chat)
			}
			sort.Slice(chats, func(i, j int) bool {
				x, _ := strconv.ParseInt(chats[i], 10, 64)
				y, _ := strconv.ParseInt(chats[j], 10, 64)
				return x < y
			})
			tw := newTable(out, "CHAT ID", "INVITE")
			for _, chat := range chats {
				row(tw, chat, env.Data.Invites[chat])
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if len(env.Data.Errors) > 0 {
				fmt.Fprintf(out, "Errors: %s\n", env.Data.Errors)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&req.ExtUserID, "user", "", "External user ID (required)")
	cmd.Flags().Int64SliceVar(&req.ChatIDs, "chat-id", nil, "Telegram chat ID, repeatable (required)")
	cmd.Flags().IntVar(&req.PeriodDays, "days", 30, "Length of access in days")
	cmd.Flags().StringVar(&req.Ref, "ref", "", "Reference stored with the grant")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("chat-id")

	return cmd
}
