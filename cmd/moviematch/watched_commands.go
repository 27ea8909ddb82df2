package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"moviematch/internal/session"
)

func newWatchedCommand(ctx *commandContext) *cobra.Command {
	watchedCmd := &cobra.Command{
		Use:   "watched",
		Short: "Manage the watched list",
	}

	watchedCmd.AddCommand(newWatchedListCommand(ctx))
	watchedCmd.AddCommand(newWatchedAddCommand(ctx))

	return watchedCmd
}

func newWatchedListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show watched entries with their classified reviews",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(func(sess *session.Session) error {
				items, err := sess.Watched(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(items) == 0 {
					fmt.Fprintln(out, "No watched entries yet")
					return nil
				}
				fmt.Fprintln(out, renderWatchedTable(items, sess.Index()))
				return nil
			})
		},
	}
}

func newWatchedAddCommand(ctx *commandContext) *cobra.Command {
	var review string
	var pick int

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Record a watched title with a short review",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")
			in := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			return ctx.withSession(func(sess *session.Session) error {
				entry, err := resolveEntry(sess, in, out, title, pick)
				if err != nil {
					return err
				}
				text := strings.TrimSpace(review)
				if text == "" {
					text, err = promptLine(in, out, fmt.Sprintf("Your thoughts on %s (%d)", entry.Title, entry.Year))
					if err != nil {
						return err
					}
				}
				item, err := sess.RecordWatched(cmd.Context(), entry, text)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Recorded %s (%d) as watched (emotion: %s, sentiment: %s)\n",
					entry.Title, entry.Year, item.Emotion, item.Sentiment)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&review, "review", "r", "", "Review text; prompted for when omitted")
	cmd.Flags().IntVar(&pick, "pick", 0, "1-based choice when the title is ambiguous")
	return cmd
}
