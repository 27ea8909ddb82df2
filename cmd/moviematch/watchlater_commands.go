package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"moviematch/internal/session"
)

func newWatchLaterCommand(ctx *commandContext) *cobra.Command {
	watchLaterCmd := &cobra.Command{
		Use:     "watchlater",
		Aliases: []string{"later"},
		Short:   "Manage the watch-later list",
	}

	watchLaterCmd.AddCommand(newWatchLaterListCommand(ctx))
	watchLaterCmd.AddCommand(newWatchLaterAddCommand(ctx))
	watchLaterCmd.AddCommand(newWatchLaterRemoveCommand(ctx))

	return watchLaterCmd
}

func newWatchLaterListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show queued entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(func(sess *session.Session) error {
				items, err := sess.WatchLater(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(items) == 0 {
					fmt.Fprintln(out, "The watch-later list is empty")
					return nil
				}
				fmt.Fprintln(out, renderWatchLaterTable(items, sess.Index()))
				return nil
			})
		},
	}
}

func newWatchLaterAddCommand(ctx *commandContext) *cobra.Command {
	var pick int

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Queue a title to watch later",
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
				watched, err := sess.Store().IsWatched(cmd.Context(), entry.ID)
				if err != nil {
					return err
				}
				if watched {
					fmt.Fprintf(out, "%s (%d) is already on the watched list\n", entry.Title, entry.Year)
					return nil
				}
				if err := sess.QueueWatchLater(cmd.Context(), entry); err != nil {
					return err
				}
				fmt.Fprintf(out, "Queued %s (%d)\n", entry.Title, entry.Year)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&pick, "pick", 0, "1-based choice when the title is ambiguous")
	return cmd
}

func newWatchLaterRemoveCommand(ctx *commandContext) *cobra.Command {
	var pick int
	var watched bool
	var review string

	cmd := &cobra.Command{
		Use:   "remove <title>",
		Short: "Drop a queued title, optionally recording it as watched",
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

				if !watched {
					queued, err := sess.Store().IsWatchLater(cmd.Context(), entry.ID)
					if err != nil {
						return err
					}
					if !queued {
						fmt.Fprintf(out, "%s (%d) is not on the watch-later list\n", entry.Title, entry.Year)
						return nil
					}
					watched, err = confirm(in, out, fmt.Sprintf("Did you watch %s (%d)?", entry.Title, entry.Year))
					if err != nil {
						return err
					}
				}

				if watched {
					text := strings.TrimSpace(review)
					if text == "" {
						text, err = promptLine(in, out, "Your thoughts on it")
						if err != nil {
							return err
						}
					}
					item, err := sess.PromoteWatched(cmd.Context(), entry.ID, text)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "Moved %s (%d) to watched (emotion: %s, sentiment: %s)\n",
						entry.Title, entry.Year, item.Emotion, item.Sentiment)
					return nil
				}

				removed, err := sess.RemoveWatchLater(cmd.Context(), entry.ID)
				if err != nil {
					return err
				}
				if !removed {
					fmt.Fprintf(out, "%s (%d) is not on the watch-later list\n", entry.Title, entry.Year)
					return nil
				}
				fmt.Fprintf(out, "Removed %s (%d) from the watch-later list\n", entry.Title, entry.Year)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&pick, "pick", 0, "1-based choice when the title is ambiguous")
	cmd.Flags().BoolVar(&watched, "watched", false, "Record the entry as watched instead of discarding it")
	cmd.Flags().StringVarP(&review, "review", "r", "", "Review text when recording as watched")
	return cmd
}
