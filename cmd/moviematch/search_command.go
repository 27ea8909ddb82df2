package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"moviematch/internal/catalog"
	"moviematch/internal/reviews"
	"moviematch/internal/session"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var pick int

	cmd := &cobra.Command{
		Use:   "search <title>",
		Short: "Find a catalog entry and show its representative review",
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
				fmt.Fprintln(out, renderEntryTable([]catalog.Entry{entry}, false))

				review, err := sess.Review(cmd.Context(), entry.ID)
				if err != nil {
					if !errors.Is(err, reviews.ErrNotFound) {
						fmt.Fprintf(out, "Fetching the representative review failed: %v\n", err)
						return nil
					}
					fmt.Fprintf(out, "No representative review available for %s (%d)\n", entry.Title, entry.Year)
					return nil
				}
				fmt.Fprintln(out, "Representative review:")
				fmt.Fprintln(out, review)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&pick, "pick", 0, "1-based choice when the title is ambiguous")
	return cmd
}
