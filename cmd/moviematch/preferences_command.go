package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"moviematch/internal/session"
)

func newPreferencesCommand(ctx *commandContext) *cobra.Command {
	preferencesCmd := &cobra.Command{
		Use:   "preferences",
		Short: "Rebuild the watched list that drives recommendations",
	}

	preferencesCmd.AddCommand(newPreferencesRenewCommand(ctx))

	return preferencesCmd
}

func newPreferencesRenewCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "renew",
		Short: "Replace the watched list with freshly entered titles and reviews",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			return ctx.withSession(func(sess *session.Session) error {
				fmt.Fprintln(out, "Enter the movies you have watched. Leave the title blank to finish.")

				var inputs []session.WatchedInput
				for {
					title, err := promptLine(in, out, "Title")
					if err != nil {
						return err
					}
					if title == "" {
						break
					}

					entry, err := resolveEntry(sess, in, out, title, 0)
					if err != nil {
						fmt.Fprintln(out, err)
						continue
					}

					review, err := promptLine(in, out, fmt.Sprintf("Your thoughts on %s (%d)", entry.Title, entry.Year))
					if err != nil {
						return err
					}
					inputs = append(inputs, session.WatchedInput{Entry: entry, Review: review})
				}

				if len(inputs) == 0 {
					fmt.Fprintln(out, "No titles entered; watched list left unchanged")
					return nil
				}

				if err := sess.RenewPreferences(cmd.Context(), inputs); err != nil {
					return err
				}
				fmt.Fprintf(out, "Watched list renewed with %d title(s)\n", len(inputs))
				return nil
			})
		},
	}
}
