package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"moviematch/internal/services"
	"moviematch/internal/session"
)

func newProfileCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the taste profile derived from the watched list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(func(sess *session.Session) error {
				out := cmd.OutOrStdout()
				prof, err := sess.Profile(cmd.Context())
				if errors.Is(err, services.ErrInsufficientData) {
					fmt.Fprintln(out, "No watched entries yet; add some with `moviematch watched add`")
					return nil
				}
				if err != nil {
					return err
				}

				for _, line := range renderSectionHeader("Taste profile", shouldColorize(out)) {
					fmt.Fprintln(out, line)
				}
				fmt.Fprintf(out, "Top genres:   %s\n", orNone(prof.TopGenres))
				fmt.Fprintf(out, "Top emotions: %s\n", orNone(prof.TopEmotions))
				fmt.Fprintf(out, "Era:          %s\n", prof.YearCategory)
				return nil
			})
		},
	}
}

func orNone(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	return strings.Join(values, ", ")
}
