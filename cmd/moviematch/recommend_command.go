package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"moviematch/internal/services"
	"moviematch/internal/session"
)

func newRecommendCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "recommend",
		Short: "Recommend movies and queue them to watch later",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(func(sess *session.Session) error {
				out := cmd.OutOrStdout()
				recs, err := sess.Recommend(cmd.Context())
				if errors.Is(err, services.ErrInsufficientData) {
					fmt.Fprintln(out, "No watched entries yet; add some with `moviematch watched add`")
					return nil
				}
				if err != nil {
					return err
				}
				if len(recs) == 0 {
					fmt.Fprintln(out, "Nothing new to recommend; try renewing your preferences")
					return nil
				}
				fmt.Fprintln(out, renderRecommendationTable(recs))
				fmt.Fprintf(out, "Queued %d title(s) on the watch-later list\n", len(recs))
				return nil
			})
		},
	}
}
