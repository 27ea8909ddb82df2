package main

import (
	"github.com/spf13/cobra"

	"moviematch/internal/session"
)

func newRootCommand() *cobra.Command {
	return newRootCommandWithOptions()
}

// newRootCommandWithOptions accepts session options so tests can stand in
// for the network-facing collaborators.
func newRootCommandWithOptions(sessionOpts ...session.Option) *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)
	ctx.sessionOpts = sessionOpts

	rootCmd := &cobra.Command{
		Use:           "moviematch",
		Short:         "Personal movie recommendations from your watch history",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newSearchCommand(ctx))
	rootCmd.AddCommand(newRecommendCommand(ctx))
	rootCmd.AddCommand(newProfileCommand(ctx))
	rootCmd.AddCommand(newPreferencesCommand(ctx))
	rootCmd.AddCommand(newWatchedCommand(ctx))
	rootCmd.AddCommand(newWatchLaterCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
