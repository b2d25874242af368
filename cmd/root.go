package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "brassdeck",
	Short: "Browse the card decks bundled with brassdeck",
	Long: `Brassdeck is a command-line tool for browsing the card catalog of the
Lancashire and Birmingham board games: decks, card metadata, and the image URLs
the asset server publishes for each card.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
