package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/brassdeck/brassdeck/internal/catalog"
	"github.com/brassdeck/brassdeck/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the bundled card catalog",
	Long: `Validate checks the bundled card catalog: every card has a known type and
group, card ids are unique within a deck, and every deck has a name and image path.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := catalog.Default()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		results := validator.NewValidator(c).Validate()

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			color.New(color.FgGreen).Fprintf(out, "✅ Catalog with %d decks is valid.\n", len(c.Keys()))
		} else {
			color.New(color.FgRed).Fprintf(out, "❌ Catalog has %d validation errors:\n", len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}
