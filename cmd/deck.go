package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/brassdeck/brassdeck/internal/card"
	"github.com/brassdeck/brassdeck/internal/catalog"
	"github.com/brassdeck/brassdeck/internal/config"
)

const defaultTerminalWidth = 80

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Inspect the decks in the card catalog",
	Long:  `Commands for listing and inspecting the decks in the card catalog.`,
}

// deckListCmd represents the deck list command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the decks in the card catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := catalog.Default()
		if err != nil {
			return err
		}

		defaultDeck, err := config.GetDefaultDeck()
		if err != nil {
			return fmt.Errorf("error getting default deck: %w", err)
		}

		out := cmd.OutOrStdout()
		for _, d := range c.Decks() {
			if d.Key == defaultDeck {
				fmt.Fprintf(out, "* %s (%s) %d cards [DEFAULT]\n", d.Key, d.Name, len(d.Cards))
			} else {
				fmt.Fprintf(out, "  %s (%s) %d cards\n", d.Key, d.Name, len(d.Cards))
			}
		}
		return nil
	},
}

// deckShowCmd represents the deck show command
var deckShowCmd = &cobra.Command{
	Use:   "show [deck_key]",
	Short: "Show a summary of a deck",
	Long: `Show prints a deck's display name, image path, card counts by type,
group and era, and the ids of all its cards.
If no deck is given, the default deck from your config is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckKey := ""
		if len(args) == 1 {
			deckKey = args[0]
		}

		d, err := resolveDeck(deckKey)
		if err != nil {
			return err
		}

		displayDeck(cmd.OutOrStdout(), d)
		return nil
	},
}

// deckSetDefaultCmd represents the deck set-default command
var deckSetDefaultCmd = &cobra.Command{
	Use:   "set-default [deck_key]",
	Short: "Set the default deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckKey := args[0]

		c, err := catalog.Default()
		if err != nil {
			return err
		}

		// Make sure the deck exists before persisting it
		if _, err := c.Deck(deckKey); err != nil {
			return err
		}

		if err := config.SetDefaultDeck(deckKey); err != nil {
			return fmt.Errorf("error setting default deck: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default deck set to: %s\n", deckKey)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckShowCmd)
	deckCmd.AddCommand(deckSetDefaultCmd)
}

// resolveDeck returns the deck for deckKey, falling back to the configured default
func resolveDeck(deckKey string) (catalog.Deck, error) {
	c, err := catalog.Default()
	if err != nil {
		return catalog.Deck{}, err
	}

	if deckKey == "" {
		deckKey, err = config.GetDefaultDeck()
		if err != nil {
			return catalog.Deck{}, fmt.Errorf("error getting default deck: %w", err)
		}
	}

	return c.Deck(deckKey)
}

// displayDeck prints the deck summary followed by a grid of card ids
func displayDeck(w io.Writer, d catalog.Deck) {
	titleColor := color.New(color.FgHiWhite, color.Bold)
	labelColor := color.New(color.FgCyan)

	titleColor.Fprintf(w, "%s (%s)\n", d.Name, d.Key)
	labelColor.Fprint(w, "Images: ")
	fmt.Fprintln(w, d.ImagePath)

	counts := d.Counts()
	labelColor.Fprint(w, "Cards:  ")
	fmt.Fprintln(w, counts.Total)

	if counts.Total == 0 {
		color.New(color.FgYellow).Fprintln(w, "This deck has no cards yet.")
		return
	}

	typeParts := make([]string, 0, len(card.Types))
	for _, t := range card.Types {
		typeParts = append(typeParts, fmt.Sprintf("%s %d", t, counts.ByType[t]))
	}
	labelColor.Fprint(w, "Types:  ")
	fmt.Fprintln(w, strings.Join(typeParts, ", "))

	groupParts := make([]string, 0, len(card.Groups))
	for _, g := range card.Groups {
		groupParts = append(groupParts, fmt.Sprintf("%s %d", g, counts.ByGroup[g]))
	}
	labelColor.Fprint(w, "Groups: ")
	fmt.Fprintln(w, strings.Join(groupParts, ", "))

	labelColor.Fprint(w, "Eras:   ")
	fmt.Fprintf(w, "rail %d, canal %d\n", counts.RailEra, counts.Total-counts.RailEra)

	fmt.Fprintln(w)
	printIDGrid(w, d.Cards, terminalWidth(w))
}

// printIDGrid lays card ids out in as many columns as fit in width
func printIDGrid(w io.Writer, cards []card.Card, width int) {
	cellWidth := 0
	for _, c := range cards {
		if n := len(strconv.Itoa(c.ID)); n > cellWidth {
			cellWidth = n
		}
	}
	cellWidth += 2

	columns := width / cellWidth
	if columns < 1 {
		columns = 1
	}

	railColor := color.New(color.FgRed)
	for i, c := range cards {
		cell := fmt.Sprintf("%*d", cellWidth, c.ID)
		if c.IsRailEra {
			railColor.Fprint(w, cell)
		} else {
			fmt.Fprint(w, cell)
		}
		if (i+1)%columns == 0 || i == len(cards)-1 {
			fmt.Fprintln(w)
		}
	}
}

// terminalWidth returns the width of w if it is a terminal
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultTerminalWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultTerminalWidth
	}
	return width
}
