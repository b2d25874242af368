package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/brassdeck/brassdeck/internal/card"
	"github.com/brassdeck/brassdeck/internal/catalog"
	"github.com/brassdeck/brassdeck/internal/config"
)

// cardCmd represents the card command group
var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Look up cards in a deck",
}

var cardShowCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display a card and its image URLs",
	Long: `Show displays the metadata of a card and the URLs of its front and back images.

You can specify a deck using the --deck flag. If no deck is specified, the
default deck from your config will be used. When asset_host is set in the
config, image URLs are prefixed with it.

Examples:
  brassdeck card show 1
  brassdeck card show --deck lancashire 42`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid card id: %s", args[0])
		}

		deckFlag, _ := cmd.Flags().GetString("deck")
		d, err := resolveDeck(deckFlag)
		if err != nil {
			return err
		}

		c, err := catalog.MustDefault().Card(d.Key, id)
		if err != nil {
			return err
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		front, back := d.ImageURLs(c)
		displayCard(cmd.OutOrStdout(), d, c, cfg.ImageURL(front), cfg.ImageURL(back))
		return nil
	},
}

var cardListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the cards in a deck",
	Long: `List prints the cards of a deck, optionally filtered by type, group and era.

Examples:
  brassdeck card ls
  brassdeck card ls --type large --group C
  brassdeck card ls --deck lancashire --era rail`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		deckFlag, _ := cmd.Flags().GetString("deck")
		d, err := resolveDeck(deckFlag)
		if err != nil {
			return err
		}

		filter, err := filterFromFlags(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		cards := d.Select(filter)
		if len(cards) == 0 {
			fmt.Fprintf(out, "No matching cards in deck %s.\n", d.Key)
			return nil
		}

		for _, c := range cards {
			fmt.Fprintf(out, "%3d  %-6s  %s  %s\n", c.ID, c.Type, c.Group, c.Era())
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(cardCmd)
	cardCmd.AddCommand(cardShowCmd)
	cardCmd.AddCommand(cardListCmd)

	cardShowCmd.Flags().StringP("deck", "d", "", "Deck key to look the card up in")

	cardListCmd.Flags().StringP("deck", "d", "", "Deck key to list")
	cardListCmd.Flags().StringP("type", "t", "", "Only list cards of this type (large, small, common)")
	cardListCmd.Flags().StringP("group", "g", "", "Only list cards of this group (A, B, C)")
	cardListCmd.Flags().StringP("era", "e", "", "Only list cards of this era (rail, canal)")
}

// filterFromFlags builds a catalog filter from the card ls flags
func filterFromFlags(cmd *cobra.Command) (catalog.Filter, error) {
	var filter catalog.Filter

	if typeFlag, _ := cmd.Flags().GetString("type"); typeFlag != "" {
		t, err := card.ParseType(typeFlag)
		if err != nil {
			return filter, err
		}
		filter.Type = &t
	}

	if groupFlag, _ := cmd.Flags().GetString("group"); groupFlag != "" {
		g, err := card.ParseGroup(groupFlag)
		if err != nil {
			return filter, err
		}
		filter.Group = &g
	}

	if eraFlag, _ := cmd.Flags().GetString("era"); eraFlag != "" {
		var rail bool
		switch eraFlag {
		case "rail":
			rail = true
		case "canal":
			rail = false
		default:
			return filter, fmt.Errorf("invalid era: %q (expected rail or canal)", eraFlag)
		}
		filter.IsRailEra = &rail
	}

	return filter, nil
}

// displayCard prints a card's metadata and image URLs
func displayCard(w io.Writer, d catalog.Deck, c card.Card, front, back string) {
	titleColor := color.New(color.FgHiWhite, color.Bold)
	labelColor := color.New(color.FgCyan)

	titleColor.Fprintf(w, "Card %d", c.ID)
	fmt.Fprintf(w, " - %s (%s)\n", d.Name, d.Key)

	labelColor.Fprint(w, "Type:  ")
	fmt.Fprintln(w, c.Type)
	labelColor.Fprint(w, "Group: ")
	fmt.Fprintln(w, c.Group)
	labelColor.Fprint(w, "Era:   ")
	if c.IsRailEra {
		color.New(color.FgRed).Fprintln(w, c.Era())
	} else {
		fmt.Fprintln(w, c.Era())
	}
	labelColor.Fprint(w, "Front: ")
	fmt.Fprintln(w, front)
	labelColor.Fprint(w, "Back:  ")
	fmt.Fprintln(w, back)
}
