package catalog

import "github.com/brassdeck/brassdeck/internal/card"

// Filter selects cards by metadata. Nil fields match every card.
type Filter struct {
	Type      *card.Type
	Group     *card.Group
	IsRailEra *bool
}

// Match reports whether c satisfies every set field of f
func (f Filter) Match(c card.Card) bool {
	if f.Type != nil && c.Type != *f.Type {
		return false
	}
	if f.Group != nil && c.Group != *f.Group {
		return false
	}
	if f.IsRailEra != nil && c.IsRailEra != *f.IsRailEra {
		return false
	}
	return true
}

// Select returns the deck's cards matching f, in deck order
func (d Deck) Select(f Filter) []card.Card {
	out := []card.Card{}
	for _, c := range d.Cards {
		if f.Match(c) {
			out = append(out, c)
		}
	}
	return out
}

// Counts tallies a deck's cards by type, group and era
type Counts struct {
	Total   int
	ByType  map[card.Type]int
	ByGroup map[card.Group]int
	RailEra int
}

// Counts returns the tallies for the deck's cards
func (d Deck) Counts() Counts {
	counts := Counts{
		Total:   len(d.Cards),
		ByType:  make(map[card.Type]int, len(card.Types)),
		ByGroup: make(map[card.Group]int, len(card.Groups)),
	}
	for _, c := range d.Cards {
		counts.ByType[c.Type]++
		counts.ByGroup[c.Group]++
		if c.IsRailEra {
			counts.RailEra++
		}
	}
	return counts
}
