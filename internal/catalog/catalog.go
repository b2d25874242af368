// Package catalog holds the read-only registry of card decks bundled with the
// application. The registry is built once and never mutated, so a *Catalog can
// be shared between goroutines without locking.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/brassdeck/brassdeck/internal/card"
)

//go:embed data/decks.toml
var decksTOML []byte

// ErrNotFound is matched by every *NotFoundError via errors.Is
var ErrNotFound = errors.New("not found")

// NotFoundError reports a deck key or card id missing from the catalog.
// CardMissing is false when the deck itself is missing.
type NotFoundError struct {
	Deck        string
	CardID      int
	CardMissing bool
}

func (e *NotFoundError) Error() string {
	if !e.CardMissing {
		return fmt.Sprintf("deck not found: %s", e.Deck)
	}
	return fmt.Sprintf("card not found: %d in deck %s", e.CardID, e.Deck)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Deck is one named collection of cards for a game title
type Deck struct {
	Key       string      `toml:"key"`
	Name      string      `toml:"name"`
	ImagePath string      `toml:"image_path"`
	Cards     []card.Card `toml:"cards"`
}

// ImageURLs returns the front and back image URLs of c under the deck's image path
func (d Deck) ImageURLs(c card.Card) (front, back string) {
	return d.ImagePath + c.FrontImage(), d.ImagePath + c.BackImage()
}

// Catalog maps deck keys to decks
type Catalog struct {
	keys  []string
	decks map[string]Deck
	index map[string]map[int]int // deck key -> card id -> position in Cards
}

// catalogFile mirrors the layout of decks.toml
type catalogFile struct {
	Decks []Deck `toml:"deck"`
}

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return Parse(decksTOML)
})

// Default returns the catalog bundled into the binary. The embedded data is
// decoded on first use; a decode failure means the binary was built from a
// broken decks.toml and is reported on every call.
func Default() (*Catalog, error) {
	return loadDefault()
}

// MustDefault is like Default but panics if the embedded data cannot be decoded
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes a catalog from TOML in the decks.toml layout
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	md, err := toml.Decode(string(data), &file)
	if err != nil {
		return nil, fmt.Errorf("error parsing catalog: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("error parsing catalog: unknown key %s", undecoded[0])
	}

	for i, d := range file.Decks {
		for _, c := range d.Cards {
			if !c.Type.Valid() {
				return nil, fmt.Errorf("deck %s: card %d has no type", deckLabel(d, i), c.ID)
			}
			if !c.Group.Valid() {
				return nil, fmt.Errorf("deck %s: card %d has no group", deckLabel(d, i), c.ID)
			}
		}
	}

	return New(file.Decks...)
}

func deckLabel(d Deck, i int) string {
	if d.Key != "" {
		return d.Key
	}
	return "#" + strconv.Itoa(i)
}

// New builds a catalog from decks, registered in argument order. Card slices
// are copied so later changes by the caller do not leak into the catalog.
func New(decks ...Deck) (*Catalog, error) {
	c := &Catalog{
		keys:  make([]string, 0, len(decks)),
		decks: make(map[string]Deck, len(decks)),
		index: make(map[string]map[int]int, len(decks)),
	}

	for i, d := range decks {
		if d.Key == "" {
			return nil, fmt.Errorf("deck #%d has no key", i)
		}
		if _, ok := c.decks[d.Key]; ok {
			return nil, fmt.Errorf("duplicate deck key: %s", d.Key)
		}

		d.Cards = cloneCards(d.Cards)
		ids := make(map[int]int, len(d.Cards))
		for pos, cd := range d.Cards {
			// First occurrence wins; duplicates are reported by the validator
			if _, ok := ids[cd.ID]; !ok {
				ids[cd.ID] = pos
			}
		}

		c.keys = append(c.keys, d.Key)
		c.decks[d.Key] = d
		c.index[d.Key] = ids
	}

	return c, nil
}

// Keys returns the registered deck keys in registration order
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// Deck returns the deck registered under key
func (c *Catalog) Deck(key string) (Deck, error) {
	d, ok := c.decks[key]
	if !ok {
		return Deck{}, &NotFoundError{Deck: key}
	}
	d.Cards = cloneCards(d.Cards)
	return d, nil
}

// Decks returns every deck in registration order
func (c *Catalog) Decks() []Deck {
	decks := make([]Deck, 0, len(c.keys))
	for _, key := range c.keys {
		d := c.decks[key]
		d.Cards = cloneCards(d.Cards)
		decks = append(decks, d)
	}
	return decks
}

// Card returns the card with the given id in the deck registered under deckKey
func (c *Catalog) Card(deckKey string, id int) (card.Card, error) {
	d, ok := c.decks[deckKey]
	if !ok {
		return card.Card{}, &NotFoundError{Deck: deckKey}
	}
	pos, ok := c.index[deckKey][id]
	if !ok {
		return card.Card{}, &NotFoundError{Deck: deckKey, CardID: id, CardMissing: true}
	}
	return d.Cards[pos], nil
}

// ImageURLs returns the front and back image URLs of a card, e.g.
// /Lancashire-cards/1a.png and /Lancashire-cards/1b.png. Nothing is fetched.
func (c *Catalog) ImageURLs(deckKey string, id int) (front, back string, err error) {
	cd, err := c.Card(deckKey, id)
	if err != nil {
		return "", "", err
	}
	front, back = c.decks[deckKey].ImageURLs(cd)
	return front, back, nil
}

func cloneCards(cards []card.Card) []card.Card {
	if cards == nil {
		return []card.Card{}
	}
	out := make([]card.Card, len(cards))
	copy(out, cards)
	return out
}
