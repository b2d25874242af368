package validator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/brassdeck/brassdeck/internal/catalog"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	Catalog *catalog.Catalog
	Results ValidationResults
}

func NewValidator(c *catalog.Catalog) *Validator {
	return &Validator{
		Catalog: c,
		Results: ValidationResults{},
	}
}

func (v *Validator) Validate() ValidationResults {
	for _, d := range v.Catalog.Decks() {
		v.validateDeckFields(d)
		v.validateCards(d)
		v.validateCardIDs(d)
	}
	return v.Results
}

// validateDeckFields checks the descriptor fields of a deck
func (v *Validator) validateDeckFields(d catalog.Deck) {
	if d.Name == "" {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("deck %s: name is required", d.Key))
	}

	if d.ImagePath == "" {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("deck %s: image_path is required", d.Key))
	} else if !strings.HasSuffix(d.ImagePath, "/") {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("deck %s: image_path %q does not end with /", d.Key, d.ImagePath))
	}

	if len(d.Cards) == 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("deck %s: no cards defined", d.Key))
	}
}

// validateCards checks every card holds a value from the closed type and group sets
func (v *Validator) validateCards(d catalog.Deck) {
	for i, c := range d.Cards {
		if c.ID <= 0 {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("deck %s: card #%d has non-positive id %d", d.Key, i, c.ID))
		}
		if !c.Type.Valid() {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("deck %s: card %d has invalid type %s", d.Key, c.ID, c.Type))
		}
		if !c.Group.Valid() {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("deck %s: card %d has invalid group %s", d.Key, c.ID, c.Group))
		}
	}
}

// validateCardIDs checks card ids are unique within the deck
func (v *Validator) validateCardIDs(d catalog.Deck) {
	seen := make(map[int]int, len(d.Cards))
	for _, c := range d.Cards {
		seen[c.ID]++
	}

	duplicates := []int{}
	for id, n := range seen {
		if n > 1 {
			duplicates = append(duplicates, id)
		}
	}
	sort.Ints(duplicates)

	for _, id := range duplicates {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("deck %s: card id %d appears %d times", d.Key, id, seen[id]))
	}
}
