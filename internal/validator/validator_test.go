package validator

import (
	"strings"
	"testing"

	"github.com/brassdeck/brassdeck/internal/card"
	"github.com/brassdeck/brassdeck/internal/catalog"
)

func TestValidateDefaultCatalog(t *testing.T) {
	results := NewValidator(catalog.MustDefault()).Validate()

	if len(results.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", results.Errors)
	}
	if len(results.Warnings) != 1 || !strings.Contains(results.Warnings[0], "birmingham") {
		t.Fatalf("expected a single warning about birmingham, got %v", results.Warnings)
	}
}

func TestValidateReportsBrokenDecks(t *testing.T) {
	c, err := catalog.New(
		catalog.Deck{
			Key:       "broken",
			ImagePath: "/broken",
			Cards: []card.Card{
				{ID: 1, Type: card.TypeLarge, Group: card.GroupA},
				{ID: 1, Type: card.TypeSmall, Group: card.GroupB},
				{ID: 0, Type: card.TypeUnknown, Group: card.GroupUnknown},
			},
		},
		catalog.Deck{Key: "pathless", Name: "Pathless"},
	)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}

	results := NewValidator(c).Validate()

	wantErrors := []string{
		"deck broken: name is required",
		"deck broken: card #2 has non-positive id 0",
		"deck broken: card 0 has invalid type Type(0)",
		"deck broken: card 0 has invalid group Group(0)",
		"deck broken: card id 1 appears 2 times",
		"deck pathless: image_path is required",
	}
	if len(results.Errors) != len(wantErrors) {
		t.Fatalf("got errors %q, want %q", results.Errors, wantErrors)
	}
	for i, want := range wantErrors {
		if results.Errors[i] != want {
			t.Errorf("error %d = %q, want %q", i, results.Errors[i], want)
		}
	}

	wantWarnings := []string{
		`deck broken: image_path "/broken" does not end with /`,
		"deck pathless: no cards defined",
	}
	if len(results.Warnings) != len(wantWarnings) {
		t.Fatalf("got warnings %q, want %q", results.Warnings, wantWarnings)
	}
	for i, want := range wantWarnings {
		if results.Warnings[i] != want {
			t.Errorf("warning %d = %q, want %q", i, results.Warnings[i], want)
		}
	}
}
