package card

import (
	"fmt"
	"strconv"
)

// Card represents one physical card definition
type Card struct {
	ID        int   `toml:"id"`       // Unique within a deck, drives image filenames
	Type      Type  `toml:"type"`     // large, small or common
	IsRailEra bool  `toml:"rail_era"` // Rail era card when true, canal era otherwise
	Group     Group `toml:"group"`    // A, B or C
}

// Image suffixes and extension shared with the asset server
const (
	FrontSuffix    = "a"
	BackSuffix     = "b"
	ImageExtension = "png"
)

// FrontImage returns the file name of the card's front image
func (c Card) FrontImage() string {
	return strconv.Itoa(c.ID) + FrontSuffix + "." + ImageExtension
}

// BackImage returns the file name of the card's back image
func (c Card) BackImage() string {
	return strconv.Itoa(c.ID) + BackSuffix + "." + ImageExtension
}

// Era returns the display name of the card's era
func (c Card) Era() string {
	if c.IsRailEra {
		return "rail"
	}
	return "canal"
}

// Type is the size class of a card
type Type int

const (
	TypeUnknown Type = iota
	TypeLarge
	TypeSmall
	TypeCommon
)

// Types lists every valid Type in declaration order
var Types = []Type{TypeLarge, TypeSmall, TypeCommon}

var typeNames = map[Type]string{
	TypeLarge:  "large",
	TypeSmall:  "small",
	TypeCommon: "common",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Valid reports whether t is one of the declared types
func (t Type) Valid() bool {
	_, ok := typeNames[t]
	return ok
}

// ParseType converts a type name such as "large" into a Type
func ParseType(s string) (Type, error) {
	for t, name := range typeNames {
		if name == s {
			return t, nil
		}
	}
	return TypeUnknown, fmt.Errorf("invalid card type: %q (expected large, small or common)", s)
}

func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid card type: %d", int(t))
	}
	return []byte(typeNames[t]), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Group is the sub-deck classification tag of a card
type Group int

const (
	GroupUnknown Group = iota
	GroupA
	GroupB
	GroupC
)

// Groups lists every valid Group in declaration order
var Groups = []Group{GroupA, GroupB, GroupC}

var groupNames = map[Group]string{
	GroupA: "A",
	GroupB: "B",
	GroupC: "C",
}

func (g Group) String() string {
	if name, ok := groupNames[g]; ok {
		return name
	}
	return fmt.Sprintf("Group(%d)", int(g))
}

// Valid reports whether g is one of the declared groups
func (g Group) Valid() bool {
	_, ok := groupNames[g]
	return ok
}

// ParseGroup converts a group name such as "A" into a Group
func ParseGroup(s string) (Group, error) {
	for g, name := range groupNames {
		if name == s {
			return g, nil
		}
	}
	return GroupUnknown, fmt.Errorf("invalid card group: %q (expected A, B or C)", s)
}

func (g Group) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("invalid card group: %d", int(g))
	}
	return []byte(groupNames[g]), nil
}

func (g *Group) UnmarshalText(text []byte) error {
	parsed, err := ParseGroup(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
