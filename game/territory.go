package game

import (
	"errors"
	"fmt"
	"unicode/utf8"
	"war/meta"
)

var (
	ErrNameTooLong    = errors.New("territory name is too long")
	ErrFactionTooLong = errors.New("faction label is too long")
	ErrEmptyLabel     = errors.New("label must not be empty")
	ErrNegativeTroops = errors.New("troop count must not be negative")
)

// Territory is one ownable slot on the map.
type Territory struct {
	Name    string // Display label
	Faction string // Colour of the owning army
	Troops  int
}

// NewTerritory builds a territory, rejecting labels over the length limits and negative troops.
func NewTerritory(name, faction string, troops int) (Territory, error) {
	if err := ValidateName(name); err != nil {
		return Territory{}, err
	}
	if err := ValidateFaction(faction); err != nil {
		return Territory{}, err
	}
	if troops < 0 {
		return Territory{}, fmt.Errorf("%w: %d", ErrNegativeTroops, troops)
	}
	return Territory{Name: name, Faction: faction, Troops: troops}, nil
}

// ValidateName checks a territory name is non-empty and within meta.MAX_NAME_LENGTH runes.
func ValidateName(name string) error {
	return validateLabel(name, meta.MAX_NAME_LENGTH, ErrNameTooLong)
}

// ValidateFaction checks a colour label is non-empty and within meta.MAX_FACTION_LENGTH runes.
func ValidateFaction(faction string) error {
	return validateLabel(faction, meta.MAX_FACTION_LENGTH, ErrFactionTooLong)
}

func validateLabel(label string, max int, tooLong error) error {
	if label == "" {
		return ErrEmptyLabel
	}
	if n := utf8.RuneCountInString(label); n > max {
		return fmt.Errorf("%w: %d characters, at most %d allowed", tooLong, n, max)
	}
	return nil
}

// Allied reports whether both territories fly the same colour.
func (t Territory) Allied(other Territory) bool {
	return t.Faction == other.Faction
}
