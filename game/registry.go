package game

import (
	"errors"
	"fmt"
	"war/meta"
)

var (
	ErrInvalidSize = errors.New("registry size must be positive")
	ErrAllocation  = errors.New("cannot allocate territory registry")
	ErrInvalidID   = errors.New("territory id out of range")
	ErrSameFaction = errors.New("cannot attack a territory of the same colour")
)

// Registry is the fixed-length, index-addressed list of every territory in a run.
// IDs shown to the player are the slice indices.
type Registry struct {
	territories []Territory
}

// NewRegistry allocates count zero-valued slots, at most meta.MAX_TERRITORIES.
func NewRegistry(count int) (*Registry, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, count)
	}
	if count > meta.MAX_TERRITORIES {
		return nil, fmt.Errorf("%w: %d slots requested, at most %d allowed", ErrAllocation, count, meta.MAX_TERRITORIES)
	}
	return &Registry{
		territories: make([]Territory, count),
	}, nil
}

// Len returns the number of slots, fixed at creation.
func (r *Registry) Len() int {
	return len(r.territories)
}

// Valid reports whether id addresses a slot.
func (r *Registry) Valid(id int) bool {
	return id >= 0 && id < len(r.territories)
}

// At returns a pointer into the registry, so callers may mutate the slot.
func (r *Registry) At(id int) (*Territory, error) {
	if !r.Valid(id) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidID, id, len(r.territories))
	}
	return &r.territories[id], nil
}

// Set overwrites slot id.
func (r *Registry) Set(id int, t Territory) error {
	slot, err := r.At(id)
	if err != nil {
		return err
	}
	*slot = t
	return nil
}

// Territories returns a copy of every slot in ID order.
func (r *Registry) Territories() []Territory {
	out := make([]Territory, len(r.territories))
	copy(out, r.territories)
	return out
}

// Copy returns a deep copy of the Registry.
func (r *Registry) Copy() *Registry {
	return &Registry{
		territories: r.Territories(),
	}
}

// Attack validates an attack from attackerID on defenderID and resolves it.
// On error the registry is left untouched.
func (r *Registry) Attack(attackerID, defenderID int, dice Dice, rules Rules) (Outcome, error) {
	// Check both ids before touching either slot
	attacker, err := r.At(attackerID)
	if err != nil {
		return Outcome{}, fmt.Errorf("cannot attack: %w", err)
	}
	defender, err := r.At(defenderID)
	if err != nil {
		return Outcome{}, fmt.Errorf("cannot attack: %w", err)
	}
	if attacker.Allied(*defender) {
		return Outcome{}, fmt.Errorf("%w (%s)", ErrSameFaction, attacker.Faction)
	}

	return Attack(attacker, defender, dice, rules), nil
}
