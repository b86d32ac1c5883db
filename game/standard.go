package game

import "war/meta"

// StandardRules rolls one six-sided die per side.
type StandardRules struct {
	Sides int
}

// NewStandardRules returns rules using a meta.DIE_SIDES die.
func NewStandardRules() *StandardRules {
	return &StandardRules{
		Sides: meta.DIE_SIDES,
	}
}

func (sr *StandardRules) DieSides() int {
	return sr.Sides
}

func (sr *StandardRules) DetermineAttackOutcome(attackerRoll, defenderRoll int) bool {
	// Ties go to the defender
	return attackerRoll > defenderRoll
}
