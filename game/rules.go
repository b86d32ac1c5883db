package game

// Rules decides how a single exchange of dice is scored.
type Rules interface {
	DieSides() int
	// DetermineAttackOutcome reports whether the attacker takes the exchange.
	DetermineAttackOutcome(attackerRoll, defenderRoll int) bool
}
