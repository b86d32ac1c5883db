package game

// Outcome is the record of one resolved attack, enough to narrate it.
type Outcome struct {
	Attacker       string // Attacker name
	Defender       string // Defender name
	AttackerRoll   int
	DefenderRoll   int
	AttackerWon    bool
	Faction        string // Faction owning the defender after the attack
	AttackerBefore int
	AttackerTroops int
	DefenderBefore int
	DefenderTroops int
}

// TroopsLost returns how many troops the losing side gave up.
func (o Outcome) TroopsLost() int {
	if o.AttackerWon {
		return o.DefenderBefore - o.DefenderTroops
	}
	return o.AttackerBefore - o.AttackerTroops
}

// Attack resolves one exchange of dice between two distinct territories.
// Faction checks are the caller's job, see Registry.Attack.
func Attack(attacker, defender *Territory, dice Dice, rules Rules) Outcome {
	o := Outcome{
		Attacker:       attacker.Name,
		Defender:       defender.Name,
		AttackerBefore: attacker.Troops,
		DefenderBefore: defender.Troops,
	}

	o.AttackerRoll = Roll(dice, rules.DieSides())
	o.DefenderRoll = Roll(dice, rules.DieSides())

	if rules.DetermineAttackOutcome(o.AttackerRoll, o.DefenderRoll) {
		// Defender changes hands and loses half its troops
		o.AttackerWon = true
		defender.Faction = attacker.Faction
		defender.Troops /= 2
	} else if attacker.Troops > 0 {
		attacker.Troops--
	}

	o.Faction = defender.Faction
	o.AttackerTroops = attacker.Troops
	o.DefenderTroops = defender.Troops
	return o
}
