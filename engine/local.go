package engine

import (
	"errors"
	"fmt"
	"io"
	"war/console"
	"war/display"
	"war/game"
	"war/meta"

	"github.com/rs/zerolog/log"
)

// Engine drives one session: register the territories, show them, resolve a single attack, show them again.
type Engine struct {
	Dice  game.Dice
	Rules game.Rules

	input   *console.Prompter
	printer *display.Printer
}

func NewLocalEngine(in io.Reader, out io.Writer, dice game.Dice, rules game.Rules) *Engine {
	return &Engine{
		Dice:    dice,
		Rules:   rules,
		input:   console.NewPrompter(in, out),
		printer: display.NewPrinter(out),
	}
}

// Run plays the whole session and returns the final registry.
// Rejected attacks are reported to the player and are not errors; an unusable
// registry size or missing input is.
func (e *Engine) Run() (*game.Registry, error) {
	e.printer.Title(meta.TITLE)

	count, err := e.input.Int("Enter how many territories to register: ", nil)
	if err != nil {
		return nil, err
	}
	registry, err := game.NewRegistry(count)
	if err != nil {
		e.printer.Error("Could not create the territory registry!")
		return nil, err
	}

	log.Info().Msgf("registering %d territories", count)
	if err := e.populate(registry); err != nil {
		return nil, err
	}

	e.printer.Title("===== REGISTERED TERRITORIES =====")
	e.printer.Registry(registry.Territories())

	e.printer.Title("===== ATTACK SIMULATION =====")
	attackerID, defenderID, err := e.chooseBattle(registry.Len())
	if err != nil {
		return nil, err
	}

	outcome, err := registry.Attack(attackerID, defenderID, e.Dice, e.Rules)
	switch {
	case errors.Is(err, game.ErrInvalidID):
		log.Warn().Err(err).Msg("attack skipped")
		e.printer.Error("Invalid IDs! Attack cancelled.")
	case errors.Is(err, game.ErrSameFaction):
		log.Warn().Err(err).Msg("attack skipped")
		e.printer.Error("ERROR: You cannot attack a territory of your own colour!")
	case err != nil:
		return nil, err
	default:
		log.Debug().Msgf("attacker rolled %d, defender rolled %d", outcome.AttackerRoll, outcome.DefenderRoll)
		log.Info().Msgf("territory %d attacked territory %d, attacker won: %t", attackerID, defenderID, outcome.AttackerWon)
		e.printer.Outcome(outcome)
	}

	e.printer.Title("===== TERRITORIES AFTER THE ATTACK =====")
	e.printer.Registry(registry.Territories())

	log.Info().Msg("session complete")
	return registry, nil
}

// populate asks for every territory in ID order.
func (e *Engine) populate(registry *game.Registry) error {
	for id := 0; id < registry.Len(); id++ {
		e.printer.Line(fmt.Sprintf("\n--- Registering territory %d ---", id))

		name, err := e.input.Word("Name: ", game.ValidateName)
		if err != nil {
			return err
		}
		faction, err := e.input.Word("Army colour: ", game.ValidateFaction)
		if err != nil {
			return err
		}
		troops, err := e.input.Int("Troop count: ", nonNegative)
		if err != nil {
			return err
		}

		territory, err := game.NewTerritory(name, faction, troops)
		if err != nil {
			return err
		}
		if err := registry.Set(id, territory); err != nil {
			return err
		}
	}
	return nil
}

// chooseBattle reads the attacker and defender IDs. Range checks happen in Registry.Attack.
func (e *Engine) chooseBattle(count int) (attackerID, defenderID int, err error) {
	attackerID, err = e.input.Int(fmt.Sprintf("Choose the ATTACKING territory ID (0 to %d): ", count-1), nil)
	if err != nil {
		return 0, 0, err
	}
	defenderID, err = e.input.Int(fmt.Sprintf("Choose the DEFENDING territory ID (0 to %d): ", count-1), nil)
	if err != nil {
		return 0, 0, err
	}
	return attackerID, defenderID, nil
}

func nonNegative(troops int) error {
	if troops < 0 {
		return game.ErrNegativeTroops
	}
	return nil
}
