package main

import (
	"os"
	"time"
	"war/engine"
	"war/game"
	"war/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.SetGlobalLevel(meta.LOG_LEVEL)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	// Seeded once per process
	dice := game.NewDice(uint64(time.Now().UnixNano()))
	e := engine.NewLocalEngine(os.Stdin, os.Stdout, dice, game.NewStandardRules())

	if _, err := e.Run(); err != nil {
		log.Error().Err(err).Msg("session aborted")
		os.Exit(1)
	}
}
