// meta/meta.go
package meta

import "github.com/rs/zerolog"

// TITLE is printed once when a run starts.
const TITLE = "===== WAR - ADVENTURER LEVEL ====="

// MAX_NAME_LENGTH bounds a territory name, in runes.
const MAX_NAME_LENGTH = 29

// MAX_FACTION_LENGTH bounds a faction (army colour) label, in runes.
const MAX_FACTION_LENGTH = 9

// MAX_TERRITORIES caps the registry size a player may ask for.
const MAX_TERRITORIES = 10000

// DIE_SIDES defines the number of faces on the combat die.
const DIE_SIDES = 6

// LOG_LEVEL is the global zerolog level. Dice rolls are logged at debug.
const LOG_LEVEL = zerolog.InfoLevel
