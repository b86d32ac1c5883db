package engine

import (
	"bytes"
	"strings"
	"testing"
	"war/console"
	"war/game"

	"github.com/stretchr/testify/require"
)

// fixedDice returns the given die faces in order, attacker first.
type fixedDice struct {
	faces []int
	calls int
}

func (d *fixedDice) Intn(n int) int {
	face := d.faces[d.calls]
	d.calls++
	return face - 1
}

func run(t *testing.T, input string, faces ...int) (*game.Registry, string, *fixedDice, error) {
	t.Helper()
	var out bytes.Buffer
	dice := &fixedDice{faces: faces}
	e := NewLocalEngine(strings.NewReader(input), &out, dice, game.NewStandardRules())
	registry, err := e.Run()
	return registry, out.String(), dice, err
}

const twoTerritories = "2\nAlpha Red 10\nBeta Blue 10\n"

func TestLocalEngineRun(t *testing.T) {
	t.Run("attacker wins", func(t *testing.T) {
		registry, out, _, err := run(t, twoTerritories+"0 1\n", 6, 1)

		require.NoError(t, err)
		require.Equal(t, []game.Territory{
			{Name: "Alpha", Faction: "Red", Troops: 10},
			{Name: "Beta", Faction: "Red", Troops: 5},
		}, registry.Territories(), "Beta should fall to Red with half its troops")
		require.Contains(t, out, "Attacker die (Alpha): 6")
		require.Contains(t, out, "Defender die (Beta): 1")
		require.Contains(t, out, "Beta now belongs to the Red army")
	})

	t.Run("defender wins", func(t *testing.T) {
		registry, out, _, err := run(t, twoTerritories+"0 1\n", 1, 6)

		require.NoError(t, err)
		require.Equal(t, []game.Territory{
			{Name: "Alpha", Faction: "Red", Troops: 9},
			{Name: "Beta", Faction: "Blue", Troops: 10},
		}, registry.Territories(), "Alpha should lose one troop")
		require.Contains(t, out, "Alpha lost 1 troop.")
	})

	t.Run("invalid ids skip combat", func(t *testing.T) {
		for _, ids := range []string{"0 2", "2 0", "-1 1", "1 -1"} {
			registry, out, dice, err := run(t, twoTerritories+ids+"\n", 6, 1)

			require.NoError(t, err, "Invalid ids are not fatal")
			require.Equal(t, []game.Territory{
				{Name: "Alpha", Faction: "Red", Troops: 10},
				{Name: "Beta", Faction: "Blue", Troops: 10},
			}, registry.Territories(), "Registry should be unchanged for ids %s", ids)
			require.Contains(t, out, "Invalid IDs! Attack cancelled.")
			require.NotContains(t, out, "ATTACK STARTED", "No combat should be narrated")
			require.Equal(t, 0, dice.calls, "No dice should be rolled")
		}
	})

	t.Run("same colour skips combat", func(t *testing.T) {
		registry, out, dice, err := run(t, "2\nAlpha Blue 10\nBeta Blue 10\n0 1\n", 6, 1)

		require.NoError(t, err)
		require.Equal(t, []game.Territory{
			{Name: "Alpha", Faction: "Blue", Troops: 10},
			{Name: "Beta", Faction: "Blue", Troops: 10},
		}, registry.Territories(), "Registry should be unchanged")
		require.Contains(t, out, "You cannot attack a territory of your own colour!")
		require.Equal(t, 0, dice.calls, "No dice should be rolled")
	})

	t.Run("registry is shown before and after the attack", func(t *testing.T) {
		_, out, _, err := run(t, twoTerritories+"0 1\n", 6, 1)

		require.NoError(t, err)
		before := strings.Index(out, "REGISTERED TERRITORIES")
		attack := strings.Index(out, "ATTACK STARTED")
		after := strings.Index(out, "TERRITORIES AFTER THE ATTACK")
		require.True(t, before >= 0 && before < attack && attack < after, "Listing, narration, listing should appear in order")
		require.Equal(t, 3, strings.Count(out, "Alpha"), "Alpha should be in both tables and the narration")
		require.Contains(t, out, "(0 to 1)", "Id prompts should show the valid range")
	})

	t.Run("prompts three times per territory", func(t *testing.T) {
		_, out, _, err := run(t, "3\nA Red 1\nB Blue 2\nC Green 3\n0 1\n", 1, 1)

		require.NoError(t, err)
		require.Equal(t, 3, strings.Count(out, "Name: "))
		require.Equal(t, 3, strings.Count(out, "Army colour: "))
		require.Equal(t, 3, strings.Count(out, "Troop count: "))
		require.Contains(t, out, "--- Registering territory 2 ---")
	})

	t.Run("bad answers are asked again", func(t *testing.T) {
		input := "2\n" +
			"ThisTerritoryNameIsWayTooLongToFit Alpha VeryLongColour Red ten -4 10\n" +
			"Beta Blue 10\n" +
			"x 0 1\n"
		registry, out, _, err := run(t, input, 6, 1)

		require.NoError(t, err)
		require.Equal(t, []game.Territory{
			{Name: "Alpha", Faction: "Red", Troops: 10},
			{Name: "Beta", Faction: "Red", Troops: 5},
		}, registry.Territories())
		require.Equal(t, 3, strings.Count(out, "Name: "), "Long name should be asked again")
		require.Equal(t, 3, strings.Count(out, "Army colour: "), "Long colour should be asked again")
		require.Equal(t, 4, strings.Count(out, "Troop count: "), "Malformed and negative troops should be asked again")
	})
}

func TestLocalEngineRunErrors(t *testing.T) {
	t.Run("non-positive size is fatal", func(t *testing.T) {
		for _, size := range []string{"0", "-3"} {
			registry, out, _, err := run(t, size+"\n")

			require.ErrorIs(t, err, game.ErrInvalidSize, "Size %s should be rejected", size)
			require.Nil(t, registry)
			require.Contains(t, out, "Could not create the territory registry!")
		}
	})

	t.Run("oversized registry is fatal", func(t *testing.T) {
		var out string
		var err error
		require.NotPanics(t, func() { _, out, _, err = run(t, "9000000000000000000\n") })

		require.ErrorIs(t, err, game.ErrAllocation)
		require.Contains(t, out, "Could not create the territory registry!")
	})

	t.Run("input ending early is fatal", func(t *testing.T) {
		for _, input := range []string{"", "2\nAlpha Red 10\n", twoTerritories + "0\n"} {
			registry, _, _, err := run(t, input)

			require.ErrorIs(t, err, console.ErrNoInput, "Input %q should run out", input)
			require.Nil(t, registry)
		}
	})
}
