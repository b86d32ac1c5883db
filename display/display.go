package display

import (
	"fmt"
	"io"
	"strconv"
	"war/game"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Printer renders game output on a writer. Colours are dropped when w is not a terminal.
type Printer struct {
	w io.Writer

	titleStyle    lipgloss.Style
	headerStyle   lipgloss.Style
	cellStyle     lipgloss.Style
	borderStyle   lipgloss.Style
	winStyle      lipgloss.Style
	lossStyle     lipgloss.Style
	errorStyle    lipgloss.Style
	emphasisStyle lipgloss.Style
}

func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w: w,

		titleStyle: r.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true),
		headerStyle: r.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Bold(true).
			Padding(0, 1),
		cellStyle: r.NewStyle().
			Padding(0, 1),
		borderStyle: r.NewStyle().
			Foreground(lipgloss.Color("#5F5F87")),
		winStyle: r.NewStyle().
			Foreground(lipgloss.Color("#5FD75F")).
			Bold(true),
		lossStyle: r.NewStyle().
			Foreground(lipgloss.Color("#D75F5F")).
			Bold(true),
		errorStyle: r.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F")),
		emphasisStyle: r.NewStyle().
			Bold(true),
	}
}

// Title prints a section heading surrounded by blank lines.
func (p *Printer) Title(text string) {
	fmt.Fprintf(p.w, "\n%s\n\n", p.titleStyle.Render(text))
}

// Line prints text followed by a newline.
func (p *Printer) Line(text string) {
	fmt.Fprintln(p.w, text)
}

// Error prints a user-facing error message.
func (p *Printer) Error(text string) {
	fmt.Fprintf(p.w, "\n%s\n", p.errorStyle.Render(text))
}

// Registry prints every territory as a table, in ID order.
func (p *Printer) Registry(territories []game.Territory) {
	rows := make([][]string, len(territories))
	for id, t := range territories {
		rows[id] = []string{
			strconv.Itoa(id),
			t.Name,
			t.Faction,
			strconv.Itoa(t.Troops),
		}
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.borderStyle).
		Headers("ID", "Territory", "Colour", "Troops").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return p.headerStyle
			}
			return p.cellStyle
		})

	fmt.Fprintln(p.w, tbl.Render())
}

// Outcome narrates a resolved attack: both dice, the winner, and what changed.
func (p *Printer) Outcome(o game.Outcome) {
	p.Title("===== ATTACK STARTED =====")
	fmt.Fprintf(p.w, "Attacker die (%s): %d\n", o.Attacker, o.AttackerRoll)
	fmt.Fprintf(p.w, "Defender die (%s): %d\n", o.Defender, o.DefenderRoll)
	fmt.Fprintln(p.w)

	if o.AttackerWon {
		fmt.Fprintln(p.w, p.winStyle.Render(">>> The attacker won the battle!"))
		fmt.Fprintf(p.w, "%s now belongs to the %s army and lost %s.\n",
			o.Defender, p.emphasisStyle.Render(o.Faction), troops(o.TroopsLost()))
		return
	}

	fmt.Fprintln(p.w, p.lossStyle.Render(">>> The defender held the line!"))
	fmt.Fprintf(p.w, "%s lost %s.\n", o.Attacker, troops(o.TroopsLost()))
}

func troops(n int) string {
	if n == 1 {
		return "1 troop"
	}
	return fmt.Sprintf("%d troops", n)
}
