package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Clayten/blackholes/internal/blackhole"
	"github.com/Clayten/blackholes/internal/units"
)

const labelWidth = 12

// FormatValue prints a magnitude the way every table in the tool does.
func FormatValue(v float64) string {
	return fmt.Sprintf("%.4E", v)
}

// RenderObservables lists every field of b in its display unit. selected
// highlights one row; pass -1 for none.
func RenderObservables(b *blackhole.BlackHole, th Theme, selected blackhole.Field) string {
	st := th.Styles()
	var rows []string
	for _, f := range blackhole.Fields() {
		q, err := b.Get(f)
		if err != nil {
			continue
		}
		rows = append(rows, renderRow(st, f, q, f == selected))
	}
	return st.Panel.Render(strings.Join(rows, "\n"))
}

func renderRow(st Styles, f blackhole.Field, q units.Quantity, focused bool) string {
	marker := "  "
	label := st.Label
	if focused {
		marker = "▸ "
		label = st.Focus
	}
	unit := q.Unit()
	if unit == "" {
		unit = "k_B"
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		marker,
		label.Width(labelWidth).Render(f.String()),
		st.Value.Width(14).Align(lipgloss.Right).Render(FormatValue(q.Value())),
		" ",
		st.Unit.Render(unit),
	)
}

// RenderAging summarizes one AgeBy call.
func RenderAging(th Theme, elapsed, radiated units.Quantity, before, after blackhole.Snapshot) string {
	st := th.Styles()
	lines := []string{
		st.Title.Render("aged by " + elapsed.String()),
		st.Label.Width(labelWidth).Render("radiated") + st.Value.Render(FormatValue(radiated.Value())) + " " + st.Unit.Render(radiated.Unit()),
		st.Label.Width(labelWidth).Render("mass") + st.Value.Render(FormatValue(before.MassKg)+" → "+FormatValue(after.MassKg)) + " " + st.Unit.Render("kg"),
	}
	if after.MassKg == 0 {
		lines = append(lines, st.Error.Render("evaporated"))
	}
	return strings.Join(lines, "\n")
}
