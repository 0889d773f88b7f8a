package viz

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Clayten/blackholes/internal/blackhole"
)

// unitChoices are the display units U cycles through per field.
var unitChoices = map[blackhole.Field][]string{
	blackhole.FieldMass:       {"kg", "t", "Msun"},
	blackhole.FieldRadius:     {"m", "km", "au", "fm"},
	blackhole.FieldArea:       {"m^2", "km^2"},
	blackhole.FieldGravity:    {"m/s^2", "gee"},
	blackhole.FieldEnergy:     {"J", "erg", "eV", "megaton"},
	blackhole.FieldLuminosity: {"W", "erg/s", "Lsun"},
	blackhole.FieldLifetime:   {"s", "yr", "Gyr"},
}

// Explorer is a Bubble Tea model around a single black hole.
type Explorer struct {
	hole     *blackhole.BlackHole
	fields   []blackhole.Field
	cursor   int
	theme    int
	editing  bool
	editBuf  string
	status   string
	failed   bool
	quitting bool
}

func NewExplorer(hole *blackhole.BlackHole) *Explorer {
	return &Explorer{hole: hole, fields: blackhole.Fields()}
}

// RunExplorer blocks until the user quits.
func RunExplorer(hole *blackhole.BlackHole) error {
	_, err := tea.NewProgram(NewExplorer(hole)).Run()
	return err
}

func (m *Explorer) Init() tea.Cmd { return nil }

func (m *Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.editing {
		return m.editKey(key)
	}

	switch key.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
	case "+", "=", "right", "l":
		m.scaleMass(10)
	case "-", "left", "h":
		m.scaleMass(0.1)
	case "enter", " ":
		q, _ := m.hole.Get(m.selected())
		m.editing, m.editBuf = true, strconv.FormatFloat(q.Value(), 'g', 6, 64)
	case "u":
		m.cycleUnit()
	case "a":
		m.age()
	case "t":
		m.theme = (m.theme + 1) % len(AllThemes)
		m.report(nil, "theme: "+AllThemes[m.theme].Name)
	}
	return m, nil
}

func (m *Explorer) editKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "enter":
		v, err := strconv.ParseFloat(m.editBuf, 64)
		if err == nil {
			err = m.hole.Set(m.selected(), blackhole.Raw(v))
		}
		m.editing, m.editBuf = false, ""
		m.report(err, fmt.Sprintf("%s set", m.selected()))
	case "esc":
		m.editing, m.editBuf = false, ""
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		for _, r := range key.Runes {
			if (r >= '0' && r <= '9') || strings.ContainsRune(".-+eE", r) {
				m.editBuf += string(r)
			}
		}
	}
	return m, nil
}

func (m *Explorer) selected() blackhole.Field { return m.fields[m.cursor] }

func (m *Explorer) scaleMass(f float64) {
	mass := m.hole.Mass()
	err := m.hole.SetMass(blackhole.Dimensioned(mass.Scale(f)))
	m.report(err, fmt.Sprintf("mass ×%g", f))
}

func (m *Explorer) cycleUnit() {
	f := m.selected()
	choices := unitChoices[f]
	if len(choices) == 0 {
		m.report(nil, f.String()+" has no unit")
		return
	}
	current := m.hole.DisplayUnit(f)
	next := choices[0]
	for i, u := range choices {
		if u == current {
			next = choices[(i+1)%len(choices)]
			break
		}
	}
	err := m.hole.SetDisplayUnit(f, next)
	m.report(err, f.String()+" in "+next)
}

func (m *Explorer) age() {
	before := m.hole.Snapshot()
	if before.MassKg == 0 {
		m.report(nil, "nothing left to evaporate")
		return
	}
	elapsed := m.hole.Lifetime().Scale(0.1)
	radiated, err := m.hole.AgeBy(elapsed)
	if err != nil {
		m.report(err, "")
		return
	}
	m.report(nil, fmt.Sprintf("aged %s, radiated %s", elapsed, radiated))
}

func (m *Explorer) report(err error, ok string) {
	if err != nil {
		m.status, m.failed = err.Error(), true
		return
	}
	m.status, m.failed = ok, false
}

func (m *Explorer) View() string {
	if m.quitting {
		return ""
	}
	th := AllThemes[m.theme]
	st := th.Styles()

	var b strings.Builder
	b.WriteString(st.Title.Render("◉ schwarzschild black hole"))
	b.WriteString("\n")
	b.WriteString(RenderObservables(m.hole, th, m.selected()))
	b.WriteString("\n")

	if m.editing {
		b.WriteString(st.Label.Render(m.selected().String()+" = ") + st.Value.Render(m.editBuf+"█") +
			" " + st.Unit.Render(m.hole.DisplayUnit(m.selected())))
		b.WriteString("\n")
	}
	if m.status != "" {
		if m.failed {
			b.WriteString(st.Error.Render(m.status))
		} else {
			b.WriteString(st.Ok.Render(m.status))
		}
		b.WriteString("\n")
	}
	b.WriteString(st.Hint.Render("↑↓ select · +/- mass ×10 · enter edit · u unit · a age · t theme · q quit"))
	return b.String()
}
