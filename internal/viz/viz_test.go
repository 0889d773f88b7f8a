package viz

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Clayten/blackholes/internal/blackhole"
	"github.com/Clayten/blackholes/internal/units"
)

func newHole(t *testing.T, kg float64) *blackhole.BlackHole {
	t.Helper()
	b, err := blackhole.NewWithMass(units.MustNew(kg, "kg"))
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func press(m *Explorer, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func TestExplorer_ScaleMass(t *testing.T) {
	b := newHole(t, 1e12)
	m := NewExplorer(b)

	press(m, "+")
	if math.Abs(b.Mass().SI()-1e13) > 1e13*1e-12 {
		t.Errorf("expected 1e13 kg, got %g", b.Mass().SI())
	}
	press(m, "-", "-")
	if math.Abs(b.Mass().SI()-1e11) > 1e11*1e-12 {
		t.Errorf("expected 1e11 kg, got %g", b.Mass().SI())
	}
}

func TestExplorer_Edit(t *testing.T) {
	b := newHole(t, 1e12)
	m := NewExplorer(b)

	// move to radius and type a new value in metres
	press(m, "down", "enter")
	for i := 0; i < 12; i++ {
		press(m, "backspace")
	}
	press(m, "1", "e", "-", "3", "enter")

	if math.Abs(b.Radius().SI()-1e-3) > 1e-12 {
		t.Errorf("expected radius 1e-3 m, got %v", b.Radius())
	}
	if m.failed {
		t.Errorf("unexpected failure: %s", m.status)
	}
}

func TestExplorer_CycleUnit(t *testing.T) {
	b := newHole(t, 1e12)
	m := NewExplorer(b)

	press(m, "down", "u")
	if got := b.DisplayUnit(blackhole.FieldRadius); got != "km" {
		t.Errorf("expected km, got %q", got)
	}

	for i := 0; i < 6; i++ {
		press(m, "down")
	}
	press(m, "u")
	if !strings.Contains(m.status, "no unit") {
		t.Errorf("expected entropy to have no unit, status %q", m.status)
	}
}

func TestExplorer_Age(t *testing.T) {
	b := newHole(t, 1e6)
	tau := b.Lifetime().SI()
	m := NewExplorer(b)

	press(m, "a")
	if math.Abs(b.Lifetime().SI()-0.9*tau) > tau*1e-9 {
		t.Errorf("expected lifetime %g, got %g", 0.9*tau, b.Lifetime().SI())
	}
	if m.failed || !strings.Contains(m.status, "radiated") {
		t.Errorf("unexpected status %q", m.status)
	}
}

func TestExplorer_Quit(t *testing.T) {
	m := NewExplorer(newHole(t, 1))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if m.View() != "" {
		t.Error("expected empty view after quit")
	}
}

func TestRenderObservables(t *testing.T) {
	b := newHole(t, 2e30)
	_ = b.SetDisplayUnit(blackhole.FieldRadius, "km")
	out := RenderObservables(b, ThemeHorizon, blackhole.FieldRadius)

	for _, f := range blackhole.Fields() {
		if !strings.Contains(out, f.String()) {
			t.Errorf("missing %s in table", f)
		}
	}
	if !strings.Contains(out, "km") {
		t.Error("radius not rendered in km")
	}
}

func TestPlot(t *testing.T) {
	if Plot(nil, PlotOptions{}) != "" {
		t.Error("expected empty plot for no data")
	}
	out := Plot([]float64{1e6, 1e5, 1e4, 0}, PlotOptions{Caption: "mass", Log: true, Width: 20, Height: 5})
	if !strings.Contains(out, "mass") {
		t.Errorf("caption missing: %s", out)
	}
}

func TestLog10Series(t *testing.T) {
	got := log10Series([]float64{100, 10, 0})
	want := []float64{2, 1, 1}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("log10Series[%d] = %g, want %g", i, got[i], want[i])
		}
	}
	for _, v := range log10Series([]float64{0, -1}) {
		if v != 0 {
			t.Errorf("expected zeros for non-positive series, got %v", v)
		}
	}
}

func TestThemeByName(t *testing.T) {
	if ThemeByName("minimal").Name != "minimal" {
		t.Error("expected minimal theme")
	}
	if ThemeByName("nope").Name != ThemeHorizon.Name {
		t.Error("expected fallback to horizon")
	}
}
