package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"anchor-sim/internal/model"
	"anchor-sim/internal/pricemodel"
	"anchor-sim/internal/simulation"

	tea "github.com/charmbracelet/bubbletea"
)

func press(m *Model, r string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)})
}

func newModel(t *testing.T) (*Model, *simulation.Session) {
	t.Helper()
	s, err := simulation.New(model.DefaultConfig(),
		simulation.WithPriceModel(&pricemodel.Replay{Prices: []float64{90, 110}}),
		simulation.WithTickerFactory((&simulation.ManualTickers{}).New),
	)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(s.Close)
	m := NewModel(s, t.TempDir())
	m.now = func() time.Time { return time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC) }
	return m, s
}

func TestKeysDriveSession(t *testing.T) {
	m, s := newModel(t)

	press(m, "+")
	if got := s.Snapshot().Config.AnchorPrice; got != 101 {
		t.Fatalf("anchor = %v, want 101", got)
	}
	press(m, "-")

	press(m, "s")
	if m.snap.RunState != model.RunRunning {
		t.Fatalf("run state = %s", m.snap.RunState)
	}
	press(m, "+")
	if !strings.Contains(m.statusMsg, "reset") || s.Snapshot().Config.AnchorPrice != 100 {
		t.Fatalf("anchor changed while running: %q", m.statusMsg)
	}

	for i := 0; i < 2; i++ {
		if _, err := s.Step(); err != nil {
			t.Fatal(err)
		}
	}
	press(m, "e")
	if !strings.Contains(m.statusMsg, "✗") {
		t.Fatalf("export while running should fail, status %q", m.statusMsg)
	}

	press(m, "p")
	press(m, "e")
	path := filepath.Join(m.exportDir, "acme_balance_history_2026-01-02.csv")
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("export not written (%q): %v", m.statusMsg, err)
	}
	if !strings.HasPrefix(string(raw), "Time,Cash Balance,Change,Action,Asset Price\n") {
		t.Fatalf("csv = %q", raw)
	}

	press(m, "r")
	if m.snap.RunState != model.RunStopped || m.snap.State.TickCount != 0 {
		t.Fatalf("reset: %+v", m.snap.State)
	}
}

func TestQuit(t *testing.T) {
	m, _ := newModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestViewRenders(t *testing.T) {
	m, _ := newModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	v := m.View()
	for _, want := range []string{"ACME", "STOPPED", "INITIAL"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSparkline(t *testing.T) {
	pts := []model.PricePoint{{Time: 0, Price: 90}, {Time: 1, Price: 100}, {Time: 2, Price: 110}}
	if got := Sparkline(nil, 100, 10); got != "" {
		t.Fatalf("empty sparkline = %q", got)
	}
	if got, want := Sparkline(pts, 100, 2), Sparkline(pts[1:], 100, 10); got != want {
		t.Fatalf("sparkline should keep only the last 2 points: %q != %q", got, want)
	}
	if sparkIndex(5, 5, 5) != 3 {
		t.Errorf("flat series index = %d", sparkIndex(5, 5, 5))
	}
	if sparkIndex(90, 90, 110) != 0 || sparkIndex(110, 90, 110) != 7 {
		t.Error("extremes should map to the lowest and highest block")
	}
}
