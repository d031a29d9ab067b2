package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"anchor-sim/internal/analysis"
	"anchor-sim/internal/model"
	"anchor-sim/internal/simulation"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	refreshInterval = 100 * time.Millisecond
	anchorStep      = 1.0
	amountStep      = 0.5
	balanceRows     = 8
)

// Model is the terminal view of one session.
type Model struct {
	session   *simulation.Session
	exportDir string
	now       func() time.Time

	snap simulation.Snapshot
	help help.Model

	width     int
	height    int
	statusMsg string
}

func NewModel(s *simulation.Session, exportDir string) *Model {
	return &Model{
		session:   s,
		exportDir: exportDir,
		now:       time.Now,
		snap:      s.Snapshot(),
		help:      help.New(),
	}
}

// tickMsg is sent periodically to refresh the snapshot.
type tickMsg struct{}

func (m *Model) tickRefresh() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (m *Model) Init() tea.Cmd {
	return m.tickRefresh()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		m.handleKey(msg)
		m.snap = m.session.Snapshot()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tickMsg:
		m.snap = m.session.Snapshot()
		return m, m.tickRefresh()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, keys.Start):
		m.report(m.session.Start(), "started")
	case key.Matches(msg, keys.Pause):
		m.report(m.session.Pause(), "paused")
	case key.Matches(msg, keys.Reset):
		m.report(m.session.Reset(), "reset")
	case key.Matches(msg, keys.Export):
		path, err := m.export()
		m.report(err, "exported "+path)
	case key.Matches(msg, keys.AnchorUp):
		m.adjustAnchor(anchorStep)
	case key.Matches(msg, keys.AnchorDown):
		m.adjustAnchor(-anchorStep)
	case key.Matches(msg, keys.AmountUp):
		m.adjustAmount(amountStep)
	case key.Matches(msg, keys.AmountDown):
		m.adjustAmount(-amountStep)
	}
}

func (m *Model) adjustAnchor(delta float64) {
	p := m.session.Snapshot().Config.AnchorPrice + delta
	m.report(m.session.SetAnchorPrice(p), fmt.Sprintf("anchor $%.2f", p))
}

func (m *Model) adjustAmount(delta float64) {
	a := m.session.Snapshot().Config.MicroTradeAmount + delta
	m.report(m.session.SetMicroTradeAmount(a), fmt.Sprintf("trade amount $%.2f", a))
}

func (m *Model) report(err error, ok string) {
	switch {
	case err == nil:
		m.statusMsg = "✓ " + ok
	case errors.Is(err, simulation.ErrConfigLocked):
		m.statusMsg = "✗ reset to change settings"
	case errors.Is(err, simulation.ErrExportUnavailable):
		m.statusMsg = "✗ pause or stop after at least one trade to export"
	default:
		m.statusMsg = "✗ " + err.Error()
	}
}

func (m *Model) export() (string, error) {
	name := simulation.ExportFilename(m.session.Snapshot().Config.AssetName, m.now())
	path := filepath.Join(m.exportDir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := m.session.ExportCSV(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}
	return path, f.Close()
}

func (m *Model) View() string {
	s := m.snap
	sum := analysis.Summarize(s)

	title := lipgloss.JoinHorizontal(lipgloss.Center,
		TitleStyle.Render(s.Config.AssetName+" anchor trader"),
		" ",
		RunStateStyle(string(s.RunState)).Render(string(s.RunState)),
	)

	zone := BuyStyle.Render("BUY")
	if s.Zone == model.ZoneSell {
		zone = SellStyle.Render("SELL")
	}
	stats := strings.Join([]string{
		row("Price", fmt.Sprintf("$%.2f", s.State.CurrentPrice)),
		row("Anchor", fmt.Sprintf("$%.2f", s.Config.AnchorPrice)),
		row("Zone", zone),
		row("Status", ActionStyle(string(s.State.TradeStatus)).Render(string(s.State.TradeStatus))),
		row("Trade amount", fmt.Sprintf("$%.2f every %ds", s.Config.MicroTradeAmount, s.Config.IntervalSeconds())),
		row("Cash", fmt.Sprintf("$%.2f", s.State.CashBalance)),
		row("Shares", fmt.Sprintf("%.6f", s.State.SharesHeld)),
		row("Total value", fmt.Sprintf("$%.2f", s.TotalValue)),
		row("P&L", pnl(sum.PNL)),
		row("Ticks", fmt.Sprintf("%d (%d buys, %d sells)", s.State.TickCount, sum.Buys, sum.Sells)),
	}, "\n")

	chartWidth := 50
	if m.width > 0 {
		chartWidth = max(10, min(len(s.Prices), m.width-8))
	}
	chart := lipgloss.JoinVertical(lipgloss.Left,
		HeaderStyle.Render(fmt.Sprintf("Price (%s model, last %d)", s.Model, len(s.Prices))),
		Sparkline(s.Prices, s.Config.AnchorPrice, chartWidth),
		NeutralStyle.Render(fmt.Sprintf("min %.2f  mean %.2f  max %.2f", sum.Prices.Min, sum.Prices.Mean, sum.Prices.Max)),
	)

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		PanelStyle.Render(stats),
		PanelStyle.Render(chart),
		PanelStyle.Render(m.balanceTable()),
	)

	footer := m.help.View(keys)
	if m.statusMsg != "" {
		footer += "\n" + StatusStyle.Render(m.statusMsg)
	}
	return body + "\n" + footer
}

func (m *Model) balanceTable() string {
	events := m.snap.Balances
	if len(events) > balanceRows {
		events = events[len(events)-balanceRows:]
	}
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("%6s %12s %9s %-8s %10s", "Time", "Cash", "Change", "Action", "Price")))
	for i := len(events) - 1; i >= 0; i-- {
		ev := events[i]
		price := "N/A"
		if ev.Price != nil {
			price = fmt.Sprintf("%.2f", *ev.Price)
		}
		line := fmt.Sprintf("%6d %12.2f %+9.2f %-8s %10s", ev.Time, ev.Balance, ev.Change, ev.Action, price)
		b.WriteString("\n")
		b.WriteString(ActionStyle(string(ev.Action)).Render(line))
	}
	return b.String()
}

func row(label, value string) string {
	return LabelStyle.Render(label) + ValueStyle.Render(value)
}

func pnl(v float64) string {
	s := fmt.Sprintf("%+.2f", v)
	switch {
	case v > 0:
		return BuyStyle.Render(s)
	case v < 0:
		return SellStyle.Render(s)
	default:
		return NeutralStyle.Render(s)
	}
}
