package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7C3AED") // Purple
	AccentColor  = lipgloss.Color("#F59E0B") // Amber

	BuyColor     = lipgloss.Color("#10B981") // Green
	SellColor    = lipgloss.Color("#EF4444") // Red
	NeutralColor = lipgloss.Color("#6B7280") // Gray

	BorderColor        = lipgloss.Color("#374151")
	TextColor          = lipgloss.Color("#F9FAFB")
	TextSecondaryColor = lipgloss.Color("#9CA3AF")
)

var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	LabelStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor).
			Width(14)

	ValueStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextSecondaryColor)

	BuyStyle     = lipgloss.NewStyle().Foreground(BuyColor)
	SellStyle    = lipgloss.NewStyle().Foreground(SellColor)
	NeutralStyle = lipgloss.NewStyle().Foreground(NeutralColor)

	StatusStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Padding(0, 1)
)

// RunStateStyle colors the run state badge.
func RunStateStyle(state string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	switch state {
	case "RUNNING":
		return base.Background(BuyColor).Foreground(TextColor)
	case "PAUSED":
		return base.Background(AccentColor).Foreground(TextColor)
	default:
		return base.Background(NeutralColor).Foreground(TextColor)
	}
}

// ActionStyle colors BUYING green and SELLING red.
func ActionStyle(action string) lipgloss.Style {
	switch action {
	case "BUYING":
		return BuyStyle
	case "SELLING":
		return SellStyle
	default:
		return NeutralStyle
	}
}
