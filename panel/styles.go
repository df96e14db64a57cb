package panel

import "github.com/charmbracelet/lipgloss"

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
)

// Styles controls how the panel renders.
type Styles struct {
	Handle       lipgloss.Style
	HandleActive lipgloss.Style
	Grip         string
	Body         lipgloss.Style
}

// DefaultStyles returns the built-in styles.
func DefaultStyles() Styles {
	return Styles{
		Handle: lipgloss.NewStyle().
			Background(subtle).
			Foreground(lipgloss.AdaptiveColor{Light: "#969B86", Dark: "#696969"}).
			Align(lipgloss.Center),
		HandleActive: lipgloss.NewStyle().
			Background(highlight).
			Foreground(lipgloss.AdaptiveColor{Light: "#FFF", Dark: "#FFF"}).
			Align(lipgloss.Center),
		Grip: "━━━━━━",
		Body: lipgloss.NewStyle(),
	}
}
