package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// MessageRenderer renders one-line command outcomes.
type MessageRenderer struct {
	theme *Theme
}

// NewMessageRenderer creates a renderer with the given theme.
func NewMessageRenderer(theme *Theme) *MessageRenderer {
	return &MessageRenderer{theme: theme}
}

// Success renders a check mark and msg.
func (r *MessageRenderer) Success(msg string) string {
	icon := lipgloss.NewStyle().Foreground(r.theme.Success).Render(IconCheck)
	return fmt.Sprintf("  %s %s", icon, r.theme.Normal.Render(msg))
}

// Error renders a cross and err.
func (r *MessageRenderer) Error(err error) string {
	icon := lipgloss.NewStyle().Foreground(r.theme.Error).Render(IconX)
	return fmt.Sprintf("  %s %s", icon, r.theme.ErrorStyle.Render(err.Error()))
}

// Path renders a labelled file path, e.g. for `config path`.
func (r *MessageRenderer) Path(icon, label, path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("  %s %s %s", iconStyle.Render(icon), r.theme.Subtle.Render(label), r.theme.Normal.Render(path))
}
