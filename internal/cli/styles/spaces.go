package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/spacesync/internal/domain/entity"
)

const maxURLColumn = 48

// SpacesRenderer renders space lists as a bordered table.
type SpacesRenderer struct {
	theme *Theme
	now   func() time.Time
}

// NewSpacesRenderer creates a new spaces renderer with the given theme.
func NewSpacesRenderer(theme *Theme) *SpacesRenderer {
	return &SpacesRenderer{theme: theme, now: time.Now}
}

// Render draws one row per space. Empty input renders a hint instead of
// an empty table.
func (r *SpacesRenderer) Render(spaces []entity.Space) string {
	if len(spaces) == 0 {
		return r.theme.Subtle.Render("  no spaces")
	}

	rows := make([][]string, 0, len(spaces))
	for _, s := range spaces {
		rows = append(rows, []string{
			string(s.ID),
			displayName(s),
			r.theme.StateBadge(s.IsActive),
			fmt.Sprintf("%d", len(s.URLs)),
			firstURL(s.URLs),
			relativeTo(r.now(), s.LastUsed),
			fmt.Sprintf("v%d", s.Version),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.theme.Border)).
		Headers("ID", "NAME", "STATE", "TABS", "FIRST URL", "USED", "VER").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.theme.TableHeader
			}
			return r.theme.TableCell
		})

	return t.Render()
}

func displayName(s entity.Space) string {
	if s.Named {
		return s.Name
	}
	return s.Name + "*"
}

func firstURL(urls []string) string {
	if len(urls) == 0 {
		return ""
	}
	u := urls[0]
	if len(u) > maxURLColumn {
		u = u[:maxURLColumn-1] + "…"
	}
	if len(urls) > 1 {
		u += fmt.Sprintf(" (+%d)", len(urls)-1)
	}
	return strings.TrimSpace(u)
}
