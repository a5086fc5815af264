package styles

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/spacesync/internal/domain/build"
	"github.com/bnema/spacesync/internal/domain/entity"
)

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cases := map[time.Duration]string{
		10 * time.Second:     "just now",
		5 * time.Minute:      "5m ago",
		3 * time.Hour:        "3h ago",
		2 * 24 * time.Hour:   "2d ago",
		14 * 24 * time.Hour:  "2w ago",
		60 * 24 * time.Hour:  "2mo ago",
		800 * 24 * time.Hour: "2y ago",
	}
	for ago, want := range cases {
		assert.Equal(t, want, relativeTo(now, now.Add(-ago)), ago.String())
	}
	assert.Equal(t, "never", relativeTo(now, time.Time{}))
}

func TestSpacesRenderer(t *testing.T) {
	r := NewSpacesRenderer(NewTheme())
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }

	out := r.Render([]entity.Space{
		{ID: "7", Name: "Work", Named: true, IsActive: true, URLs: []string{"https://a.example", "https://b.example"}, LastUsed: now.Add(-time.Hour), Version: 3},
		{ID: "closed:p2", Name: "b.example", URLs: []string{"https://" + strings.Repeat("x", 80)}, Version: 1},
	})

	assert.Contains(t, out, "Work")
	assert.Contains(t, out, "b.example*")
	assert.Contains(t, out, "(+1)")
	assert.Contains(t, out, "1h ago")
	assert.Contains(t, out, "closed:p2")
	assert.Contains(t, out, "…")
	assert.Contains(t, out, "v3")

	assert.Contains(t, r.Render(nil), "no spaces")
}

func TestAboutAndMessages(t *testing.T) {
	theme := NewTheme()

	about := NewAboutRenderer(theme).Render(build.Info{Version: "1.2.3", Commit: "abc", BuildDate: "today", GoVersion: "go1.25"})
	assert.Contains(t, about, "1.2.3")
	assert.Contains(t, about, build.RepoURL())

	m := NewMessageRenderer(theme)
	assert.Contains(t, m.Success("exported 3 spaces"), "exported 3 spaces")
	assert.Contains(t, m.Error(errors.New("boom")), "boom")
	assert.Contains(t, m.Path(IconConfig, "config", "/tmp/c.toml"), "/tmp/c.toml")
}
