package entity

import (
	"slices"
	"strconv"
	"strings"
	"time"
)

// SpaceID is the current binding key of a space.
// Active spaces use the decimal id of their live window; archived spaces use
// a stable key derived from their permanent id.
type SpaceID string

// ArchivedSpacePrefix prefixes the id of every archived space.
const ArchivedSpacePrefix = "closed:"

// SpaceIDForWindow returns the binding key for a live window.
func SpaceIDForWindow(windowID WindowID) SpaceID {
	return SpaceID(strconv.FormatInt(int64(windowID), 10))
}

// ArchivedSpaceID returns the stable binding key used while a space is archived.
func ArchivedSpaceID(permanentID string) SpaceID {
	return SpaceID(ArchivedSpacePrefix + permanentID)
}

// IsArchived reports whether the id is an archive key.
func (id SpaceID) IsArchived() bool {
	return strings.HasPrefix(string(id), ArchivedSpacePrefix)
}

// WindowID parses the window id out of an active space id.
func (id SpaceID) WindowID() (WindowID, bool) {
	if id.IsArchived() {
		return 0, false
	}
	n, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil {
		return 0, false
	}
	return WindowID(n), true
}

// Space is the canonical unit of organization: one per live window, or one
// archive entry per closed window.
type Space struct {
	ID           SpaceID   `json:"id"`
	PermanentID  string    `json:"permanent_id"`
	WindowID     WindowID  `json:"window_id,omitempty"`
	Name         string    `json:"name"`
	Named        bool      `json:"named"`
	URLs         []string  `json:"urls"`
	CreatedAt    time.Time `json:"created_at"`
	LastModified time.Time `json:"last_modified"`
	LastUsed     time.Time `json:"last_used"`
	LastSync     time.Time `json:"last_sync"`
	Version      int64     `json:"version"`
	IsActive     bool      `json:"is_active"`
}

// NewSpace builds the first version of a space bound to a live window.
func NewSpace(windowID WindowID, permanentID string, urls []string, now time.Time) Space {
	return Space{
		ID:           SpaceIDForWindow(windowID),
		PermanentID:  permanentID,
		WindowID:     windowID,
		Name:         DefaultSpaceName(urls),
		Named:        false,
		URLs:         slices.Clone(urls),
		CreatedAt:    now,
		LastModified: now,
		LastUsed:     now,
		LastSync:     now,
		Version:      1,
		IsActive:     true,
	}
}

// DefaultSpaceName generates the display name of an unnamed space.
func DefaultSpaceName(urls []string) string {
	switch len(urls) {
	case 0:
		return "Untitled space"
	case 1:
		return hostOf(urls[0])
	default:
		return hostOf(urls[0]) + " +" + strconv.Itoa(len(urls)-1)
	}
}

func hostOf(raw string) string {
	s := raw
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
	}
	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return raw
	}
	return s
}

// Clone returns a deep copy so callers never share the URL slice.
func (s Space) Clone() Space {
	s.URLs = slices.Clone(s.URLs)
	return s
}

// DisplayName returns the name shown to users.
func (s Space) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return DefaultSpaceName(s.URLs)
}

// SpacePatch is a partial update. Nil fields are left untouched.
// PermanentID and CreatedAt have no patch field and can never be overwritten
// by a partial update.
type SpacePatch struct {
	ID       *SpaceID
	WindowID *WindowID
	Name     *string
	Named    *bool
	URLs     []string
	IsActive *bool
	LastUsed *time.Time
	LastSync *time.Time
}

// Apply merges the patch into a copy of the space, bumping Version and
// LastModified. The receiver is not modified.
func (s Space) Apply(p SpacePatch, now time.Time) Space {
	next := s.Clone()
	if p.ID != nil {
		next.ID = *p.ID
	}
	if p.WindowID != nil {
		next.WindowID = *p.WindowID
	}
	if p.Name != nil {
		next.Name = *p.Name
	}
	if p.Named != nil {
		next.Named = *p.Named
	}
	if p.URLs != nil {
		next.URLs = slices.Clone(p.URLs)
	}
	if p.IsActive != nil {
		next.IsActive = *p.IsActive
	}
	if p.LastUsed != nil {
		next.LastUsed = *p.LastUsed
	}
	if p.LastSync != nil {
		next.LastSync = *p.LastSync
	}
	next.Version = s.Version + 1
	if now.After(s.LastModified) {
		next.LastModified = now
	}
	return next
}

// Archived returns the patch that detaches a space from its window.
func (s Space) Archived() SpacePatch {
	id := ArchivedSpaceID(s.PermanentID)
	var noWindow WindowID
	inactive := false
	return SpacePatch{ID: &id, WindowID: &noWindow, IsActive: &inactive}
}

// BoundTo returns the patch that binds a space to a live window.
func BoundTo(windowID WindowID, now time.Time) SpacePatch {
	id := SpaceIDForWindow(windowID)
	active := true
	return SpacePatch{ID: &id, WindowID: &windowID, IsActive: &active, LastUsed: &now}
}

// Renamed returns the patch for an explicit user rename.
func Renamed(name string) SpacePatch {
	named := true
	return SpacePatch{Name: &name, Named: &named}
}

// SameIdentity reports whether two records describe the same space across
// close, restore, and rekey.
func (s Space) SameIdentity(other Space) bool {
	return s.PermanentID == other.PermanentID &&
		s.Named == other.Named &&
		s.CreatedAt.Equal(other.CreatedAt)
}

// SortSpaces orders spaces oldest first, breaking ties by id.
func SortSpaces(spaces []Space) {
	slices.SortFunc(spaces, func(a, b Space) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(string(a.ID), string(b.ID))
	})
}
