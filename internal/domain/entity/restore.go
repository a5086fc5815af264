package entity

import (
	"slices"
	"time"
)

// RestoreStatus is the lifecycle state of a restore intent.
type RestoreStatus string

const (
	RestorePendingWindow  RestoreStatus = "pending_window"
	RestoreWindowAttached RestoreStatus = "window_attached"
	RestoreFinalized      RestoreStatus = "finalized"
	RestoreFailed         RestoreStatus = "failed"
)

// DefaultRestoreTTL is how long an unmatched restore intent stays pending.
const DefaultRestoreTTL = 30 * time.Second

// RestoreSnapshot is one outstanding request to bind the next matching
// window to an archived space. URLs are copied from the archived space at
// request time.
type RestoreSnapshot struct {
	SpaceID       SpaceID       `json:"space_id"`
	PermanentID   string        `json:"permanent_id"`
	OriginalName  string        `json:"original_name"`
	Named         bool          `json:"named"`
	URLs          []string      `json:"urls"`
	ClosedSpaceID SpaceID       `json:"closed_space_id"`
	ExpectedType  WindowType    `json:"expected_type"`
	RequestedAt   time.Time     `json:"requested_at"`
	WindowID      *WindowID     `json:"window_id,omitempty"`
	Status        RestoreStatus `json:"status"`
}

// NewRestoreSnapshot captures an archived space for restoration.
func NewRestoreSnapshot(archived Space, expectedType WindowType, now time.Time) RestoreSnapshot {
	if expectedType == "" {
		expectedType = WindowTypeNormal
	}
	return RestoreSnapshot{
		SpaceID:       archived.ID,
		PermanentID:   archived.PermanentID,
		OriginalName:  archived.Name,
		Named:         archived.Named,
		URLs:          slices.Clone(archived.URLs),
		ClosedSpaceID: archived.ID,
		ExpectedType:  expectedType,
		RequestedAt:   now,
		Status:        RestorePendingWindow,
	}
}

// Clone returns a deep copy.
func (r RestoreSnapshot) Clone() RestoreSnapshot {
	r.URLs = slices.Clone(r.URLs)
	if r.WindowID != nil {
		id := *r.WindowID
		r.WindowID = &id
	}
	return r
}

// Age returns how long ago the intent was requested.
func (r RestoreSnapshot) Age(now time.Time) time.Duration {
	return now.Sub(r.RequestedAt)
}

// Matches applies the restore heuristic to a freshly created window.
// The type must match. If the window already reports tabs, at least one tab
// URL must appear in the snapshot; a window without tabs matches on type alone.
func (r RestoreSnapshot) Matches(w Window) bool {
	if w.Type != r.ExpectedType {
		return false
	}
	urls := w.URLs()
	if len(urls) == 0 {
		return true
	}
	return URLOverlap(r.URLs, urls) >= MinRestoreURLOverlap
}

// MinRestoreURLOverlap is the number of shared URLs required to match a
// window that already reports tabs. It is a heuristic, not proof of identity.
const MinRestoreURLOverlap = 1

// URLOverlap counts the distinct URLs of b that also appear in a.
func URLOverlap(a, b []string) int {
	set := make(map[string]struct{}, len(a))
	for _, u := range a {
		set[u] = struct{}{}
	}
	seen := make(map[string]struct{}, len(b))
	n := 0
	for _, u := range b {
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		if _, ok := set[u]; ok {
			n++
		}
	}
	return n
}
