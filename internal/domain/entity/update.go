package entity

import (
	"slices"
	"time"
)

// UpdateType names the kind of a state-change notification.
type UpdateType string

const (
	UpdateSpaceUpdated   UpdateType = "space_updated"
	UpdateSpaceCreated   UpdateType = "space_created"
	UpdateSpaceClosed    UpdateType = "space_closed"
	UpdateSpaceRestored  UpdateType = "space_restored"
	UpdateSpaceDeleted   UpdateType = "space_deleted"
	UpdateSpaceRekeyed   UpdateType = "space_rekeyed"
	UpdateSpacesReplaced UpdateType = "spaces_replaced"
	UpdateTabsChanged    UpdateType = "tabs_changed"
)

// UpdatePriority orders how urgently an update must reach observers.
type UpdatePriority int

const (
	PriorityNormal UpdatePriority = iota
	PriorityHigh
	PriorityCritical
)

func (p UpdatePriority) String() string {
	switch p {
	case PriorityNormal:
		return "normal"
	case PriorityHigh:
		return "high"
	case PriorityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// MarshalText renders the priority by name on the wire.
func (p UpdatePriority) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UpdatePayload is the sealed set of notification payloads.
// Only the payload types declared in this package implement it.
type UpdatePayload interface {
	UpdateType() UpdateType
	// CoalesceKey groups updates that may replace one another inside a
	// debounce window.
	CoalesceKey() string
	sealed()
}

// SpaceChanges lists the fields a space update touched. Nil means untouched;
// a non-nil empty Name is still a rename intent.
type SpaceChanges struct {
	Name *string  `json:"name,omitempty"`
	URLs []string `json:"urls,omitempty"`
}

// SpaceUpdatedPayload reports field changes on one space.
type SpaceUpdatedPayload struct {
	SpaceID     SpaceID      `json:"space_id"`
	PermanentID string       `json:"permanent_id"`
	Changes     SpaceChanges `json:"changes"`
	Version     int64        `json:"version"`
}

func (SpaceUpdatedPayload) UpdateType() UpdateType { return UpdateSpaceUpdated }
func (p SpaceUpdatedPayload) CoalesceKey() string {
	return string(UpdateSpaceUpdated) + ":" + p.PermanentID
}
func (SpaceUpdatedPayload) sealed() {}

// SpaceLifecyclePayload reports a create, close, restore, delete, or rekey.
type SpaceLifecyclePayload struct {
	Event      UpdateType `json:"event"`
	Space      Space      `json:"space"`
	PreviousID SpaceID    `json:"previous_id,omitempty"`
}

func (p SpaceLifecyclePayload) UpdateType() UpdateType { return p.Event }
func (p SpaceLifecyclePayload) CoalesceKey() string {
	return string(p.Event) + ":" + p.Space.PermanentID
}
func (SpaceLifecyclePayload) sealed() {}

// WithRename patches the carried space if it predates the rename.
func (p SpaceLifecyclePayload) WithRename(rename SpaceUpdatedPayload) SpaceLifecyclePayload {
	if rename.Changes.Name == nil || p.Space.PermanentID != rename.PermanentID || p.Space.Version >= rename.Version {
		return p
	}
	p.Space = p.Space.Clone()
	p.Space.Name = *rename.Changes.Name
	p.Space.Named = true
	p.Space.Version = rename.Version
	return p
}

// SpacesReplacedPayload carries a full snapshot of both space maps.
type SpacesReplacedPayload struct {
	Spaces []Space `json:"spaces"`
	Closed []Space `json:"closed"`
}

func (SpacesReplacedPayload) UpdateType() UpdateType { return UpdateSpacesReplaced }
func (SpacesReplacedPayload) CoalesceKey() string    { return string(UpdateSpacesReplaced) }
func (SpacesReplacedPayload) sealed()                {}

// WithRename patches any older copy of the renamed space inside the
// snapshot so that dispatching the snapshot later cannot revert the name.
func (p SpacesReplacedPayload) WithRename(rename SpaceUpdatedPayload) SpacesReplacedPayload {
	if rename.Changes.Name == nil {
		return p
	}
	patch := func(list []Space) []Space {
		out := slices.Clone(list)
		for i := range out {
			if out[i].PermanentID == rename.PermanentID && out[i].Version < rename.Version {
				out[i].Name = *rename.Changes.Name
				out[i].Named = true
				out[i].Version = rename.Version
			}
		}
		return out
	}
	return SpacesReplacedPayload{Spaces: patch(p.Spaces), Closed: patch(p.Closed)}
}

// TabsChangedPayload reports a refreshed tab list for one space.
type TabsChangedPayload struct {
	SpaceID     SpaceID  `json:"space_id"`
	PermanentID string   `json:"permanent_id"`
	URLs        []string `json:"urls"`
	Version     int64    `json:"version"`
}

func (TabsChangedPayload) UpdateType() UpdateType { return UpdateTabsChanged }
func (p TabsChangedPayload) CoalesceKey() string {
	return string(UpdateTabsChanged) + ":" + p.PermanentID
}
func (TabsChangedPayload) sealed() {}

// QueuedStateUpdate is one outgoing notification.
type QueuedStateUpdate struct {
	ID        string         `json:"id"`
	Type      UpdateType     `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Priority  UpdatePriority `json:"priority"`
	Payload   UpdatePayload  `json:"payload"`
}

// NewUpdate wraps a payload. Type is always derived from the payload.
func NewUpdate(id string, payload UpdatePayload, priority UpdatePriority, now time.Time) QueuedStateUpdate {
	return QueuedStateUpdate{
		ID:        id,
		Type:      payload.UpdateType(),
		Timestamp: now,
		Priority:  priority,
		Payload:   payload,
	}
}

// BypassesDebounce reports whether the update must reach observers
// immediately: every CRITICAL update, and every space update carrying a name
// change, even an empty one. Coalescing renames lets a stale queued update
// overwrite a freshly typed title.
func (u QueuedStateUpdate) BypassesDebounce() bool {
	if u.Priority == PriorityCritical {
		return true
	}
	switch p := u.Payload.(type) {
	case SpaceUpdatedPayload:
		return p.Changes.Name != nil
	case SpaceLifecyclePayload, SpacesReplacedPayload, TabsChangedPayload:
		return false
	default:
		return false
	}
}

// CoalesceKey returns the payload key, or the update id for a nil payload so
// that malformed updates never collapse into each other.
func (u QueuedStateUpdate) CoalesceKey() string {
	if u.Payload == nil {
		return "update:" + u.ID
	}
	return u.Payload.CoalesceKey()
}
