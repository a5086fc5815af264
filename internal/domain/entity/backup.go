package entity

import "time"

// BackupVersion is the current schema version of the export blob.
// Increment when making breaking changes to the serialization format.
const BackupVersion = 1

// Backup is a full export of persisted state.
// This is serialized to JSON and treated as opaque by callers.
type Backup struct {
	Version    int         `json:"version"`
	ExportedAt time.Time   `json:"exported_at"`
	Spaces     []Space     `json:"spaces"`
	Closed     []Space     `json:"closed"`
	Tabs       []TabRecord `json:"tabs"`
}

// SpaceCount returns the number of active and archived spaces.
func (b *Backup) SpaceCount() int {
	if b == nil {
		return 0
	}
	return len(b.Spaces) + len(b.Closed)
}
