package entity

// WindowID identifies a live host window. Host ids are only unique for the
// lifetime of the host process and may be reassigned after a restart.
type WindowID int64

// TabID identifies a live host tab.
type TabID int64

// WindowType is the kind of host window.
type WindowType string

const (
	WindowTypeNormal   WindowType = "normal"
	WindowTypePopup    WindowType = "popup"
	WindowTypePanel    WindowType = "panel"
	WindowTypeApp      WindowType = "app"
	WindowTypeDevTools WindowType = "devtools"
)

// Valid reports whether t is a known window type.
func (t WindowType) Valid() bool {
	switch t {
	case WindowTypeNormal, WindowTypePopup, WindowTypePanel, WindowTypeApp, WindowTypeDevTools:
		return true
	}
	return false
}

// Window is a host window as reported by the window manager or a host event.
// Tabs may be empty right after creation.
type Window struct {
	ID      WindowID   `json:"id"`
	Type    WindowType `json:"type"`
	Focused bool       `json:"focused"`
	Tabs    []Tab      `json:"tabs,omitempty"`
}

// URLs returns the tab URLs of the window in tab order, skipping blanks.
func (w Window) URLs() []string {
	urls := make([]string, 0, len(w.Tabs))
	for _, tab := range w.Tabs {
		if tab.URL != "" {
			urls = append(urls, tab.URL)
		}
	}
	return urls
}

// Tab is a live host tab.
type Tab struct {
	ID       TabID    `json:"id"`
	WindowID WindowID `json:"window_id"`
	Index    int      `json:"index"`
	URL      string   `json:"url"`
	Title    string   `json:"title,omitempty"`
	Pinned   bool     `json:"pinned,omitempty"`
}

// TabRecord is the persisted form of a tab belonging to a space.
type TabRecord struct {
	ID       string  `json:"id"`
	SpaceID  SpaceID `json:"space_id"`
	Position int     `json:"position"`
	URL      string  `json:"url"`
	Title    string  `json:"title,omitempty"`
	Pinned   bool    `json:"pinned,omitempty"`
}

// TabRecordsFromTabs converts live tabs into persisted records for a space.
// Ids are produced by idGen so records stay unique across rekeys.
func TabRecordsFromTabs(spaceID SpaceID, tabs []Tab, idGen IDGenerator) []TabRecord {
	records := make([]TabRecord, 0, len(tabs))
	for i, tab := range tabs {
		records = append(records, TabRecord{
			ID:       idGen(),
			SpaceID:  spaceID,
			Position: i,
			URL:      tab.URL,
			Title:    tab.Title,
			Pinned:   tab.Pinned,
		})
	}
	return records
}

// IDGenerator is a function that generates unique IDs.
type IDGenerator func() string
