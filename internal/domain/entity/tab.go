package entity

// TabID uniquely identifies a tab for the lifetime of the tab provider.
type TabID int64

// GroupID identifies a native tab group.
type GroupID int64

// NoGroup is the membership id of a tab that belongs to no native group.
const NoGroup GroupID = -1

// Tab is a browser tab as reported by the tab provider.
// The provider owns tabs; this is a read-only copy taken at query time.
type Tab struct {
	ID       TabID   `json:"id"`
	WindowID int64   `json:"windowId"`
	Index    int     `json:"index"`   // Position within its window (0-indexed)
	GroupID  GroupID `json:"groupId"` // NoGroup when ungrouped
	URL      string  `json:"url,omitempty"`
	Title    string  `json:"title,omitempty"`
	Active   bool    `json:"active"`
}

// IsGrouped reports whether the tab belongs to a native group.
func (t *Tab) IsGrouped() bool {
	return t.GroupID != NoGroup
}

// Clone returns a copy of the tab.
func (t *Tab) Clone() *Tab {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// TabIDs returns the ids of the given tabs, in order.
func TabIDs(tabs []*Tab) []TabID {
	ids := make([]TabID, 0, len(tabs))
	for _, tab := range tabs {
		ids = append(ids, tab.ID)
	}
	return ids
}

// MinIndex returns the smallest window index among tabs.
// Returns false when tabs is empty.
func MinIndex(tabs []*Tab) (int, bool) {
	if len(tabs) == 0 {
		return 0, false
	}
	lowest := tabs[0].Index
	for _, tab := range tabs[1:] {
		if tab.Index < lowest {
			lowest = tab.Index
		}
	}
	return lowest, true
}
