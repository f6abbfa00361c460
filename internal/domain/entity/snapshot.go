package entity

// CustomSnapshot is the native-group view of the current window.
// It is derived from two provider queries and is discarded after use.
type CustomSnapshot struct {
	Groups        []*NativeGroup `json:"groups"`
	UngroupedTabs []*Tab         `json:"ungroupedTabs"`
	// ActiveGroupID is the group of the active tab, nil when that tab is ungrouped.
	ActiveGroupID *GroupID `json:"activeGroupId"`
}

// Group returns the group with the given id, or nil.
func (s *CustomSnapshot) Group(id GroupID) *NativeGroup {
	for _, g := range s.Groups {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// Bucket returns the ordered tabs of a group, or the ungrouped tabs for NoGroup.
// The bool is false when the group is unknown.
func (s *CustomSnapshot) Bucket(id GroupID) ([]*Tab, bool) {
	if id == NoGroup {
		return s.UngroupedTabs, true
	}
	g := s.Group(id)
	if g == nil {
		return nil, false
	}
	return g.Tabs, true
}

// FindTab locates a tab and returns the bucket it was assigned to.
func (s *CustomSnapshot) FindTab(id TabID) (*Tab, GroupID, bool) {
	for _, g := range s.Groups {
		for _, tab := range g.Tabs {
			if tab.ID == id {
				return tab, g.ID, true
			}
		}
	}
	for _, tab := range s.UngroupedTabs {
		if tab.ID == id {
			return tab, NoGroup, true
		}
	}
	return nil, NoGroup, false
}

// TabCount returns the number of tabs across all buckets.
func (s *CustomSnapshot) TabCount() int {
	n := len(s.UngroupedTabs)
	for _, g := range s.Groups {
		n += len(g.Tabs)
	}
	return n
}
