package entity

import (
	"fmt"
	"strings"
)

// InsertionSide says which side of the reference tab a drop lands on.
type InsertionSide int

const (
	SideBefore InsertionSide = iota
	SideAfter
)

// String returns "before" or "after".
func (s InsertionSide) String() string {
	if s == SideAfter {
		return "after"
	}
	return "before"
}

// ParseInsertionSide parses "before" or "after". Empty means before.
func ParseInsertionSide(raw string) (InsertionSide, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "before":
		return SideBefore, nil
	case "after":
		return SideAfter, nil
	default:
		return SideBefore, fmt.Errorf("invalid insertion side %q", raw)
	}
}

// NoTargetIndex marks a drop on a group container rather than on a tab.
const NoTargetIndex = -1

// DragContext describes one drop gesture. It is built by the UI layer and
// lives only until the drop has been applied or has failed.
type DragContext struct {
	Tab           *Tab // nil when the gesture carried no tab
	SourceGroupID GroupID
	TargetGroupID GroupID
	// TargetIndex is the reference position in the target bucket's tab list,
	// or NoTargetIndex for a container-level drop.
	TargetIndex int
	Side        InsertionSide
}

// SameGroup reports whether the drop stays in the source bucket.
func (d DragContext) SameGroup() bool {
	return d.SourceGroupID == d.TargetGroupID
}
