package entity

import "fmt"

// OperationKind names a native tab provider mutation.
type OperationKind string

const (
	OpMove        OperationKind = "move"
	OpGroup       OperationKind = "group"
	OpUngroup     OperationKind = "ungroup"
	OpUpdateGroup OperationKind = "update_group"
)

// Operation is a single provider mutation in a plan.
type Operation struct {
	Kind    OperationKind `json:"kind"`
	TabID   TabID         `json:"tabId,omitempty"`
	GroupID GroupID       `json:"groupId,omitempty"`
	Index   int           `json:"index,omitempty"`
	Title   string        `json:"title,omitempty"`
	Color   GroupColor    `json:"color,omitempty"`
}

// MoveOp moves a tab to an absolute window index.
func MoveOp(tabID TabID, index int) Operation {
	return Operation{Kind: OpMove, TabID: tabID, Index: index}
}

// GroupOp adds a tab to an existing native group.
func GroupOp(tabID TabID, groupID GroupID) Operation {
	return Operation{Kind: OpGroup, TabID: tabID, GroupID: groupID}
}

// UngroupOp removes a tab from its native group.
func UngroupOp(tabID TabID) Operation {
	return Operation{Kind: OpUngroup, TabID: tabID, GroupID: NoGroup}
}

// UpdateGroupOp sets a group's title and color.
func UpdateGroupOp(groupID GroupID, title string, color GroupColor) Operation {
	return Operation{Kind: OpUpdateGroup, GroupID: groupID, Title: title, Color: color}
}

func (o Operation) String() string {
	switch o.Kind {
	case OpMove:
		return fmt.Sprintf("move(tab=%d, index=%d)", o.TabID, o.Index)
	case OpGroup:
		return fmt.Sprintf("group(tab=%d, group=%d)", o.TabID, o.GroupID)
	case OpUngroup:
		return fmt.Sprintf("ungroup(tab=%d)", o.TabID)
	case OpUpdateGroup:
		return fmt.Sprintf("update_group(group=%d, title=%q, color=%s)", o.GroupID, o.Title, o.Color)
	default:
		return fmt.Sprintf("%s(?)", o.Kind)
	}
}

// OperationPlan is the ordered list of operations realizing one drop.
// Operations must be applied in order; later moves depend on earlier ones.
type OperationPlan struct {
	Operations []Operation `json:"operations"`
}

// Append adds operations to the end of the plan.
func (p *OperationPlan) Append(ops ...Operation) {
	p.Operations = append(p.Operations, ops...)
}

// Len returns the number of operations.
func (p *OperationPlan) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Operations)
}

// Empty reports whether the plan has nothing to apply.
func (p *OperationPlan) Empty() bool {
	return p.Len() == 0
}

// Count returns how many operations of the given kind the plan holds.
func (p *OperationPlan) Count(kind OperationKind) int {
	if p == nil {
		return 0
	}
	n := 0
	for _, op := range p.Operations {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
