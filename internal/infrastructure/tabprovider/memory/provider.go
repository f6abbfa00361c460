// Package memory implements port.TabProvider over in-process window state.
// It follows the browser's index semantics closely enough to replay
// operation plans, and it can inject failures for recovery tests.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/bnema/tabgrouper/internal/application/port"
	"github.com/bnema/tabgrouper/internal/domain/entity"
)

// Call names used by FailOn and Calls.
const (
	CallQueryTabs   = "query_tabs"
	CallQueryGroups = "query_groups"
	CallMoveTab     = "move_tab"
	CallGroupTabs   = "group_tabs"
	CallUngroupTabs = "ungroup_tabs"
	CallUpdateGroup = "update_group"
)

type fault struct {
	remaining int // successful calls left before failing
	err       error
}

// Provider is an in-memory tab provider. It is safe for concurrent use.
type Provider struct {
	mu            sync.Mutex
	currentWindow int64
	windows       map[int64][]*entity.Tab
	groups        map[entity.GroupID]*entity.NativeGroupInfo
	groupOrder    []entity.GroupID
	nextGroupID   entity.GroupID
	calls         []string
	faults        map[string]*fault
}

var _ port.TabProvider = (*Provider)(nil)

// New creates a provider seeded from fixture.
// Tabs are ordered per window by their Index field.
func New(fixture Fixture) *Provider {
	p := &Provider{
		currentWindow: fixture.CurrentWindowID,
		windows:       make(map[int64][]*entity.Tab),
		groups:        make(map[entity.GroupID]*entity.NativeGroupInfo),
		nextGroupID:   1,
		faults:        make(map[string]*fault),
	}

	for _, g := range fixture.Groups {
		if g == nil {
			continue
		}
		if _, dup := p.groups[g.ID]; dup {
			continue
		}
		p.groups[g.ID] = g.Clone()
		p.groupOrder = append(p.groupOrder, g.ID)
		if g.ID >= p.nextGroupID {
			p.nextGroupID = g.ID + 1
		}
	}

	for _, t := range fixture.Tabs {
		if t == nil {
			continue
		}
		c := t.Clone()
		if c.GroupID != entity.NoGroup {
			if _, ok := p.groups[c.GroupID]; !ok {
				c.GroupID = entity.NoGroup
			}
		}
		p.windows[c.WindowID] = append(p.windows[c.WindowID], c)
		if p.currentWindow == 0 {
			p.currentWindow = c.WindowID
		}
	}
	for id, tabs := range p.windows {
		slices.SortStableFunc(tabs, func(a, b *entity.Tab) int { return a.Index - b.Index })
		p.reindex(id)
	}
	return p
}

// FailOn makes the named call fail with err after it has succeeded
// successes more times. The fault fires once.
func (p *Provider) FailOn(call string, successes int, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.faults[call] = &fault{remaining: successes, err: err}
}

// Calls returns the names of the mutating calls made so far, in order.
func (p *Provider) Calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.calls)
}

// check records call and returns an injected fault if one is due.
func (p *Provider) check(call string) error {
	switch call {
	case CallQueryTabs, CallQueryGroups:
	default:
		p.calls = append(p.calls, call)
	}
	f, ok := p.faults[call]
	if !ok {
		return nil
	}
	if f.remaining > 0 {
		f.remaining--
		return nil
	}
	delete(p.faults, call)
	return f.err
}

func (p *Provider) QueryTabs(_ context.Context, query port.TabQuery) ([]*entity.Tab, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.check(CallQueryTabs); err != nil {
		return nil, err
	}

	var windowIDs []int64
	if query.CurrentWindow {
		windowIDs = []int64{p.currentWindow}
	} else {
		for id := range p.windows {
			windowIDs = append(windowIDs, id)
		}
		slices.Sort(windowIDs)
	}

	out := make([]*entity.Tab, 0)
	for _, wid := range windowIDs {
		for _, t := range p.windows[wid] {
			if query.ActiveOnly && !t.Active {
				continue
			}
			out = append(out, t.Clone())
		}
	}
	return out, nil
}

func (p *Provider) QueryGroups(_ context.Context, query port.GroupQuery) ([]*entity.NativeGroupInfo, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.check(CallQueryGroups); err != nil {
		return nil, err
	}

	out := make([]*entity.NativeGroupInfo, 0, len(p.groupOrder))
	for _, id := range p.groupOrder {
		g := p.groups[id]
		if query.CurrentWindow && g.WindowID != p.currentWindow {
			continue
		}
		out = append(out, g.Clone())
	}
	return out, nil
}

// MoveTab moves a tab within its window. Index -1 means the end; larger
// indices are clamped. Group membership is unchanged.
func (p *Provider) MoveTab(_ context.Context, id entity.TabID, index int) (*entity.Tab, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.check(CallMoveTab); err != nil {
		return nil, err
	}

	wid, pos, ok := p.locate(id)
	if !ok {
		return nil, fmt.Errorf("no tab with id %d: %w", id, entity.ErrTabNotFound)
	}
	tabs := p.windows[wid]
	t := tabs[pos]
	tabs = slices.Delete(tabs, pos, pos+1)
	if index < 0 || index > len(tabs) {
		index = len(tabs)
	}
	p.windows[wid] = slices.Insert(tabs, index, t)
	p.reindex(wid)
	return t.Clone(), nil
}

// GroupTabs adds tabs to groupID, creating a grey untitled group when
// groupID is entity.NoGroup. The tabs are placed right after the group's
// last remaining member, or where the first tab was for a new group.
func (p *Provider) GroupTabs(_ context.Context, ids []entity.TabID, groupID entity.GroupID) (entity.GroupID, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.check(CallGroupTabs); err != nil {
		return entity.NoGroup, err
	}
	if len(ids) == 0 {
		return entity.NoGroup, fmt.Errorf("no tab ids given")
	}

	wid, firstPos, ok := p.locate(ids[0])
	if !ok {
		return entity.NoGroup, fmt.Errorf("no tab with id %d: %w", ids[0], entity.ErrTabNotFound)
	}
	for _, id := range ids[1:] {
		other, _, ok := p.locate(id)
		if !ok {
			return entity.NoGroup, fmt.Errorf("no tab with id %d: %w", id, entity.ErrTabNotFound)
		}
		if other != wid {
			return entity.NoGroup, fmt.Errorf("tab %d is in another window", id)
		}
	}

	if groupID == entity.NoGroup {
		groupID = p.nextGroupID
		p.nextGroupID++
		p.groups[groupID] = &entity.NativeGroupInfo{
			ID:       groupID,
			WindowID: wid,
			Color:    entity.DefaultGroupColor,
		}
		p.groupOrder = append(p.groupOrder, groupID)
	} else {
		g, ok := p.groups[groupID]
		if !ok {
			return entity.NoGroup, fmt.Errorf("no group with id %d: %w", groupID, entity.ErrGroupNotFound)
		}
		if g.WindowID != wid {
			return entity.NoGroup, fmt.Errorf("group %d is in another window", groupID)
		}
	}

	moving := make([]*entity.Tab, 0, len(ids))
	rest := make([]*entity.Tab, 0, len(p.windows[wid]))
	want := make(map[entity.TabID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	for _, t := range p.windows[wid] {
		if want[t.ID] {
			t.GroupID = groupID
			moving = append(moving, t)
			continue
		}
		rest = append(rest, t)
	}

	insertAt := -1
	for i, t := range rest {
		if t.GroupID == groupID {
			insertAt = i + 1
		}
	}
	if insertAt < 0 {
		insertAt = min(firstPos, len(rest))
	}
	p.windows[wid] = slices.Insert(rest, insertAt, moving...)
	p.reindex(wid)
	p.pruneGroups()
	return groupID, nil
}

// UngroupTabs clears group membership and leaves tabs in place.
func (p *Provider) UngroupTabs(_ context.Context, ids []entity.TabID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.check(CallUngroupTabs); err != nil {
		return err
	}

	for _, id := range ids {
		wid, pos, ok := p.locate(id)
		if !ok {
			return fmt.Errorf("no tab with id %d: %w", id, entity.ErrTabNotFound)
		}
		p.windows[wid][pos].GroupID = entity.NoGroup
	}
	p.pruneGroups()
	return nil
}

func (p *Provider) UpdateGroup(_ context.Context, id entity.GroupID, update port.GroupUpdate) (*entity.NativeGroupInfo, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.check(CallUpdateGroup); err != nil {
		return nil, err
	}

	g, ok := p.groups[id]
	if !ok {
		return nil, fmt.Errorf("no group with id %d: %w", id, entity.ErrGroupNotFound)
	}
	if update.Color != nil && !update.Color.Valid() {
		return nil, fmt.Errorf("%w: %q", entity.ErrInvalidColor, *update.Color)
	}
	if update.Title != nil {
		g.Title = *update.Title
	}
	if update.Color != nil {
		g.Color = *update.Color
	}
	if update.Collapsed != nil {
		g.Collapsed = *update.Collapsed
	}
	return g.Clone(), nil
}

func (p *Provider) locate(id entity.TabID) (int64, int, bool) {
	for wid, tabs := range p.windows {
		for i, t := range tabs {
			if t.ID == id {
				return wid, i, true
			}
		}
	}
	return 0, 0, false
}

func (p *Provider) reindex(wid int64) {
	for i, t := range p.windows[wid] {
		t.Index = i
	}
}

// pruneGroups drops groups that no longer have member tabs.
func (p *Provider) pruneGroups() {
	used := make(map[entity.GroupID]bool)
	for _, tabs := range p.windows {
		for _, t := range tabs {
			used[t.GroupID] = true
		}
	}
	p.groupOrder = slices.DeleteFunc(p.groupOrder, func(id entity.GroupID) bool {
		if used[id] {
			return false
		}
		delete(p.groups, id)
		return true
	})
}
