// Package port defines the boundaries the application layer depends on.
package port

import (
	"context"

	"github.com/bnema/tabgrouper/internal/domain/entity"
)

// TabQuery filters QueryTabs.
type TabQuery struct {
	CurrentWindow bool // only tabs of the current window
	ActiveOnly    bool // only the active tab(s)
}

// GroupQuery filters QueryGroups.
type GroupQuery struct {
	CurrentWindow bool
}

// GroupUpdate carries the native group properties to change.
// Nil fields are left untouched.
type GroupUpdate struct {
	Title     *string
	Color     *entity.GroupColor
	Collapsed *bool
}

// TabProvider is the browser's tab, window and tab-group API.
// It owns the authoritative state; every call may observe changes made
// outside this process since the previous call.
type TabProvider interface {
	// QueryTabs returns tabs in window order.
	QueryTabs(ctx context.Context, query TabQuery) ([]*entity.Tab, error)

	// QueryGroups returns native tab groups.
	QueryGroups(ctx context.Context, query GroupQuery) ([]*entity.NativeGroupInfo, error)

	// MoveTab moves a tab to an absolute window index.
	// The error wraps entity.ErrTabNotFound when the tab no longer exists.
	MoveTab(ctx context.Context, id entity.TabID, index int) (*entity.Tab, error)

	// GroupTabs adds tabs to groupID, or to a new group when groupID is
	// entity.NoGroup. Returns the group the tabs ended up in.
	GroupTabs(ctx context.Context, ids []entity.TabID, groupID entity.GroupID) (entity.GroupID, error)

	// UngroupTabs removes tabs from their groups.
	UngroupTabs(ctx context.Context, ids []entity.TabID) error

	// UpdateGroup changes a group's title, color or collapsed state.
	UpdateGroup(ctx context.Context, id entity.GroupID, update GroupUpdate) (*entity.NativeGroupInfo, error)
}
