package memory_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabgrouper/internal/application/port"
	"github.com/bnema/tabgrouper/internal/application/usecase"
	"github.com/bnema/tabgrouper/internal/domain/entity"
	"github.com/bnema/tabgrouper/internal/infrastructure/tabprovider/memory"
	"github.com/bnema/tabgrouper/internal/logging"
)

func testCtx() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
}

// x y | A B C D (group 7) | e (group 8, titled)
func fixture() memory.Fixture {
	return memory.Fixture{
		CurrentWindowID: 1,
		Groups: []*entity.NativeGroupInfo{
			{ID: 7, WindowID: 1, Color: entity.ColorGrey},
			{ID: 8, WindowID: 1, Title: "Reading", Color: entity.ColorPurple},
		},
		Tabs: []*entity.Tab{
			{ID: 10, WindowID: 1, Index: 0, GroupID: entity.NoGroup, URL: "https://x.test"},
			{ID: 11, WindowID: 1, Index: 1, GroupID: entity.NoGroup, URL: "https://y.test", Active: true},
			{ID: 1, WindowID: 1, Index: 2, GroupID: 7, URL: "https://a.test"},
			{ID: 2, WindowID: 1, Index: 3, GroupID: 7, URL: "https://b.test"},
			{ID: 3, WindowID: 1, Index: 4, GroupID: 7, URL: "https://c.test"},
			{ID: 4, WindowID: 1, Index: 5, GroupID: 7, URL: "https://d.test"},
			{ID: 5, WindowID: 1, Index: 6, GroupID: 8, URL: "https://e.test"},
			{ID: 20, WindowID: 2, Index: 0, GroupID: entity.NoGroup, URL: "https://other.test"},
		},
	}
}

func windowOrder(t *testing.T, p *memory.Provider) []entity.TabID {
	t.Helper()
	tabs, err := p.QueryTabs(context.Background(), port.TabQuery{CurrentWindow: true})
	require.NoError(t, err)
	for i, tb := range tabs {
		require.Equal(t, i, tb.Index)
	}
	return entity.TabIDs(tabs)
}

func TestProvider_QueryFilters(t *testing.T) {
	p := memory.New(fixture())
	ctx := context.Background()

	all, err := p.QueryTabs(ctx, port.TabQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 8)

	active, err := p.QueryTabs(ctx, port.TabQuery{CurrentWindow: true, ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, entity.TabID(11), active[0].ID)

	groups, err := p.QueryGroups(ctx, port.GroupQuery{CurrentWindow: true})
	require.NoError(t, err)
	assert.Len(t, groups, 2)
}

func TestProvider_MoveTabIndexSemantics(t *testing.T) {
	ctx := context.Background()

	p := memory.New(fixture())
	_, err := p.MoveTab(ctx, 10, 3)
	require.NoError(t, err)
	assert.Equal(t, []entity.TabID{11, 1, 2, 10, 3, 4, 5}, windowOrder(t, p))

	_, err = p.MoveTab(ctx, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, []entity.TabID{5, 11, 1, 2, 10, 3, 4}, windowOrder(t, p))

	moved, err := p.MoveTab(ctx, 5, -1)
	require.NoError(t, err)
	assert.Equal(t, 6, moved.Index)

	_, err = p.MoveTab(ctx, 99, 0)
	require.ErrorIs(t, err, entity.ErrTabNotFound)
}

func TestProvider_GroupAndUngroup(t *testing.T) {
	ctx := context.Background()
	p := memory.New(fixture())

	gid, err := p.GroupTabs(ctx, []entity.TabID{10}, 8)
	require.NoError(t, err)
	assert.Equal(t, entity.GroupID(8), gid)
	assert.Equal(t, []entity.TabID{11, 1, 2, 3, 4, 5, 10}, windowOrder(t, p))

	newID, err := p.GroupTabs(ctx, []entity.TabID{11}, entity.NoGroup)
	require.NoError(t, err)
	assert.Equal(t, entity.GroupID(9), newID)

	groups, err := p.QueryGroups(ctx, port.GroupQuery{CurrentWindow: true})
	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Equal(t, entity.ColorGrey, groups[2].Color)
	assert.Empty(t, groups[2].Title)

	// Ungrouping the only member removes the group.
	require.NoError(t, p.UngroupTabs(ctx, []entity.TabID{11}))
	groups, err = p.QueryGroups(ctx, port.GroupQuery{CurrentWindow: true})
	require.NoError(t, err)
	assert.Len(t, groups, 2)

	_, err = p.GroupTabs(ctx, []entity.TabID{1}, 77)
	require.ErrorIs(t, err, entity.ErrGroupNotFound)
}

func TestProvider_UpdateGroup(t *testing.T) {
	ctx := context.Background()
	p := memory.New(fixture())

	collapsed := true
	info, err := p.UpdateGroup(ctx, 7, port.GroupUpdate{Collapsed: &collapsed})
	require.NoError(t, err)
	assert.True(t, info.Collapsed)

	bad := entity.GroupColor("teal")
	_, err = p.UpdateGroup(ctx, 7, port.GroupUpdate{Color: &bad})
	require.ErrorIs(t, err, entity.ErrInvalidColor)

	_, err = p.UpdateGroup(ctx, 70, port.GroupUpdate{Collapsed: &collapsed})
	require.ErrorIs(t, err, entity.ErrGroupNotFound)
}

func TestProvider_ReplaysWithinGroupDrop(t *testing.T) {
	ctx := testCtx()
	p := memory.New(fixture())
	engine := usecase.NewReorderTabsUseCase(p, nil)

	// A after C.
	result, err := engine.Drop(ctx, entity.DragContext{
		Tab:           &entity.Tab{ID: 1},
		SourceGroupID: 7,
		TargetGroupID: 7,
		TargetIndex:   2,
		Side:          entity.SideAfter,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Applied)
	assert.Equal(t, []entity.TabID{10, 11, 2, 3, 1, 4, 5}, windowOrder(t, p))
	assert.Equal(t, []string{memory.CallMoveTab, memory.CallMoveTab, memory.CallMoveTab}, p.Calls())
}

func TestProvider_PartialApplyLeavesEarlierOperations(t *testing.T) {
	ctx := testCtx()
	p := memory.New(fixture())
	engine := usecase.NewReorderTabsUseCase(p, nil)

	plan := &entity.OperationPlan{}
	plan.Append(entity.MoveOp(4, 2), entity.MoveOp(1, 3), entity.MoveOp(2, 4))
	p.FailOn(memory.CallMoveTab, 1, errors.New("tab strip busy"))

	err := engine.Apply(ctx, plan)
	var partial *entity.PartialApplyFailure
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, 1, partial.Applied)

	assert.Equal(t, []entity.TabID{10, 11, 4, 1, 2, 3, 5}, windowOrder(t, p))
	assert.Equal(t, []string{memory.CallMoveTab, memory.CallMoveTab}, p.Calls())
}

func TestProvider_CrossGroupDropToTitledGroup(t *testing.T) {
	ctx := testCtx()
	p := memory.New(fixture())
	engine := usecase.NewReorderTabsUseCase(p, nil)

	_, err := engine.Drop(ctx, entity.DragContext{
		Tab:           &entity.Tab{ID: 10},
		SourceGroupID: entity.NoGroup,
		TargetGroupID: 8,
		TargetIndex:   entity.NoTargetIndex,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{memory.CallGroupTabs, memory.CallUpdateGroup}, p.Calls())

	snapshot, err := usecase.NewBuildSnapshotUseCase(p).BuildCustomSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.TabID{5, 10}, snapshot.Group(8).TabIDs())
	assert.Equal(t, "Reading", snapshot.Group(8).Title)
}

func TestFixture_RoundTrip(t *testing.T) {
	ctx := context.Background()
	p := memory.New(fixture())
	_, err := p.MoveTab(ctx, 4, 0)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "state", "tabs.json")
	require.NoError(t, p.SaveFixture(path))

	loaded, err := memory.LoadFixture(path)
	require.NoError(t, err)
	assert.Equal(t, int64(1), loaded.CurrentWindowID)

	reloaded := memory.New(loaded)
	assert.Equal(t, windowOrder(t, p), windowOrder(t, reloaded))
}
