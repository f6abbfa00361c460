package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabgrouper/internal/application/port"
	portmocks "github.com/bnema/tabgrouper/internal/application/port/mocks"
	"github.com/bnema/tabgrouper/internal/application/usecase"
	"github.com/bnema/tabgrouper/internal/domain/entity"
)

// A=1 B=2 C=3 D=4 in group 7 at window indices 2..5, after two ungrouped tabs.
func reorderSnapshot() *entity.CustomSnapshot {
	return &entity.CustomSnapshot{
		Groups: []*entity.NativeGroup{
			{
				ID:    7,
				Title: entity.DefaultGroupTitle(7),
				Color: entity.ColorGrey,
				Tabs: []*entity.Tab{
					tab(1, 2, 7, "https://a.test"),
					tab(2, 3, 7, "https://b.test"),
					tab(3, 4, 7, "https://c.test"),
					tab(4, 5, 7, "https://d.test"),
				},
			},
			{
				ID:    8,
				Title: "Reading",
				Color: entity.ColorPurple,
				Tabs:  []*entity.Tab{tab(5, 6, 8, "https://e.test")},
			},
			{
				ID:    9,
				Title: entity.DefaultGroupTitle(9),
				Color: entity.ColorGrey,
				Tabs:  []*entity.Tab{tab(6, 7, 9, "https://f.test")},
			},
		},
		UngroupedTabs: []*entity.Tab{
			tab(10, 0, entity.NoGroup, "https://x.test"),
			tab(11, 1, entity.NoGroup, "https://y.test"),
		},
	}
}

func findTab(t *testing.T, s *entity.CustomSnapshot, id entity.TabID) *entity.Tab {
	t.Helper()
	found, _, ok := s.FindTab(id)
	require.True(t, ok)
	return found
}

func TestComputeDrop_WithinGroupMovesInAscendingOrder(t *testing.T) {
	ctx := testContext()
	snapshot := reorderSnapshot()
	uc := usecase.NewReorderTabsUseCase(portmocks.NewMockTabProvider(t), nil)

	drag := entity.DragContext{
		Tab:           findTab(t, snapshot, 1),
		SourceGroupID: 7,
		TargetGroupID: 7,
		TargetIndex:   2,
		Side:          entity.SideAfter,
	}
	plan, err := uc.ComputeDrop(ctx, snapshot, drag)
	require.NoError(t, err)

	// [A,B,C,D] -> [B,C,A,D]
	assert.Equal(t, []entity.Operation{
		entity.MoveOp(2, 2),
		entity.MoveOp(3, 3),
		entity.MoveOp(1, 4),
	}, plan.Operations)
	assert.Equal(t, 3, plan.Count(entity.OpMove))
	assert.Equal(t, usecase.ReorderIdle, uc.State())
}

func TestComputeDrop_WithinGroupTable(t *testing.T) {
	tests := []struct {
		name        string
		tabID       entity.TabID
		targetIndex int
		side        entity.InsertionSide
		want        []entity.Operation
	}{
		{
			name:        "last before first",
			tabID:       4,
			targetIndex: 0,
			side:        entity.SideBefore,
			// [D,A,B,C]
			want: []entity.Operation{
				entity.MoveOp(4, 2), entity.MoveOp(1, 3), entity.MoveOp(2, 4), entity.MoveOp(3, 5),
			},
		},
		{
			name:        "second after last",
			tabID:       2,
			targetIndex: 3,
			side:        entity.SideAfter,
			// [A,C,D,B]
			want: []entity.Operation{
				entity.MoveOp(3, 3), entity.MoveOp(4, 4), entity.MoveOp(2, 5),
			},
		},
		{
			name:        "index past end is clamped",
			tabID:       1,
			targetIndex: 40,
			side:        entity.SideAfter,
			want: []entity.Operation{
				entity.MoveOp(2, 2), entity.MoveOp(3, 3), entity.MoveOp(4, 4), entity.MoveOp(1, 5),
			},
		},
		{
			name:        "before itself is unchanged",
			tabID:       2,
			targetIndex: 1,
			side:        entity.SideBefore,
			want:        nil,
		},
		{
			name:        "after previous is unchanged",
			tabID:       3,
			targetIndex: 1,
			side:        entity.SideAfter,
			want:        nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			snapshot := reorderSnapshot()
			uc := usecase.NewReorderTabsUseCase(portmocks.NewMockTabProvider(t), nil)

			plan, err := uc.ComputeDrop(ctx, snapshot, entity.DragContext{
				Tab:           findTab(t, snapshot, tt.tabID),
				SourceGroupID: 7,
				TargetGroupID: 7,
				TargetIndex:   tt.targetIndex,
				Side:          tt.side,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, plan.Operations)
		})
	}
}

func TestComputeDrop_UngroupedBucketUsesUngroupedBase(t *testing.T) {
	ctx := testContext()
	snapshot := reorderSnapshot()
	uc := usecase.NewReorderTabsUseCase(portmocks.NewMockTabProvider(t), nil)

	plan, err := uc.ComputeDrop(ctx, snapshot, entity.DragContext{
		Tab:           findTab(t, snapshot, 11),
		SourceGroupID: entity.NoGroup,
		TargetGroupID: entity.NoGroup,
		TargetIndex:   0,
		Side:          entity.SideBefore,
	})
	require.NoError(t, err)
	assert.Equal(t, []entity.Operation{entity.MoveOp(11, 0), entity.MoveOp(10, 1)}, plan.Operations)
}

func TestComputeDrop_NoOpDrops(t *testing.T) {
	ctx := testContext()
	snapshot := reorderSnapshot()
	uc := usecase.NewReorderTabsUseCase(portmocks.NewMockTabProvider(t), nil)

	t.Run("missing tab", func(t *testing.T) {
		plan, err := uc.ComputeDrop(ctx, snapshot, entity.DragContext{SourceGroupID: 7, TargetGroupID: 8})
		require.NoError(t, err)
		assert.True(t, plan.Empty())
	})

	t.Run("same group container", func(t *testing.T) {
		drag := entity.DragContext{
			Tab:           findTab(t, snapshot, 1),
			SourceGroupID: 7,
			TargetGroupID: 7,
			TargetIndex:   entity.NoTargetIndex,
		}
		require.ErrorIs(t, uc.ValidateDrop(snapshot, drag), entity.ErrNoOpDrop)

		plan, err := uc.ComputeDrop(ctx, snapshot, drag)
		require.NoError(t, err)
		assert.True(t, plan.Empty())
		assert.Equal(t, usecase.ReorderIdle, uc.State())
	})

	t.Run("zero tab id", func(t *testing.T) {
		drag := entity.DragContext{
			Tab:           &entity.Tab{},
			SourceGroupID: 7,
			TargetGroupID: 8,
			TargetIndex:   0,
		}
		require.ErrorIs(t, uc.ValidateDrop(snapshot, drag), entity.ErrNoOpDrop)

		plan, err := uc.ComputeDrop(ctx, snapshot, drag)
		require.NoError(t, err)
		assert.True(t, plan.Empty())
	})
}

func TestComputeDrop_CrossGroup(t *testing.T) {
	tests := []struct {
		name   string
		tabID  entity.TabID
		source entity.GroupID
		target entity.GroupID
		want   []entity.Operation
	}{
		{
			name:   "to ungrouped",
			tabID:  1,
			source: 7,
			target: entity.NoGroup,
			want:   []entity.Operation{entity.UngroupOp(1)},
		},
		{
			name:   "to default group",
			tabID:  10,
			source: entity.NoGroup,
			target: 9,
			want:   []entity.Operation{entity.GroupOp(10, 9)},
		},
		{
			name:   "to customized group",
			tabID:  2,
			source: 7,
			target: 8,
			want: []entity.Operation{
				entity.GroupOp(2, 8),
				entity.UpdateGroupOp(8, "Reading", entity.ColorPurple),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			snapshot := reorderSnapshot()
			uc := usecase.NewReorderTabsUseCase(portmocks.NewMockTabProvider(t), nil)

			plan, err := uc.ComputeDrop(ctx, snapshot, entity.DragContext{
				Tab:           findTab(t, snapshot, tt.tabID),
				SourceGroupID: tt.source,
				TargetGroupID: tt.target,
				TargetIndex:   0,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, plan.Operations)
			assert.Zero(t, plan.Count(entity.OpMove))
		})
	}
}

func TestComputeDrop_StaleDrops(t *testing.T) {
	ctx := testContext()
	snapshot := reorderSnapshot()
	uc := usecase.NewReorderTabsUseCase(portmocks.NewMockTabProvider(t), nil)

	t.Run("tab gone", func(t *testing.T) {
		_, err := uc.ComputeDrop(ctx, snapshot, entity.DragContext{
			Tab:           tab(99, 0, 7, ""),
			SourceGroupID: 7,
			TargetGroupID: 8,
		})
		require.ErrorIs(t, err, entity.ErrStaleDrop)
		require.ErrorIs(t, err, entity.ErrTabNotFound)
	})

	t.Run("tab moved groups", func(t *testing.T) {
		_, err := uc.ComputeDrop(ctx, snapshot, entity.DragContext{
			Tab:           findTab(t, snapshot, 5),
			SourceGroupID: 7,
			TargetGroupID: 9,
		})
		require.ErrorIs(t, err, entity.ErrStaleDrop)
	})

	t.Run("target gone", func(t *testing.T) {
		_, err := uc.ComputeDrop(ctx, snapshot, entity.DragContext{
			Tab:           findTab(t, snapshot, 1),
			SourceGroupID: 7,
			TargetGroupID: 42,
		})
		require.ErrorIs(t, err, entity.ErrStaleDrop)
		require.ErrorIs(t, err, entity.ErrGroupNotFound)
	})

	assert.Equal(t, usecase.ReorderIdle, uc.State(), "a rejected drop leaves the engine idle")
}

func TestDrop_ZeroTabIDIsNoOp(t *testing.T) {
	ctx := testContext()
	provider := portmocks.NewMockTabProvider(t)
	snapshot := reorderSnapshot()

	var infos []*entity.NativeGroupInfo
	var tabs []*entity.Tab
	tabs = append(tabs, snapshot.UngroupedTabs...)
	for _, g := range snapshot.Groups {
		infos = append(infos, &entity.NativeGroupInfo{ID: g.ID, Title: g.Title, Color: g.Color})
		tabs = append(tabs, g.Tabs...)
	}
	provider.EXPECT().QueryGroups(mock.Anything, mock.Anything).Return(infos, nil)
	provider.EXPECT().QueryTabs(mock.Anything, mock.Anything).Return(tabs, nil)

	uc := usecase.NewReorderTabsUseCase(provider, nil)
	result, err := uc.Drop(ctx, entity.DragContext{
		Tab:           &entity.Tab{ID: 0},
		SourceGroupID: entity.NoGroup,
		TargetGroupID: 7,
		TargetIndex:   0,
	})
	require.NoError(t, err)
	assert.Zero(t, result.Applied)
	assert.True(t, result.Plan.Empty())
	assert.Equal(t, usecase.ReorderIdle, uc.State())
	provider.AssertNotCalled(t, "MoveTab", mock.Anything, mock.Anything, mock.Anything)
	provider.AssertNotCalled(t, "GroupTabs", mock.Anything, mock.Anything, mock.Anything)
}

func TestApply_StopsAtFirstFailure(t *testing.T) {
	ctx := testContext()
	provider := portmocks.NewMockTabProvider(t)
	uc := usecase.NewReorderTabsUseCase(provider, nil)

	plan := &entity.OperationPlan{}
	plan.Append(entity.MoveOp(2, 2), entity.MoveOp(3, 3), entity.MoveOp(1, 4))

	cause := errors.New("No tab with id: 3.")
	provider.EXPECT().MoveTab(mock.Anything, entity.TabID(2), 2).Return(&entity.Tab{ID: 2, Index: 2}, nil).Once()
	provider.EXPECT().MoveTab(mock.Anything, entity.TabID(3), 3).Return(nil, cause).Once()

	err := uc.Apply(ctx, plan)
	require.Error(t, err)

	var partial *entity.PartialApplyFailure
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, 1, partial.Applied)
	assert.Equal(t, 3, partial.Total)
	assert.Equal(t, entity.MoveOp(3, 3), partial.Operation)

	var failure *entity.ProviderCallFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, "move_tab", failure.Call)
	require.ErrorIs(t, err, cause)

	provider.AssertNotCalled(t, "MoveTab", mock.Anything, entity.TabID(1), 4)
	assert.Equal(t, usecase.ReorderIdle, uc.State())
}

func TestApply_IssuesEveryOperationKind(t *testing.T) {
	ctx := testContext()
	provider := portmocks.NewMockTabProvider(t)
	uc := usecase.NewReorderTabsUseCase(provider, nil)

	plan := &entity.OperationPlan{}
	plan.Append(
		entity.UngroupOp(4),
		entity.GroupOp(1, 8),
		entity.UpdateGroupOp(8, "Reading", entity.ColorPurple),
	)

	var order []string
	provider.EXPECT().UngroupTabs(mock.Anything, []entity.TabID{4}).
		Run(func(_ context.Context, _ []entity.TabID) { order = append(order, "ungroup") }).
		Return(nil)
	provider.EXPECT().GroupTabs(mock.Anything, []entity.TabID{1}, entity.GroupID(8)).
		Run(func(_ context.Context, _ []entity.TabID, _ entity.GroupID) { order = append(order, "group") }).
		Return(entity.GroupID(8), nil)
	provider.EXPECT().UpdateGroup(mock.Anything, entity.GroupID(8), mock.MatchedBy(func(u port.GroupUpdate) bool {
		return u.Title != nil && *u.Title == "Reading" &&
			u.Color != nil && *u.Color == entity.ColorPurple &&
			u.Collapsed == nil
	})).
		Run(func(_ context.Context, _ entity.GroupID, _ port.GroupUpdate) { order = append(order, "update") }).
		Return(&entity.NativeGroupInfo{ID: 8}, nil)

	require.NoError(t, uc.Apply(ctx, plan))
	assert.Equal(t, []string{"ungroup", "group", "update"}, order)
}

func TestDrop_UsesFreshSnapshot(t *testing.T) {
	ctx := testContext()
	provider := portmocks.NewMockTabProvider(t)
	snapshot := reorderSnapshot()

	var infos []*entity.NativeGroupInfo
	var tabs []*entity.Tab
	tabs = append(tabs, snapshot.UngroupedTabs...)
	for _, g := range snapshot.Groups {
		infos = append(infos, &entity.NativeGroupInfo{ID: g.ID, Title: g.Title, Color: g.Color})
		tabs = append(tabs, g.Tabs...)
	}
	provider.EXPECT().QueryGroups(mock.Anything, mock.Anything).Return(infos, nil)
	provider.EXPECT().QueryTabs(mock.Anything, mock.Anything).Return(tabs, nil)
	provider.EXPECT().UngroupTabs(mock.Anything, []entity.TabID{6}).Return(nil)

	uc := usecase.NewReorderTabsUseCase(provider, nil)
	result, err := uc.Drop(ctx, entity.DragContext{
		Tab:           &entity.Tab{ID: 6},
		SourceGroupID: 9,
		TargetGroupID: entity.NoGroup,
		TargetIndex:   0,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Applied)
	assert.Equal(t, []entity.Operation{entity.UngroupOp(6)}, result.Plan.Operations)
	provider.AssertNotCalled(t, "MoveTab", mock.Anything, mock.Anything, mock.Anything)
	provider.AssertNotCalled(t, "UpdateGroup", mock.Anything, mock.Anything, mock.Anything)
}

func TestDrop_ReportsAppliedCountOnFailure(t *testing.T) {
	ctx := testContext()
	provider := portmocks.NewMockTabProvider(t)

	provider.EXPECT().QueryGroups(mock.Anything, mock.Anything).
		Return([]*entity.NativeGroupInfo{{ID: 8, Title: "Reading", Color: entity.ColorPurple}}, nil)
	provider.EXPECT().QueryTabs(mock.Anything, mock.Anything).
		Return([]*entity.Tab{tab(1, 0, entity.NoGroup, "https://a.test"), tab(2, 1, 8, "https://b.test")}, nil)
	provider.EXPECT().GroupTabs(mock.Anything, []entity.TabID{1}, entity.GroupID(8)).Return(entity.GroupID(8), nil)
	provider.EXPECT().UpdateGroup(mock.Anything, entity.GroupID(8), mock.Anything).Return(nil, errors.New("closed"))

	uc := usecase.NewReorderTabsUseCase(provider, nil)
	result, err := uc.Drop(ctx, entity.DragContext{
		Tab:           &entity.Tab{ID: 1},
		SourceGroupID: entity.NoGroup,
		TargetGroupID: 8,
		TargetIndex:   0,
	})
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 1, result.Applied)
	assert.Equal(t, 2, result.Plan.Len())
}
