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

func collapsedUpdate(want bool) any {
	return mock.MatchedBy(func(u port.GroupUpdate) bool {
		return u.Collapsed != nil && *u.Collapsed == want && u.Title == nil && u.Color == nil
	})
}

func TestSetCollapsed_KeepsFlagOnSuccess(t *testing.T) {
	ctx := testContext()
	provider := portmocks.NewMockTabProvider(t)
	group := &entity.NativeGroup{ID: 3, Title: "Docs"}

	provider.EXPECT().UpdateGroup(mock.Anything, entity.GroupID(3), collapsedUpdate(true)).
		Return(&entity.NativeGroupInfo{ID: 3, Collapsed: true}, nil)

	uc := usecase.NewSyncGroupMetadataUseCase(provider)
	require.NoError(t, uc.SetCollapsed(ctx, group, true))
	assert.True(t, group.Collapsed)
}

func TestSetCollapsed_RevertsOnlyOnFailure(t *testing.T) {
	for _, prior := range []bool{false, true} {
		ctx := testContext()
		provider := portmocks.NewMockTabProvider(t)
		group := &entity.NativeGroup{ID: 3, Collapsed: prior}

		cause := errors.New("No group with id: 3.")
		provider.EXPECT().UpdateGroup(mock.Anything, entity.GroupID(3), collapsedUpdate(!prior)).
			Run(func(_ context.Context, _ entity.GroupID, _ port.GroupUpdate) {
				// The local flag is already flipped while the provider runs.
				assert.Equal(t, !prior, group.Collapsed)
			}).
			Return(nil, cause)

		uc := usecase.NewSyncGroupMetadataUseCase(provider)
		err := uc.SetCollapsed(ctx, group, !prior)
		require.ErrorIs(t, err, cause)

		var failure *entity.ProviderCallFailure
		require.ErrorAs(t, err, &failure)
		assert.Equal(t, prior, group.Collapsed)
	}
}

func TestSetCollapsed_NilGroup(t *testing.T) {
	uc := usecase.NewSyncGroupMetadataUseCase(portmocks.NewMockTabProvider(t))
	require.ErrorIs(t, uc.SetCollapsed(testContext(), nil, true), entity.ErrGroupNotFound)
}

func TestRename_RevertsOnFailure(t *testing.T) {
	ctx := testContext()
	provider := portmocks.NewMockTabProvider(t)
	group := &entity.NativeGroup{ID: 4, Title: "Old"}

	provider.EXPECT().UpdateGroup(mock.Anything, entity.GroupID(4), mock.Anything).Return(nil, errors.New("gone"))

	uc := usecase.NewSyncGroupMetadataUseCase(provider)
	require.Error(t, uc.Rename(ctx, group, "New"))
	assert.Equal(t, "Old", group.Title)
}

func TestRename_EmptyTitleFallsBackToDefault(t *testing.T) {
	ctx := testContext()
	provider := portmocks.NewMockTabProvider(t)
	group := &entity.NativeGroup{ID: 4, Title: "Old"}

	provider.EXPECT().UpdateGroup(mock.Anything, entity.GroupID(4), mock.MatchedBy(func(u port.GroupUpdate) bool {
		return u.Title != nil && *u.Title == ""
	})).Return(&entity.NativeGroupInfo{ID: 4}, nil)

	uc := usecase.NewSyncGroupMetadataUseCase(provider)
	require.NoError(t, uc.Rename(ctx, group, "   "))
	assert.Equal(t, "Group 4", group.Title)
}

func TestRecolor_RejectsInvalidColorBeforeProvider(t *testing.T) {
	ctx := testContext()
	provider := portmocks.NewMockTabProvider(t)
	group := &entity.NativeGroup{ID: 4, Color: entity.ColorBlue}

	uc := usecase.NewSyncGroupMetadataUseCase(provider)
	err := uc.Recolor(ctx, group, "magenta")
	require.ErrorIs(t, err, entity.ErrInvalidColor)
	assert.Equal(t, entity.ColorBlue, group.Color)
	provider.AssertNotCalled(t, "UpdateGroup", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecolor_Success(t *testing.T) {
	ctx := testContext()
	provider := portmocks.NewMockTabProvider(t)
	group := &entity.NativeGroup{ID: 4, Color: entity.ColorBlue}

	provider.EXPECT().UpdateGroup(mock.Anything, entity.GroupID(4), mock.MatchedBy(func(u port.GroupUpdate) bool {
		return u.Color != nil && *u.Color == entity.ColorRed
	})).Return(&entity.NativeGroupInfo{ID: 4, Color: entity.ColorRed}, nil)

	uc := usecase.NewSyncGroupMetadataUseCase(provider)
	require.NoError(t, uc.Recolor(ctx, group, entity.ColorRed))
	assert.Equal(t, entity.ColorRed, group.Color)
}

func TestReconcile_CopiesNativeChanges(t *testing.T) {
	ctx := testContext()
	provider := portmocks.NewMockTabProvider(t)

	snapshot := &entity.CustomSnapshot{Groups: []*entity.NativeGroup{
		{ID: 1, Title: "Same", Color: entity.ColorGreen},
		{ID: 2, Title: "Work", Color: entity.ColorBlue},
		{ID: 3, Title: "Gone", Color: entity.ColorRed},
	}}
	provider.EXPECT().QueryGroups(mock.Anything, mock.Anything).Return([]*entity.NativeGroupInfo{
		{ID: 1, Title: "Same", Color: entity.ColorGreen},
		{ID: 2, Title: "Work", Color: entity.ColorBlue, Collapsed: true},
		{ID: 5, Title: "New", Color: entity.ColorCyan},
	}, nil)

	uc := usecase.NewSyncGroupMetadataUseCase(provider)
	changed, err := uc.Reconcile(ctx, snapshot)
	require.NoError(t, err)
	assert.Equal(t, []entity.GroupID{2}, changed)
	assert.True(t, snapshot.Groups[1].Collapsed)
	assert.Equal(t, "Gone", snapshot.Groups[2].Title)
	assert.Len(t, snapshot.Groups, 3)
}

func TestCreateGroup_GroupsThenUpdates(t *testing.T) {
	ctx := testContext()
	provider := portmocks.NewMockTabProvider(t)

	provider.EXPECT().GroupTabs(mock.Anything, []entity.TabID{1, 2}, entity.NoGroup).Return(entity.GroupID(12), nil)
	provider.EXPECT().UpdateGroup(mock.Anything, entity.GroupID(12), mock.MatchedBy(func(u port.GroupUpdate) bool {
		return u.Title != nil && *u.Title == "Research" && u.Color != nil && *u.Color == entity.ColorYellow
	})).Return(&entity.NativeGroupInfo{ID: 12}, nil)

	uc := usecase.NewSyncGroupMetadataUseCase(provider)
	id, err := uc.CreateGroup(ctx, []entity.TabID{1, 2}, " Research ", entity.ColorYellow)
	require.NoError(t, err)
	assert.Equal(t, entity.GroupID(12), id)
}

func TestCreateGroup_Validation(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewSyncGroupMetadataUseCase(portmocks.NewMockTabProvider(t))

	_, err := uc.CreateGroup(ctx, nil, "x", entity.ColorBlue)
	require.Error(t, err)

	_, err = uc.CreateGroup(ctx, []entity.TabID{1}, "x", "teal")
	require.ErrorIs(t, err, entity.ErrInvalidColor)
}
