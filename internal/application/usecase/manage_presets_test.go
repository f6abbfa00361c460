package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	portmocks "github.com/bnema/tabgrouper/internal/application/port/mocks"
	"github.com/bnema/tabgrouper/internal/application/usecase"
	"github.com/bnema/tabgrouper/internal/domain/entity"
	repomocks "github.com/bnema/tabgrouper/internal/domain/repository/mocks"
)

func TestManagePresets_SaveKeepsCreatedAt(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockGroupPresetRepository(ctrl)

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	repo.EXPECT().Get(gomock.Any(), "work").Return(&entity.GroupPreset{Name: "work", CreatedAt: created}, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *entity.GroupPreset) error {
			assert.Equal(t, "work", p.Name)
			assert.Equal(t, "Work", p.Title)
			assert.Equal(t, created, p.CreatedAt)
			assert.False(t, p.UpdatedAt.IsZero())
			return nil
		})

	uc := usecase.NewManagePresetsUseCase(repo, nil)
	require.NoError(t, uc.Save(ctx, &entity.GroupPreset{Name: "  work ", Title: " Work", Color: entity.ColorBlue}))
}

func TestManagePresets_SaveRejectsInvalid(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockGroupPresetRepository(ctrl)
	uc := usecase.NewManagePresetsUseCase(repo, nil)

	require.ErrorIs(t, uc.Save(ctx, &entity.GroupPreset{Name: " ", Color: entity.ColorBlue}), entity.ErrInvalidPreset)
	require.ErrorIs(t, uc.Save(ctx, &entity.GroupPreset{Name: "x", Color: "teal"}), entity.ErrInvalidColor)
	require.ErrorIs(t, uc.Save(ctx, nil), entity.ErrInvalidPreset)
}

func TestManagePresets_GetMissing(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockGroupPresetRepository(ctrl)
	repo.EXPECT().Get(gomock.Any(), "nope").Return(nil, nil)

	_, err := usecase.NewManagePresetsUseCase(repo, nil).Get(ctx, "nope")
	require.ErrorIs(t, err, entity.ErrPresetNotFound)
}

func TestManagePresets_ListAndDelete(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockGroupPresetRepository(ctrl)

	repo.EXPECT().List(gomock.Any()).Return([]*entity.GroupPreset{{Name: "a"}, {Name: "b"}}, nil)
	repo.EXPECT().Delete(gomock.Any(), "a").Return(nil)
	repo.EXPECT().Delete(gomock.Any(), "b").Return(errors.New("locked"))

	uc := usecase.NewManagePresetsUseCase(repo, nil)
	presets, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, presets, 2)

	require.NoError(t, uc.Delete(ctx, " a "))
	err = uc.Delete(ctx, "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete preset")
}

func TestManagePresets_ApplyToGroup(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockGroupPresetRepository(ctrl)
	provider := portmocks.NewMockTabProvider(t)

	repo.EXPECT().Get(gomock.Any(), "reading").
		Return(&entity.GroupPreset{Name: "reading", Title: "Reading", Color: entity.ColorPurple}, nil)
	provider.EXPECT().UpdateGroup(mock.Anything, entity.GroupID(6), mock.Anything).
		Return(&entity.NativeGroupInfo{ID: 6}, nil).Twice()

	group := &entity.NativeGroup{ID: 6, Title: "Group 6", Color: entity.ColorGrey}
	uc := usecase.NewManagePresetsUseCase(repo, usecase.NewSyncGroupMetadataUseCase(provider))
	require.NoError(t, uc.ApplyToGroup(ctx, group, "reading"))
	assert.Equal(t, "Reading", group.Title)
	assert.Equal(t, entity.ColorPurple, group.Color)
}

func TestManagePresets_ApplyToGroupSkipsMatchingFields(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockGroupPresetRepository(ctrl)
	provider := portmocks.NewMockTabProvider(t)

	repo.EXPECT().Get(gomock.Any(), "same").
		Return(&entity.GroupPreset{Name: "same", Title: "", Color: entity.ColorGreen}, nil)

	group := &entity.NativeGroup{ID: 6, Title: "Mine", Color: entity.ColorGreen}
	uc := usecase.NewManagePresetsUseCase(repo, usecase.NewSyncGroupMetadataUseCase(provider))
	require.NoError(t, uc.ApplyToGroup(ctx, group, "same"))
	assert.Equal(t, "Mine", group.Title)
}
