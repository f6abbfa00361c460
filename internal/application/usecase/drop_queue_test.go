package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabgrouper/internal/application/port"
	portmocks "github.com/bnema/tabgrouper/internal/application/port/mocks"
	"github.com/bnema/tabgrouper/internal/application/usecase"
	"github.com/bnema/tabgrouper/internal/domain/entity"
)

func TestDropQueue_RejectsConcurrentDrop(t *testing.T) {
	ctx := testContext()
	provider := portmocks.NewMockTabProvider(t)

	entered := make(chan struct{})
	release := make(chan struct{})
	provider.EXPECT().QueryGroups(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, port.GroupQuery) ([]*entity.NativeGroupInfo, error) {
			close(entered)
			<-release
			return []*entity.NativeGroupInfo{}, nil
		}).Once()
	provider.EXPECT().QueryTabs(mock.Anything, mock.Anything).
		Return([]*entity.Tab{tab(1, 0, entity.NoGroup, "https://a.test")}, nil).Once()

	queue := usecase.NewDropQueue(usecase.NewReorderTabsUseCase(provider, nil))
	drag := entity.DragContext{
		Tab:           &entity.Tab{ID: 1},
		SourceGroupID: entity.NoGroup,
		TargetGroupID: entity.NoGroup,
		TargetIndex:   0,
	}

	done := make(chan error, 1)
	go func() {
		_, err := queue.TryDrop(ctx, drag)
		done <- err
	}()

	<-entered
	assert.True(t, queue.Busy())
	_, err := queue.TryDrop(ctx, drag)
	require.ErrorIs(t, err, usecase.ErrDropInProgress)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, queue.Busy())
}
