package usecase

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/bnema/tabgrouper/internal/domain/entity"
)

// ErrDropInProgress is returned when a drop arrives while another applies.
var ErrDropInProgress = errors.New("another drop is being applied")

// DropQueue lets at most one drop run at a time. Drops arriving while one is
// in flight are rejected instead of waiting, so plans never interleave.
type DropQueue struct {
	engine *ReorderTabsUseCase
	busy   atomic.Bool
}

// NewDropQueue wraps engine.
func NewDropQueue(engine *ReorderTabsUseCase) *DropQueue {
	return &DropQueue{engine: engine}
}

// TryDrop runs the drop unless another one is in flight.
func (q *DropQueue) TryDrop(ctx context.Context, drag entity.DragContext) (*DropResult, error) {
	if !q.busy.CompareAndSwap(false, true) {
		return nil, ErrDropInProgress
	}
	defer q.busy.Store(false)
	return q.engine.Drop(ctx, drag)
}

// Busy reports whether a drop is in flight.
func (q *DropQueue) Busy() bool {
	return q.busy.Load()
}
