package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/bnema/tabgrouper/internal/application/port"
	"github.com/bnema/tabgrouper/internal/domain/entity"
	"github.com/bnema/tabgrouper/internal/logging"
)

// ReorderState is the phase of the drop currently handled by the engine.
type ReorderState int32

const (
	ReorderIdle ReorderState = iota
	ReorderValidating
	ReorderComputing
	ReorderApplying
	ReorderFailed
)

func (s ReorderState) String() string {
	switch s {
	case ReorderIdle:
		return "idle"
	case ReorderValidating:
		return "validating"
	case ReorderComputing:
		return "computing"
	case ReorderApplying:
		return "applying"
	case ReorderFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// DropResult reports what a drop did.
type DropResult struct {
	Plan    *entity.OperationPlan `json:"plan"`
	Applied int                   `json:"applied"`
}

// ReorderTabsUseCase turns drop gestures into provider operations.
// It does not serialize concurrent drops; see DropQueue.
type ReorderTabsUseCase struct {
	provider  port.TabProvider
	snapshots *BuildSnapshotUseCase
	state     atomic.Int32
}

// NewReorderTabsUseCase creates a new reorder use case.
func NewReorderTabsUseCase(provider port.TabProvider, snapshots *BuildSnapshotUseCase) *ReorderTabsUseCase {
	if snapshots == nil {
		snapshots = NewBuildSnapshotUseCase(provider)
	}
	return &ReorderTabsUseCase{provider: provider, snapshots: snapshots}
}

// State returns the phase of the in-flight drop, or ReorderIdle.
func (uc *ReorderTabsUseCase) State() ReorderState {
	return ReorderState(uc.state.Load())
}

func (uc *ReorderTabsUseCase) transition(ctx context.Context, next ReorderState) {
	prev := ReorderState(uc.state.Swap(int32(next)))
	logging.FromContext(ctx).Trace().
		Str("from", prev.String()).
		Str("to", next.String()).
		Msg("reorder state")
}

// Drop builds a fresh snapshot, computes the plan for drag and applies it.
// A no-op drop succeeds with an empty plan.
func (uc *ReorderTabsUseCase) Drop(ctx context.Context, drag entity.DragContext) (*DropResult, error) {
	log := logging.FromContext(ctx)

	snapshot, err := uc.snapshots.BuildCustomSnapshot(ctx)
	if err != nil {
		uc.fail(ctx)
		return nil, err
	}

	plan, err := uc.ComputeDrop(ctx, snapshot, drag)
	if err != nil {
		return nil, err
	}
	result := &DropResult{Plan: plan}
	if plan.Empty() {
		return result, nil
	}

	if err := uc.Apply(ctx, plan); err != nil {
		var partial *entity.PartialApplyFailure
		if errors.As(err, &partial) {
			result.Applied = partial.Applied
		}
		return result, err
	}
	result.Applied = plan.Len()

	log.Info().
		Int64("tab_id", int64(drag.Tab.ID)).
		Int64("target_group", int64(drag.TargetGroupID)).
		Int("operations", plan.Len()).
		Msg("drop applied")
	return result, nil
}

// ValidateDrop checks drag against snapshot.
// It returns entity.ErrNoOpDrop when nothing has to happen and wraps
// entity.ErrStaleDrop when the drag no longer matches the snapshot.
func (uc *ReorderTabsUseCase) ValidateDrop(snapshot *entity.CustomSnapshot, drag entity.DragContext) error {
	if drag.Tab == nil || drag.Tab.ID == 0 {
		return entity.ErrNoOpDrop
	}
	if drag.SameGroup() && drag.TargetIndex == entity.NoTargetIndex {
		return entity.ErrNoOpDrop
	}

	_, current, found := snapshot.FindTab(drag.Tab.ID)
	if !found {
		return fmt.Errorf("%w: tab %d: %w", entity.ErrStaleDrop, drag.Tab.ID, entity.ErrTabNotFound)
	}
	if current != drag.SourceGroupID {
		return fmt.Errorf("%w: tab %d is in group %d, not %d",
			entity.ErrStaleDrop, drag.Tab.ID, current, drag.SourceGroupID)
	}
	if _, ok := snapshot.Bucket(drag.TargetGroupID); !ok {
		return fmt.Errorf("%w: group %d: %w", entity.ErrStaleDrop, drag.TargetGroupID, entity.ErrGroupNotFound)
	}
	return nil
}

// ComputeDrop returns the ordered operations that realize drag.
// The snapshot is not modified and the state is back to ReorderIdle on return.
func (uc *ReorderTabsUseCase) ComputeDrop(
	ctx context.Context,
	snapshot *entity.CustomSnapshot,
	drag entity.DragContext,
) (*entity.OperationPlan, error) {
	log := logging.FromContext(ctx)
	plan := &entity.OperationPlan{}

	uc.transition(ctx, ReorderValidating)
	if err := uc.ValidateDrop(snapshot, drag); err != nil {
		if errors.Is(err, entity.ErrNoOpDrop) {
			log.Debug().Msg("drop is a no-op")
			uc.transition(ctx, ReorderIdle)
			return plan, nil
		}
		uc.fail(ctx)
		return nil, err
	}

	uc.transition(ctx, ReorderComputing)
	if !drag.SameGroup() {
		computeCrossGroup(plan, snapshot, drag)
	} else {
		bucket, _ := snapshot.Bucket(drag.TargetGroupID)
		computeReorder(plan, bucket, drag)
	}

	log.Debug().
		Int64("tab_id", int64(drag.Tab.ID)).
		Int64("source_group", int64(drag.SourceGroupID)).
		Int64("target_group", int64(drag.TargetGroupID)).
		Int("target_index", drag.TargetIndex).
		Str("side", drag.Side.String()).
		Int("operations", plan.Len()).
		Msg("computed drop plan")
	uc.transition(ctx, ReorderIdle)
	return plan, nil
}

func computeCrossGroup(plan *entity.OperationPlan, snapshot *entity.CustomSnapshot, drag entity.DragContext) {
	if drag.TargetGroupID == entity.NoGroup {
		plan.Append(entity.UngroupOp(drag.Tab.ID))
		return
	}
	plan.Append(entity.GroupOp(drag.Tab.ID, drag.TargetGroupID))
	if target := snapshot.Group(drag.TargetGroupID); target != nil && !target.HasDefaultMetadata() {
		plan.Append(entity.UpdateGroupOp(target.ID, target.Title, target.Color.OrDefault()))
	}
}

func computeReorder(plan *entity.OperationPlan, bucket []*entity.Tab, drag entity.DragContext) {
	base, ok := entity.MinIndex(bucket)
	if !ok {
		return
	}
	before := entity.TabIDs(bucket)
	after := reorderIDs(before, drag.Tab.ID, drag.TargetIndex, drag.Side)

	// Ascending order keeps every earlier position final before the next move.
	for pos, id := range after {
		if before[pos] != id {
			plan.Append(entity.MoveOp(id, base+pos))
		}
	}
}

// reorderIDs moves id within ids so that it lands on side of the tab that
// was at targetIndex. The input slice is left untouched.
func reorderIDs(ids []entity.TabID, id entity.TabID, targetIndex int, side entity.InsertionSide) []entity.TabID {
	from := -1
	for i, candidate := range ids {
		if candidate == id {
			from = i
			break
		}
	}
	out := make([]entity.TabID, 0, len(ids))
	if from < 0 {
		return append(out, ids...)
	}
	out = append(out, ids[:from]...)
	out = append(out, ids[from+1:]...)

	insert := targetIndex
	if insert > from {
		insert--
	}
	if side == entity.SideAfter {
		insert++
	}
	insert = max(0, min(insert, len(out)))

	out = append(out, 0)
	copy(out[insert+1:], out[insert:])
	out[insert] = id
	return out
}

// Apply issues the plan's operations one at a time. On the first failure it
// stops and returns a *entity.PartialApplyFailure; earlier operations stay
// applied and nothing is retried or rolled back.
func (uc *ReorderTabsUseCase) Apply(ctx context.Context, plan *entity.OperationPlan) error {
	log := logging.FromContext(ctx)
	total := plan.Len()
	if total == 0 {
		uc.transition(ctx, ReorderIdle)
		return nil
	}

	uc.transition(ctx, ReorderApplying)
	for i, op := range plan.Operations {
		if err := uc.applyOne(ctx, op); err != nil {
			failure := entity.NewPartialApplyFailure(i, total, op, err)
			log.Warn().
				Err(err).
				Int("applied", i).
				Int("total", total).
				Str("operation", op.String()).
				Msg("plan apply stopped")
			uc.fail(ctx)
			return failure
		}
		log.Trace().Str("operation", op.String()).Msg("applied operation")
	}

	uc.transition(ctx, ReorderIdle)
	return nil
}

func (uc *ReorderTabsUseCase) applyOne(ctx context.Context, op entity.Operation) error {
	switch op.Kind {
	case entity.OpMove:
		if _, err := uc.provider.MoveTab(ctx, op.TabID, op.Index); err != nil {
			return entity.NewProviderCallFailure("move_tab", err)
		}
	case entity.OpGroup:
		if _, err := uc.provider.GroupTabs(ctx, []entity.TabID{op.TabID}, op.GroupID); err != nil {
			return entity.NewProviderCallFailure("group_tabs", err)
		}
	case entity.OpUngroup:
		if err := uc.provider.UngroupTabs(ctx, []entity.TabID{op.TabID}); err != nil {
			return entity.NewProviderCallFailure("ungroup_tabs", err)
		}
	case entity.OpUpdateGroup:
		title, color := op.Title, op.Color
		update := port.GroupUpdate{Title: &title, Color: &color}
		if _, err := uc.provider.UpdateGroup(ctx, op.GroupID, update); err != nil {
			return entity.NewProviderCallFailure("update_group", err)
		}
	default:
		return fmt.Errorf("unknown operation kind %q", op.Kind)
	}
	return nil
}

// fail records the failure and returns the engine to idle.
func (uc *ReorderTabsUseCase) fail(ctx context.Context) {
	uc.transition(ctx, ReorderFailed)
	uc.transition(ctx, ReorderIdle)
}
