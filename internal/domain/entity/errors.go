package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrNoOpDrop marks a drop that needs no provider operation. It is not a
	// failure: callers treat it as an empty plan.
	ErrNoOpDrop = errors.New("drop is a no-op")

	// ErrStaleDrop means the drop references tabs or groups that the fresh
	// snapshot no longer agrees with.
	ErrStaleDrop = errors.New("drop does not match current tab state")

	ErrTabNotFound    = errors.New("tab not found")
	ErrGroupNotFound  = errors.New("group not found")
	ErrInvalidColor   = errors.New("invalid group color")
	ErrInvalidPreset  = errors.New("invalid group preset")
	ErrPresetNotFound = errors.New("group preset not found")
)

// ProviderCallFailure wraps a failed call to the tab provider.
type ProviderCallFailure struct {
	Call  string
	Cause error
}

// NewProviderCallFailure wraps cause as a failure of the named provider call.
func NewProviderCallFailure(call string, cause error) error {
	return &ProviderCallFailure{Call: call, Cause: cause}
}

func (e *ProviderCallFailure) Error() string {
	return fmt.Sprintf("tab provider %s failed: %v", e.Call, e.Cause)
}

func (e *ProviderCallFailure) Unwrap() error { return e.Cause }

// PartialApplyFailure reports a plan that stopped at a failing operation.
// Operations before it stay applied; it and everything after were not issued.
// It unwraps to a *ProviderCallFailure.
type PartialApplyFailure struct {
	Applied   int // operations that completed before the failure
	Total     int
	Operation Operation
	failure   *ProviderCallFailure
}

// NewPartialApplyFailure builds the failure for operation op, which was the
// (applied+1)th of total.
func NewPartialApplyFailure(applied, total int, op Operation, cause error) *PartialApplyFailure {
	failure, ok := cause.(*ProviderCallFailure)
	if !ok {
		failure = &ProviderCallFailure{Call: string(op.Kind), Cause: cause}
	}
	return &PartialApplyFailure{
		Applied:   applied,
		Total:     total,
		Operation: op,
		failure:   failure,
	}
}

func (e *PartialApplyFailure) Error() string {
	return fmt.Sprintf("plan stopped after %d of %d operations at %s: %v",
		e.Applied, e.Total, e.Operation, e.failure.Cause)
}

func (e *PartialApplyFailure) Unwrap() error { return e.failure }
