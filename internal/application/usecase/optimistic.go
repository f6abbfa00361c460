package usecase

import "context"

// optimisticApply updates local state before the provider confirms it.
// When remote fails, revert restores the local state and the remote error
// is returned unchanged.
func optimisticApply(ctx context.Context, apply, revert func(), remote func(context.Context) error) error {
	apply()
	if err := remote(ctx); err != nil {
		revert()
		return err
	}
	return nil
}
