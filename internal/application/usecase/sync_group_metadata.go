package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/tabgrouper/internal/application/port"
	"github.com/bnema/tabgrouper/internal/domain/entity"
	"github.com/bnema/tabgrouper/internal/logging"
)

// SyncGroupMetadataUseCase keeps a snapshot's group metadata and the
// provider's native groups in step.
type SyncGroupMetadataUseCase struct {
	provider port.TabProvider
}

// NewSyncGroupMetadataUseCase creates a new group metadata use case.
func NewSyncGroupMetadataUseCase(provider port.TabProvider) *SyncGroupMetadataUseCase {
	return &SyncGroupMetadataUseCase{provider: provider}
}

// SetCollapsed flips group.Collapsed, then asks the provider to do the same.
// On provider failure the flag is restored to its prior value.
func (uc *SyncGroupMetadataUseCase) SetCollapsed(ctx context.Context, group *entity.NativeGroup, collapsed bool) error {
	if group == nil {
		return entity.ErrGroupNotFound
	}
	ctx = logging.WithGroupID(ctx, int64(group.ID))
	log := logging.FromContext(ctx)

	prior := group.Collapsed
	err := optimisticApply(ctx,
		func() { group.Collapsed = collapsed },
		func() { group.Collapsed = prior },
		func(ctx context.Context) error {
			_, err := uc.provider.UpdateGroup(ctx, group.ID, port.GroupUpdate{Collapsed: &collapsed})
			return err
		},
	)
	if err != nil {
		log.Warn().Err(err).Bool("collapsed", collapsed).Msg("collapse reverted")
		return entity.NewProviderCallFailure("update_group", err)
	}

	log.Debug().Bool("collapsed", collapsed).Msg("group collapse updated")
	return nil
}

// Rename sets the group's title. An empty title falls back to the
// synthesized default.
func (uc *SyncGroupMetadataUseCase) Rename(ctx context.Context, group *entity.NativeGroup, title string) error {
	if group == nil {
		return entity.ErrGroupNotFound
	}
	ctx = logging.WithGroupID(ctx, int64(group.ID))

	title = strings.TrimSpace(title)
	local := title
	if local == "" {
		local = entity.DefaultGroupTitle(group.ID)
	}

	prior := group.Title
	err := optimisticApply(ctx,
		func() { group.Title = local },
		func() { group.Title = prior },
		func(ctx context.Context) error {
			_, err := uc.provider.UpdateGroup(ctx, group.ID, port.GroupUpdate{Title: &title})
			return err
		},
	)
	if err != nil {
		return entity.NewProviderCallFailure("update_group", err)
	}
	logging.FromContext(ctx).Debug().Str("title", local).Msg("group renamed")
	return nil
}

// Recolor sets the group's color. Invalid colors are rejected before the
// provider is called.
func (uc *SyncGroupMetadataUseCase) Recolor(ctx context.Context, group *entity.NativeGroup, color entity.GroupColor) error {
	if group == nil {
		return entity.ErrGroupNotFound
	}
	if !color.Valid() {
		return fmt.Errorf("%w: %q", entity.ErrInvalidColor, color)
	}
	ctx = logging.WithGroupID(ctx, int64(group.ID))

	prior := group.Color
	err := optimisticApply(ctx,
		func() { group.Color = color },
		func() { group.Color = prior },
		func(ctx context.Context) error {
			_, err := uc.provider.UpdateGroup(ctx, group.ID, port.GroupUpdate{Color: &color})
			return err
		},
	)
	if err != nil {
		return entity.NewProviderCallFailure("update_group", err)
	}
	logging.FromContext(ctx).Debug().Str("color", string(color)).Msg("group recolored")
	return nil
}

// Reconcile copies native-side title, color and collapsed changes into the
// snapshot's groups and returns the ids that changed. Groups missing on the
// provider side are left as they are until the next snapshot.
func (uc *SyncGroupMetadataUseCase) Reconcile(ctx context.Context, snapshot *entity.CustomSnapshot) ([]entity.GroupID, error) {
	log := logging.FromContext(ctx)
	if snapshot == nil {
		return nil, nil
	}

	infos, err := uc.provider.QueryGroups(ctx, port.GroupQuery{CurrentWindow: true})
	if err != nil {
		return nil, entity.NewProviderCallFailure("query_groups", err)
	}

	changed := make([]entity.GroupID, 0)
	for _, info := range infos {
		if info == nil {
			continue
		}
		group := snapshot.Group(info.ID)
		if group == nil {
			continue
		}
		native := nativeGroupFromInfo(info)
		if group.Title == native.Title && group.Color == native.Color && group.Collapsed == native.Collapsed {
			continue
		}
		group.Title = native.Title
		group.Color = native.Color
		group.Collapsed = native.Collapsed
		changed = append(changed, group.ID)
	}

	if len(changed) > 0 {
		log.Debug().Int("changed", len(changed)).Msg("reconciled group metadata")
	}
	return changed, nil
}

// CreateGroup puts tabIDs into a new native group and applies title and color.
// If the metadata update fails the group still exists; its id is returned
// together with the error.
func (uc *SyncGroupMetadataUseCase) CreateGroup(
	ctx context.Context,
	tabIDs []entity.TabID,
	title string,
	color entity.GroupColor,
) (entity.GroupID, error) {
	log := logging.FromContext(ctx)

	if len(tabIDs) == 0 {
		return entity.NoGroup, errors.New("no tabs to group")
	}
	if color == "" {
		color = entity.DefaultGroupColor
	}
	if !color.Valid() {
		return entity.NoGroup, fmt.Errorf("%w: %q", entity.ErrInvalidColor, color)
	}

	groupID, err := uc.provider.GroupTabs(ctx, tabIDs, entity.NoGroup)
	if err != nil {
		return entity.NoGroup, entity.NewProviderCallFailure("group_tabs", err)
	}

	title = strings.TrimSpace(title)
	update := port.GroupUpdate{Title: &title, Color: &color}
	if _, err := uc.provider.UpdateGroup(ctx, groupID, update); err != nil {
		return groupID, entity.NewProviderCallFailure("update_group", err)
	}

	log.Info().
		Int64("group_id", int64(groupID)).
		Int("tabs", len(tabIDs)).
		Str("title", title).
		Msg("group created")
	return groupID, nil
}
