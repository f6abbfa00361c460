package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/tabgrouper/internal/domain/entity"
	"github.com/bnema/tabgrouper/internal/domain/repository"
	"github.com/bnema/tabgrouper/internal/logging"
)

// ManagePresetsUseCase handles saved group presets.
type ManagePresetsUseCase struct {
	presetRepo repository.GroupPresetRepository
	sync       *SyncGroupMetadataUseCase
	now        func() time.Time
}

// NewManagePresetsUseCase creates a new preset management use case.
func NewManagePresetsUseCase(presetRepo repository.GroupPresetRepository, sync *SyncGroupMetadataUseCase) *ManagePresetsUseCase {
	return &ManagePresetsUseCase{
		presetRepo: presetRepo,
		sync:       sync,
		now:        time.Now,
	}
}

// Save validates and stores a preset. CreatedAt survives overwrites.
func (uc *ManagePresetsUseCase) Save(ctx context.Context, preset *entity.GroupPreset) error {
	log := logging.FromContext(ctx)

	if preset == nil {
		return fmt.Errorf("%w: preset is nil", entity.ErrInvalidPreset)
	}
	if preset.Color == "" {
		preset.Color = entity.DefaultGroupColor
	}
	if err := preset.Validate(); err != nil {
		return err
	}
	preset.Title = strings.TrimSpace(preset.Title)

	existing, err := uc.presetRepo.Get(ctx, preset.Name)
	if err != nil {
		return fmt.Errorf("failed to get preset: %w", err)
	}
	now := uc.now()
	preset.UpdatedAt = now
	if existing != nil && !existing.CreatedAt.IsZero() {
		preset.CreatedAt = existing.CreatedAt
	} else {
		preset.CreatedAt = now
	}

	if err := uc.presetRepo.Save(ctx, preset); err != nil {
		return fmt.Errorf("failed to save preset: %w", err)
	}

	log.Info().Str("preset", preset.Name).Str("color", string(preset.Color)).Msg("preset saved")
	return nil
}

// Get returns the named preset or entity.ErrPresetNotFound.
func (uc *ManagePresetsUseCase) Get(ctx context.Context, name string) (*entity.GroupPreset, error) {
	name = strings.TrimSpace(name)
	preset, err := uc.presetRepo.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get preset: %w", err)
	}
	if preset == nil {
		return nil, fmt.Errorf("%w: %q", entity.ErrPresetNotFound, name)
	}
	return preset, nil
}

// List returns all presets ordered by name.
func (uc *ManagePresetsUseCase) List(ctx context.Context) ([]*entity.GroupPreset, error) {
	presets, err := uc.presetRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}
	return presets, nil
}

// Delete removes a preset by name.
func (uc *ManagePresetsUseCase) Delete(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", entity.ErrInvalidPreset)
	}
	if err := uc.presetRepo.Delete(ctx, name); err != nil {
		return fmt.Errorf("failed to delete preset: %w", err)
	}
	logging.FromContext(ctx).Info().Str("preset", name).Msg("preset deleted")
	return nil
}

// ApplyToGroup renames and recolors group from the named preset.
// A preset without a title keeps the group's current title.
func (uc *ManagePresetsUseCase) ApplyToGroup(ctx context.Context, group *entity.NativeGroup, name string) error {
	if group == nil {
		return entity.ErrGroupNotFound
	}
	preset, err := uc.Get(ctx, name)
	if err != nil {
		return err
	}

	if preset.Title != "" && preset.Title != group.Title {
		if err := uc.sync.Rename(ctx, group, preset.Title); err != nil {
			return fmt.Errorf("failed to apply preset title: %w", err)
		}
	}
	if preset.Color.OrDefault() != group.Color {
		if err := uc.sync.Recolor(ctx, group, preset.Color.OrDefault()); err != nil {
			return fmt.Errorf("failed to apply preset color: %w", err)
		}
	}

	logging.FromContext(ctx).Info().
		Str("preset", preset.Name).
		Int64("group_id", int64(group.ID)).
		Msg("preset applied")
	return nil
}
