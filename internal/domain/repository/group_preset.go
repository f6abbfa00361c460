// Package repository declares persistence boundaries for domain entities.
package repository

//go:generate mockgen -source=group_preset.go -destination=mocks/mock_group_preset.go -package=mocks

import (
	"context"

	"github.com/bnema/tabgrouper/internal/domain/entity"
)

// GroupPresetRepository persists user-defined custom group presets.
type GroupPresetRepository interface {
	// Get retrieves a preset by name.
	// Returns nil if no preset has that name.
	Get(ctx context.Context, name string) (*entity.GroupPreset, error)

	// Save inserts or replaces a preset.
	Save(ctx context.Context, preset *entity.GroupPreset) error

	// Delete removes a preset. Deleting an unknown name is not an error.
	Delete(ctx context.Context, name string) error

	// List returns all presets ordered by name.
	List(ctx context.Context) ([]*entity.GroupPreset, error)
}
