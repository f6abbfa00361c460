package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bnema/tabgrouper/internal/domain/entity"
	"github.com/bnema/tabgrouper/internal/domain/repository"
	"github.com/bnema/tabgrouper/internal/logging"
)

const (
	getGroupPreset = `SELECT name, title, color, created_at, updated_at
FROM group_presets WHERE name = ?`

	upsertGroupPreset = `INSERT INTO group_presets (name, title, color, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
    title = excluded.title,
    color = excluded.color,
    updated_at = excluded.updated_at`

	deleteGroupPreset = `DELETE FROM group_presets WHERE name = ?`

	listGroupPresets = `SELECT name, title, color, created_at, updated_at
FROM group_presets ORDER BY name`
)

type groupPresetRepo struct {
	db *sql.DB
}

// NewGroupPresetRepository creates a new SQLite-backed preset repository.
func NewGroupPresetRepository(db *sql.DB) repository.GroupPresetRepository {
	return &groupPresetRepo{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGroupPreset(row rowScanner) (*entity.GroupPreset, error) {
	var (
		p                entity.GroupPreset
		color            string
		created, updated int64
	)
	if err := row.Scan(&p.Name, &p.Title, &color, &created, &updated); err != nil {
		return nil, err
	}
	p.Color = entity.GroupColor(color)
	p.CreatedAt = time.Unix(created, 0).UTC()
	p.UpdatedAt = time.Unix(updated, 0).UTC()
	return &p, nil
}

func (r *groupPresetRepo) Get(ctx context.Context, name string) (*entity.GroupPreset, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("preset", name).Msg("getting group preset")

	p, err := scanGroupPreset(r.db.QueryRowContext(ctx, getGroupPreset, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *groupPresetRepo) Save(ctx context.Context, preset *entity.GroupPreset) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("preset", preset.Name).Str("color", string(preset.Color)).Msg("saving group preset")

	now := time.Now()
	created, updated := preset.CreatedAt, preset.UpdatedAt
	if created.IsZero() {
		created = now
	}
	if updated.IsZero() {
		updated = now
	}
	_, err := r.db.ExecContext(ctx, upsertGroupPreset,
		preset.Name, preset.Title, string(preset.Color), created.Unix(), updated.Unix())
	return err
}

func (r *groupPresetRepo) Delete(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, deleteGroupPreset, name)
	return err
}

func (r *groupPresetRepo) List(ctx context.Context) ([]*entity.GroupPreset, error) {
	rows, err := r.db.QueryContext(ctx, listGroupPresets)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	presets := make([]*entity.GroupPreset, 0)
	for rows.Next() {
		p, err := scanGroupPreset(rows)
		if err != nil {
			return nil, err
		}
		presets = append(presets, p)
	}
	return presets, rows.Err()
}
