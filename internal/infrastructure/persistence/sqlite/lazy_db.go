package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/bnema/tabgrouper/internal/domain/entity"
	"github.com/bnema/tabgrouper/internal/domain/repository"
	"github.com/bnema/tabgrouper/internal/logging"
)

// LazyDB opens the database on first access. Most commands never touch
// presets, so they skip the WASM compilation and migration cost.
type LazyDB struct {
	dbPath string

	once sync.Once
	mu   sync.RWMutex
	db   *sql.DB
	err  error
}

// NewLazyDB creates a lazy database handle. Nothing is opened yet.
func NewLazyDB(dbPath string) *LazyDB {
	return &LazyDB{dbPath: dbPath}
}

// DB returns the connection, opening it on the first call.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.once.Do(func() {
		log := logging.FromContext(ctx)
		log.Debug().Str("path", l.dbPath).Msg("lazy database initialization starting")

		db, err := NewConnection(ctx, l.dbPath)
		l.mu.Lock()
		l.db, l.err = db, err
		l.mu.Unlock()
		if err != nil {
			log.Error().Err(err).Msg("lazy database initialization failed")
		}
	})

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.err != nil {
		return nil, fmt.Errorf("database initialization failed: %w", l.err)
	}
	return l.db, nil
}

// Close closes the connection if it was opened.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// IsInitialized reports whether the connection has been opened.
func (l *LazyDB) IsInitialized() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.db != nil
}

// Path returns the database path.
func (l *LazyDB) Path() string {
	return l.dbPath
}

// lazyGroupPresetRepo opens the database on the first repository call.
type lazyGroupPresetRepo struct {
	lazy *LazyDB
	once sync.Once
	repo repository.GroupPresetRepository
	err  error
}

// NewLazyGroupPresetRepository returns a preset repository over lazy.
func NewLazyGroupPresetRepository(lazy *LazyDB) repository.GroupPresetRepository {
	return &lazyGroupPresetRepo{lazy: lazy}
}

func (r *lazyGroupPresetRepo) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.lazy.DB(ctx)
		if err != nil {
			r.err = err
			return
		}
		r.repo = NewGroupPresetRepository(db)
	})
	return r.err
}

func (r *lazyGroupPresetRepo) Get(ctx context.Context, name string) (*entity.GroupPreset, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Get(ctx, name)
}

func (r *lazyGroupPresetRepo) Save(ctx context.Context, preset *entity.GroupPreset) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Save(ctx, preset)
}

func (r *lazyGroupPresetRepo) Delete(ctx context.Context, name string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, name)
}

func (r *lazyGroupPresetRepo) List(ctx context.Context) ([]*entity.GroupPreset, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.List(ctx)
}
