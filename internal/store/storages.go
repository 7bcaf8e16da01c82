package store

import (
	"context"

	"todokeeper/internal/config"
	"todokeeper/internal/logger"
)

// Storages bundles every repository backed by the shared database handle.
// DB is exposed for infrastructure concerns such as health-check pings.
type Storages struct {
	DB             *DB
	UserRepository UserRepository
	TaskRepository TaskRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations, and wires
// up all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		DB:             db,
		UserRepository: NewUserRepository(db, log),
		TaskRepository: NewTaskRepository(db, log),
	}, nil
}
