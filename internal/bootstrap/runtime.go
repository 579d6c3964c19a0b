// Package bootstrap wires the runtime dependencies (database, Redis, media
// store) for the command-line entry points.
package bootstrap

import (
	"fmt"

	"plume/internal/cache"
	"plume/internal/config"
	"plume/internal/database"
	"plume/internal/seed"
	"plume/internal/storage"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedDemo bool
}

// InitRuntime connects to the database and Redis, prepares the media store,
// and optionally seeds demo data. Redis being unreachable is not fatal; the
// app degrades to uncached operation.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, *storage.DiskStore, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	blobs, err := storage.NewDiskStore(cfg.MediaRoot, cfg.MaxUploadSizeMB)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("media store init failed: %w", err)
	}

	if opts.SeedDemo {
		if err := seed.Demo(db); err != nil {
			return nil, nil, nil, fmt.Errorf("demo seeding failed: %w", err)
		}
	}

	return db, r, blobs, nil
}
