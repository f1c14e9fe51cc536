// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package bootstrap

import (
	"context"

	"github.com/AccelByte/extend-landing-promo/internal/config"
	"github.com/AccelByte/extend-landing-promo/pkg/store"

	"github.com/sirupsen/logrus"
)

// InitStore opens the durable store selected by STORE_BACKEND.
//
// ============================================================
// DEVELOPER: Store backends
// ============================================================
// - redis:  shared across instances; waits for Redis with
//           exponential backoff (REDIS_MAX_RETRIES)
// - sqlite: single host, file at SQLITE_PATH
// - memory: nothing survives a restart; for local runs only
// ============================================================
func InitStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case store.BackendRedis:
		client, err := store.ConnectRedis(ctx, cfg.RedisConn())
		if err != nil {
			return nil, err
		}
		logrus.Info("using Redis store")
		return store.NewRedisStore(client, store.RedisStoreConfig{KeyPrefix: cfg.RedisKeyPrefix}), nil

	case store.BackendSQLite:
		s, err := store.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		logrus.Infof("using SQLite store at %s", cfg.SQLitePath)
		return s, nil

	case store.BackendMemory:
		logrus.Warn("using in-memory store; the countdown will not survive a restart")
		return store.NewMemoryStore(), nil

	default:
		return nil, store.ValidateBackend(cfg.StoreBackend)
	}
}
