// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package store holds the durable key-value backends that keep page state
// across process restarts.
package store

import (
	"context"
	"fmt"
)

// Store is a durable string key-value store.
//
// Get reports found=false with a nil error when the key does not exist.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// Backend names accepted by the STORE_BACKEND setting.
const (
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// ValidateBackend returns an error for unknown backend names.
func ValidateBackend(name string) error {
	switch name {
	case BackendRedis, BackendSQLite, BackendMemory:
		return nil
	default:
		return fmt.Errorf("unknown store backend %q (expected %s, %s or %s)",
			name, BackendRedis, BackendSQLite, BackendMemory)
	}
}
