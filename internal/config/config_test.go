// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package config

import (
	"strings"
	"testing"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.HTTPPort != 8000 || cfg.GRPCPort != 6565 || cfg.MetricsPort != 8080 {
		t.Errorf("ports = %d/%d/%d, expected 8000/6565/8080", cfg.HTTPPort, cfg.GRPCPort, cfg.MetricsPort)
	}
	if cfg.StoreBackend != "redis" {
		t.Errorf("StoreBackend = %q, expected redis", cfg.StoreBackend)
	}
	if cfg.ConfigPath != "config/landing.yaml" {
		t.Errorf("ConfigPath = %q, expected config/landing.yaml", cfg.ConfigPath)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v for defaults", err)
	}
}

func TestParse_FromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("STORE_BACKEND", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/landing.db")
	t.Setenv("REDIS_MAX_RETRIES", "2")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.HTTPPort != 9000 {
		t.Errorf("HTTPPort = %d, expected 9000", cfg.HTTPPort)
	}
	if cfg.StoreBackend != "sqlite" || cfg.SQLitePath != "/tmp/landing.db" {
		t.Errorf("store = %s %s, expected sqlite /tmp/landing.db", cfg.StoreBackend, cfg.SQLitePath)
	}
	if got := cfg.RedisConn().MaxRetries; got != 2 {
		t.Errorf("RedisConn().MaxRetries = %d, expected 2", got)
	}
}

func TestParse_InvalidNumber(t *testing.T) {
	t.Setenv("GRPC_PORT", "not-a-port")

	if _, err := Parse(); err == nil {
		t.Error("Parse() error = nil, expected error for non-numeric port")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			HTTPPort:     8000,
			GRPCPort:     6565,
			MetricsPort:  8080,
			LogLevel:     "info",
			StoreBackend: "redis",
			RedisHost:    "localhost",
			SQLitePath:   "data/landing.db",
			ConfigPath:   "config/landing.yaml",
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "memory backend", mutate: func(c *Config) { c.StoreBackend = "memory"; c.RedisHost = "" }},
		{name: "port out of range", mutate: func(c *Config) { c.HTTPPort = 70000 }, wantErr: "HTTP_PORT"},
		{name: "zero grpc port", mutate: func(c *Config) { c.GRPCPort = 0 }, wantErr: "GRPC_PORT"},
		{name: "port clash", mutate: func(c *Config) { c.MetricsPort = 8000 }, wantErr: "both use port 8000"},
		{name: "unknown backend", mutate: func(c *Config) { c.StoreBackend = "etcd" }, wantErr: "STORE_BACKEND"},
		{name: "redis without host", mutate: func(c *Config) { c.RedisHost = "" }, wantErr: "REDIS_HOST"},
		{name: "negative retries", mutate: func(c *Config) { c.RedisMaxRetries = -1 }, wantErr: "REDIS_MAX_RETRIES"},
		{
			name:    "sqlite without path",
			mutate:  func(c *Config) { c.StoreBackend = "sqlite"; c.SQLitePath = "" },
			wantErr: "SQLITE_PATH",
		},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: "LOG_LEVEL"},
		{name: "no config path", mutate: func(c *Config) { c.ConfigPath = "" }, wantErr: "CONFIG_PATH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, expected to contain %q", err, tt.wantErr)
			}
		})
	}
}
