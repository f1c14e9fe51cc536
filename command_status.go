// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/AccelByte/extend-landing-promo/internal/bootstrap"
	"github.com/AccelByte/extend-landing-promo/pkg/countdown"
	"github.com/AccelByte/extend-landing-promo/pkg/landing"
	"github.com/AccelByte/extend-landing-promo/pkg/store"

	"github.com/spf13/cobra"
)

const commandTimeout = 10 * time.Second

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the persisted countdown expiry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			st, key, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			return printStatus(ctx, cmd.OutOrStdout(), st, key, time.Now().Unix())
		},
	}
}

// openStore connects to the configured store and returns the countdown's
// storage key.
func openStore(ctx context.Context) (store.Store, string, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, "", err
	}
	landingConfig, err := landing.LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, "", err
	}
	st, err := bootstrap.InitStore(ctx, cfg)
	if err != nil {
		return nil, "", err
	}
	return st, landingConfig.Countdown.StorageKey, nil
}

func printStatus(ctx context.Context, w io.Writer, st store.Store, key string, now int64) error {
	raw, found, err := st.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !found {
		_, _ = fmt.Fprintf(w, "%s: not set (next start begins a fresh countdown)\n", key)
		return nil
	}

	expiry, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		_, _ = fmt.Fprintf(w, "%s: malformed value %q (next start replaces it)\n", key, raw)
		return nil
	}

	remaining := expiry - now
	if remaining <= 0 {
		_, _ = fmt.Fprintf(w, "%s: %d (%s, expired %ds ago)\n",
			key, expiry, time.Unix(expiry, 0).UTC().Format(time.RFC3339), -remaining)
		return nil
	}
	_, _ = fmt.Fprintf(w, "%s: %d (%s, %s left)\n",
		key, expiry, time.Unix(expiry, 0).UTC().Format(time.RFC3339), countdown.FormatRemaining(remaining))
	return nil
}
