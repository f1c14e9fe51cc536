// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/AccelByte/extend-landing-promo/pkg/store"

	"github.com/spf13/cobra"
)

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Remove the persisted countdown so the next start begins a fresh one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			st, key, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			return reset(ctx, cmd.OutOrStdout(), st, key)
		},
	}
}

func reset(ctx context.Context, w io.Writer, st store.Store, key string) error {
	if err := st.Remove(ctx, key); err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	_, _ = fmt.Fprintf(w, "%s removed\n", key)
	return nil
}
