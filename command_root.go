// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package main

import (
	"fmt"

	"github.com/AccelByte/extend-landing-promo/internal/config"
	"github.com/AccelByte/extend-landing-promo/pkg/common"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the CLI. Running it without a subcommand serves.
func NewRootCmd() *cobra.Command {
	serve := newServeCmd()

	root := &cobra.Command{
		Use:           "landing-promo",
		Short:         "Landing page countdown, banner and social proof service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	root.AddCommand(serve)
	root.AddCommand(newStatusCmd())
	root.AddCommand(newResetCmd())

	return root
}

// loadConfig reads and validates the process config, then applies its
// logging settings.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := common.ConfigureLogging(cfg.LogLevel, cfg.LogFormat); err != nil {
		return nil, err
	}
	return cfg, nil
}
