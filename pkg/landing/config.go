// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package landing loads the page configuration: which elements the page
// has, the countdown and banner timings, and the popup content.
package landing

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/AccelByte/extend-landing-promo/pkg/countdown"
	"github.com/AccelByte/extend-landing-promo/pkg/page"
	"github.com/AccelByte/extend-landing-promo/pkg/popup"

	"gopkg.in/yaml.v3"
)

// Config represents the complete page configuration.
type Config struct {
	Page      PageConfig      `yaml:"page"`
	Countdown CountdownConfig `yaml:"countdown"`
	Banner    BannerConfig    `yaml:"banner"`
	Popups    PopupConfig     `yaml:"popups"`
}

// PageConfig lists the elements present on the page.
type PageConfig struct {
	Elements []ElementConfig `yaml:"elements"`
}

type ElementConfig struct {
	ID      string   `yaml:"id"`
	Classes []string `yaml:"classes,omitempty"`
}

type CountdownConfig struct {
	StorageKey         string        `yaml:"storage_key"`
	Duration           time.Duration `yaml:"duration"`
	RestartDelay       time.Duration `yaml:"restart_delay"`
	TickInterval       time.Duration `yaml:"tick_interval"`
	InlineRunningLabel string        `yaml:"inline_running_label"`
	InlineExpiredLabel string        `yaml:"inline_expired_label"`
}

// BannerConfig is independent of the countdown restart delay even though
// both default to five seconds.
type BannerConfig struct {
	VisibilityDelay time.Duration `yaml:"visibility_delay"`
}

type PopupConfig struct {
	InitialDelay    time.Duration `yaml:"initial_delay"`
	DisplayDuration time.Duration `yaml:"display_duration"`
	HideDuration    time.Duration `yaml:"hide_duration"`
	MessageFormat   string        `yaml:"message_format"`
	Names           []string      `yaml:"names"`
}

// DefaultConfig returns the stock landing page.
func DefaultConfig() *Config {
	cd := countdown.DefaultConfig()
	pc := popup.DefaultConfig()

	return &Config{
		Page: PageConfig{
			Elements: []ElementConfig{
				{ID: page.InlineTimerID},
				{ID: page.FixedTimerID},
				{ID: page.FixedBannerID, Classes: []string{page.BannerHiddenClass}},
				{ID: page.PopupContainerID},
				{ID: page.FooterYearID},
			},
		},
		Countdown: CountdownConfig{
			StorageKey:         cd.StorageKey,
			Duration:           cd.Duration,
			RestartDelay:       cd.RestartDelay,
			TickInterval:       cd.TickInterval,
			InlineRunningLabel: cd.InlineRunningLabel,
			InlineExpiredLabel: cd.InlineExpiredLabel,
		},
		Banner: BannerConfig{
			VisibilityDelay: 5000 * time.Millisecond,
		},
		Popups: PopupConfig{
			InitialDelay:    pc.InitialDelay,
			DisplayDuration: pc.DisplayDuration,
			HideDuration:    pc.HideDuration,
			MessageFormat:   pc.MessageFormat,
			Names:           pc.Names,
		},
	}
}

// LoadConfig loads page configuration from a YAML file on top of the
// defaults. Supports environment variable expansion in the form ${VAR_NAME}
// or ${VAR_NAME:default}.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML page configuration on top of the defaults.
func Parse(data []byte) (*Config, error) {
	expanded := expandEnvVars(string(data))

	config := DefaultConfig()
	if err := yaml.Unmarshal([]byte(expanded), config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Validate validates the configuration for common errors.
func (c *Config) Validate() error {
	ids := make(map[string]bool)
	for _, el := range c.Page.Elements {
		if el.ID == "" {
			return fmt.Errorf("page element with empty ID found")
		}
		if ids[el.ID] {
			return fmt.Errorf("duplicate page element ID: %s", el.ID)
		}
		ids[el.ID] = true
	}

	if c.Countdown.StorageKey == "" {
		return fmt.Errorf("countdown storage_key is empty")
	}
	if c.Countdown.Duration < time.Second {
		return fmt.Errorf("countdown duration must be at least 1s, got %v", c.Countdown.Duration)
	}
	if c.Countdown.TickInterval <= 0 {
		return fmt.Errorf("countdown tick_interval must be positive, got %v", c.Countdown.TickInterval)
	}
	if c.Countdown.RestartDelay < 0 {
		return fmt.Errorf("countdown restart_delay must not be negative, got %v", c.Countdown.RestartDelay)
	}
	if c.Banner.VisibilityDelay < 0 {
		return fmt.Errorf("banner visibility_delay must not be negative, got %v", c.Banner.VisibilityDelay)
	}

	if c.Popups.InitialDelay < 0 || c.Popups.DisplayDuration < 0 || c.Popups.HideDuration < 0 {
		return fmt.Errorf("popup durations must not be negative")
	}
	if c.Popups.DisplayDuration+c.Popups.HideDuration <= 0 {
		return fmt.Errorf("popup display_duration plus hide_duration must be positive")
	}
	if strings.Count(c.Popups.MessageFormat, "%s") != 1 {
		return fmt.Errorf("popup message_format must contain exactly one %%s, got %q", c.Popups.MessageFormat)
	}
	for i, name := range c.Popups.Names {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("popup name %d is empty", i)
		}
	}

	return nil
}

// CountdownSettings converts to the engine's configuration.
func (c *Config) CountdownSettings() countdown.Config {
	return countdown.Config{
		StorageKey:         c.Countdown.StorageKey,
		Duration:           c.Countdown.Duration,
		RestartDelay:       c.Countdown.RestartDelay,
		TickInterval:       c.Countdown.TickInterval,
		InlineRunningLabel: c.Countdown.InlineRunningLabel,
		InlineExpiredLabel: c.Countdown.InlineExpiredLabel,
	}
}

// PopupSettings converts to the popup queue's configuration.
func (c *Config) PopupSettings() popup.Config {
	return popup.Config{
		InitialDelay:    c.Popups.InitialDelay,
		DisplayDuration: c.Popups.DisplayDuration,
		HideDuration:    c.Popups.HideDuration,
		MessageFormat:   c.Popups.MessageFormat,
		Names:           c.Popups.Names,
	}
}

// expandEnvVars expands environment variables in the format ${VAR} or ${VAR:default}.
func expandEnvVars(s string) string {
	return os.Expand(s, func(key string) string {
		// Support ${VAR:default} syntax
		parts := strings.SplitN(key, ":", 2)
		varName := parts[0]
		defaultValue := ""
		if len(parts) == 2 {
			defaultValue = parts[1]
		}

		value := os.Getenv(varName)
		if value == "" {
			return defaultValue
		}
		return value
	})
}
