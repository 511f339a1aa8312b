// SPDX-License-Identifier: MIT
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is used when LoadConfig is given an empty path.
const DefaultPath = "sortvis.yaml"

// LoadConfig loads configuration from a YAML file. If path is empty it
// tries DefaultPath and falls back to built-in defaults when that file does
// not exist. Environment overrides are applied after the file, then the
// result is validated.
func LoadConfig(path string) (*Config, error) {
	cfg := NewConfig()

	if path == "" {
		if _, err := os.Stat(DefaultPath); err != nil {
			cfg.applyEnvOverrides()
			if err := cfg.Validate(); err != nil {
				return nil, fmt.Errorf("invalid default configuration: %w", err)
			}
			return cfg, nil
		}
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	var errs []error
	if c.Video.Size <= 0 || c.Video.Size > MaxSize {
		errs = append(errs, fmt.Errorf("video.size %d out of range (1..%d)", c.Video.Size, MaxSize))
	}
	if c.Video.Points < 1 {
		errs = append(errs, fmt.Errorf("video.points must be positive, got %d", c.Video.Points))
	}
	if c.Video.FPS <= 0 {
		errs = append(errs, fmt.Errorf("video.fps must be positive, got %d", c.Video.FPS))
	}
	if c.Audio.SampleRate < MinSampleRate || c.Audio.SampleRate > MaxSampleRate {
		errs = append(errs, fmt.Errorf("audio.sample_rate %d out of range (%d..%d)",
			c.Audio.SampleRate, MinSampleRate, MaxSampleRate))
	}
	if c.Audio.MinHz < 0 || c.Audio.MinHz >= c.Audio.MaxHz {
		errs = append(errs, fmt.Errorf("audio.min_hz %.1f must be below audio.max_hz %.1f",
			c.Audio.MinHz, c.Audio.MaxHz))
	}
	if c.Audio.Silence != SilenceEmit && c.Audio.Silence != SilenceSkip {
		errs = append(errs, fmt.Errorf("audio.silence must be %q or %q, got %q",
			SilenceEmit, SilenceSkip, c.Audio.Silence))
	}
	if _, err := c.SeedValue(); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.Sort.Shuffle) {
	case "", "fast", "full", "slow", "quiet", "silent", "none":
	default:
		errs = append(errs, fmt.Errorf("sort.shuffle %q is not one of full, fast, quiet", c.Sort.Shuffle))
	}
	if c.Sort.PauseFrames < 0 || c.Sort.WaitSeconds < 0 {
		errs = append(errs, errors.New("sort.pause_frames and sort.wait_seconds must not be negative"))
	}
	return errors.Join(errs...)
}

// SeedValue parses Sort.Seed as hexadecimal, with or without a 0x prefix.
func (c *Config) SeedValue() (uint64, error) {
	s := strings.TrimSpace(c.Sort.Seed)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("sort.seed %q is not a 64-bit hex value", c.Sort.Seed)
	}
	return v, nil
}

// applyEnvOverrides reads ENV_* variables. Unparseable values are ignored.
func (c *Config) applyEnvOverrides() {
	if val, ok := os.LookupEnv("ENV_LOG_LEVEL"); ok {
		c.LogLevel = val
	}
	if val, ok := os.LookupEnv("ENV_SEED"); ok {
		c.Sort.Seed = val
	}
	if val, ok := os.LookupEnv("ENV_AUDIO_OUTPUT"); ok {
		c.Audio.Output = val
	}
	if val, ok := os.LookupEnv("ENV_AUDIO_FINALIZE"); ok {
		if b, err := strconv.ParseBool(val); err == nil {
			c.Audio.Finalize = b
		}
	}
	if val, ok := os.LookupEnv("ENV_TELEMETRY_WS_ADDR"); ok {
		c.Telemetry.WebSocketAddr = val
	}
	if val, ok := os.LookupEnv("ENV_TELEMETRY_UDP_TARGET"); ok {
		c.Telemetry.UDPTarget = val
	}
}
