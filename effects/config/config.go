// Package config holds the settings of an effect registry: how diagnostics
// are logged and whether dispatch decisions are traced.
//
// Settings come from Default, a YAML document (Parse, Load) or a flat map of
// dot-delimited keys (FromBindings, see package configkeys).
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/on-the-ground/effect_ive_store/effects/configkeys"
	"github.com/on-the-ground/effect_ive_store/shared/helper"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid effects config")

type LogConfig struct {
	// Level is the minimum level of the logger: debug, info, warn or error.
	Level string `yaml:"level"`
	// Encoding is json (production) or console (development).
	Encoding string `yaml:"encoding"`
	// Diagnostics is the level match-failure diagnostics are emitted at.
	Diagnostics string `yaml:"diagnostics"`
}

type TraceConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Capacity   int     `yaml:"capacity"`    // default: 256
	SampleRate float64 `yaml:"sample_rate"` // default: 1 (trace every event type)
}

type Config struct {
	Log   LogConfig   `yaml:"log"`
	Trace TraceConfig `yaml:"trace"`
}

const (
	defaultTraceCapacity = 256
	defaultSampleRate    = 1.0
)

func Default() Config {
	return Config{
		Log: LogConfig{
			Level:       "info",
			Encoding:    "json",
			Diagnostics: "warn",
		},
		Trace: NewTraceConfig(false, defaultTraceCapacity, defaultSampleRate),
	}
}

// NewTraceConfig fills non-positive capacity with the default and clamps
// the sample rate into [0, 1].
func NewTraceConfig(enabled bool, capacity int, sampleRate float64) TraceConfig {
	if capacity <= 0 {
		capacity = defaultTraceCapacity
	}
	if sampleRate < 0 {
		sampleRate = 0
	}
	if sampleRate > 1 {
		sampleRate = 1
	}
	return TraceConfig{
		Enabled:    enabled,
		Capacity:   capacity,
		SampleRate: sampleRate,
	}
}

// Parse reads a YAML document over the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, cfg.Validate()
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read effects config %s: %w", path, err)
	}
	return Parse(data)
}

// FromBindings reads settings from a flat map keyed by configkeys constants.
// Missing keys keep their defaults; keys with a value of the wrong type fail.
func FromBindings(bindings map[string]any) (Config, error) {
	cfg := Default()

	strs := map[string]*string{
		configkeys.ConfigEffectLogLevel:       &cfg.Log.Level,
		configkeys.ConfigEffectLogEncoding:    &cfg.Log.Encoding,
		configkeys.ConfigEffectLogDiagnostics: &cfg.Log.Diagnostics,
	}
	for _, key := range helper.SortedKeys(strs) {
		if _, present := bindings[key]; !present {
			continue
		}
		v, ok := helper.LookupTyped[string](bindings, key)
		if !ok {
			return Config{}, fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidConfig, key, bindings[key])
		}
		*strs[key] = v
	}

	if raw, present := bindings[configkeys.ConfigEffectTraceEnabled]; present {
		v, ok := raw.(bool)
		if !ok {
			return Config{}, fmt.Errorf("%w: %s must be a bool, got %T", ErrInvalidConfig, configkeys.ConfigEffectTraceEnabled, raw)
		}
		cfg.Trace.Enabled = v
	}
	if raw, present := bindings[configkeys.ConfigEffectTraceCapacity]; present {
		v, ok := asInt(raw)
		if !ok {
			return Config{}, fmt.Errorf("%w: %s must be an integer, got %v", ErrInvalidConfig, configkeys.ConfigEffectTraceCapacity, raw)
		}
		cfg.Trace.Capacity = v
	}
	if raw, present := bindings[configkeys.ConfigEffectTraceSampleRate]; present {
		v, ok := asFloat(raw)
		if !ok {
			return Config{}, fmt.Errorf("%w: %s must be a number, got %T", ErrInvalidConfig, configkeys.ConfigEffectTraceSampleRate, raw)
		}
		cfg.Trace.SampleRate = v
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	for key, lvl := range map[string]string{
		configkeys.ConfigEffectLogLevel:       c.Log.Level,
		configkeys.ConfigEffectLogDiagnostics: c.Log.Diagnostics,
	} {
		if !validLevel(lvl) {
			return fmt.Errorf("%w: %s: unknown level %q", ErrInvalidConfig, key, lvl)
		}
	}
	switch c.Log.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("%w: %s: unknown encoding %q", ErrInvalidConfig, configkeys.ConfigEffectLogEncoding, c.Log.Encoding)
	}
	if c.Trace.Capacity <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, configkeys.ConfigEffectTraceCapacity, c.Trace.Capacity)
	}
	if c.Trace.SampleRate < 0 || c.Trace.SampleRate > 1 {
		return fmt.Errorf("%w: %s must be within [0, 1], got %v", ErrInvalidConfig, configkeys.ConfigEffectTraceSampleRate, c.Trace.SampleRate)
	}
	return nil
}

func validLevel(lvl string) bool {
	switch lvl {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

func asInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
	}
	return 0, false
}

func asFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}
