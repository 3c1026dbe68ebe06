package config

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/signalscope/indicators"
)

// EnvPrefix prefixes every environment override, e.g.
// SIGNALSCOPE_CACHE_REDIS_ADDR.
const EnvPrefix = "SIGNALSCOPE"

// Config represents the complete analysis configuration
type Config struct {
	Indicators IndicatorsConfig `json:"indicators" yaml:"indicators" split_words:"true"`
	Patterns   PatternsConfig   `json:"patterns" yaml:"patterns" split_words:"true"`
	Cache      CacheConfig      `json:"cache" yaml:"cache" split_words:"true"`
	Journal    JournalConfig    `json:"journal" yaml:"journal" split_words:"true"`
	Log        LogConfig        `json:"log" yaml:"log" split_words:"true"`
	Metrics    MetricsConfig    `json:"metrics" yaml:"metrics" split_words:"true"`
}

// IndicatorsConfig contains indicator windows and thresholds
type IndicatorsConfig struct {
	MACDFast       int     `json:"macd_fast" yaml:"macd_fast" split_words:"true"`
	MACDSlow       int     `json:"macd_slow" yaml:"macd_slow" split_words:"true"`
	MACDSignal     int     `json:"macd_signal" yaml:"macd_signal" split_words:"true"`
	KDJWindow      int     `json:"kdj_window" yaml:"kdj_window" split_words:"true"`
	KDJSmooth      int     `json:"kdj_smooth" yaml:"kdj_smooth" split_words:"true"`
	KDJSeed        float64 `json:"kdj_seed" yaml:"kdj_seed" split_words:"true"`
	KDJFlat        float64 `json:"kdj_flat_rsv" yaml:"kdj_flat_rsv" split_words:"true"`
	Overbought     float64 `json:"overbought" yaml:"overbought" split_words:"true"`
	Oversold       float64 `json:"oversold" yaml:"oversold" split_words:"true"`
	MAPeriods      []int   `json:"ma_periods" yaml:"ma_periods" split_words:"true"`
	VolumeLookback int     `json:"volume_lookback" yaml:"volume_lookback" split_words:"true"`
	LevelWindow    int     `json:"level_window" yaml:"level_window" split_words:"true"`
	LevelTolerance float64 `json:"level_tolerance" yaml:"level_tolerance" split_words:"true"`
	LevelMax       int     `json:"level_max" yaml:"level_max" split_words:"true"`
}

// PatternsConfig contains pattern reporting parameters
type PatternsConfig struct {
	MinConfidence float64 `json:"min_confidence" yaml:"min_confidence" split_words:"true"`
}

// CacheConfig contains the Redis signal cache parameters
type CacheConfig struct {
	Enabled   bool   `json:"enabled" yaml:"enabled" split_words:"true"`
	RedisAddr string `json:"redis_addr,omitempty" yaml:"redis_addr,omitempty" split_words:"true"`
	RedisDB   int    `json:"redis_db" yaml:"redis_db" split_words:"true"`
	Password  string `json:"-" yaml:"-" envconfig:"redis_password"` // env only
	Prefix    string `json:"prefix" yaml:"prefix" split_words:"true"`
	TTL       string `json:"ttl" yaml:"ttl" split_words:"true"` // e.g. "15m", "24h"
}

// ParseTTL converts the ttl string to time.Duration
func (c CacheConfig) ParseTTL() (time.Duration, error) {
	if c.TTL == "" {
		return 0, nil
	}
	return time.ParseDuration(c.TTL)
}

// JournalConfig contains journaling parameters
type JournalConfig struct {
	Type    string `json:"type" yaml:"type" split_words:"true"` // "none", "csv" or "sqlite"
	CSVFile string `json:"csv_file,omitempty" yaml:"csv_file,omitempty" split_words:"true"`
	DBPath  string `json:"db_path,omitempty" yaml:"db_path,omitempty" split_words:"true"`
}

// LogConfig contains logging parameters
type LogConfig struct {
	Level  string `json:"level" yaml:"level" split_words:"true"`
	Pretty bool   `json:"pretty" yaml:"pretty" split_words:"true"`
}

// MetricsConfig contains metrics export parameters
type MetricsConfig struct {
	Textfile string `json:"textfile,omitempty" yaml:"textfile,omitempty" split_words:"true"`
}

// Params converts the section to engine parameters.
func (c IndicatorsConfig) Params() indicators.Params {
	return indicators.Params{
		MACDFast:       c.MACDFast,
		MACDSlow:       c.MACDSlow,
		MACDSignal:     c.MACDSignal,
		KDJWindow:      c.KDJWindow,
		KDJSmooth:      c.KDJSmooth,
		KDJSeed:        c.KDJSeed,
		KDJFlat:        c.KDJFlat,
		Overbought:     c.Overbought,
		Oversold:       c.Oversold,
		MAPeriods:      append([]int(nil), c.MAPeriods...),
		VolumeLookback: c.VolumeLookback,
		LevelWindow:    c.LevelWindow,
		LevelTolerance: c.LevelTolerance,
		LevelMax:       c.LevelMax,
	}
}

// Options converts the section to engine options.
func (c IndicatorsConfig) Options() []indicators.Option {
	return []indicators.Option{indicators.WithParams(c.Params())}
}

// Fingerprint identifies the parameter set in cache keys.
func (c IndicatorsConfig) Fingerprint() string {
	b, _ := json.Marshal(c)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:8])
}

// LoadFromFile loads configuration from a file (JSON or YAML). Keys absent
// from the file keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		cfg = Default()
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Load reads path when set, otherwise starts from Default, then applies
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = LoadFromFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overlays SIGNALSCOPE_<SECTION>_<FIELD> environment variables,
// e.g. SIGNALSCOPE_INDICATORS_MA_PERIODS=5,20. Unset variables leave the
// current values alone.
func (c *Config) ApplyEnv() error {
	if err := envconfig.Process(EnvPrefix, c); err != nil {
		return fmt.Errorf("apply environment: %w", err)
	}
	return nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if len(c.Indicators.MAPeriods) == 0 {
		return fmt.Errorf("indicators.ma_periods is required")
	}
	for _, p := range c.Indicators.MAPeriods {
		if p <= 0 {
			return fmt.Errorf("indicators.ma_periods must be positive")
		}
	}
	if err := c.Indicators.Params().Validate(); err != nil {
		return fmt.Errorf("indicators: %w", err)
	}
	if c.Patterns.MinConfidence < 0 || c.Patterns.MinConfidence > 1 {
		return fmt.Errorf("patterns.min_confidence must be between 0 and 1")
	}
	if c.Cache.Enabled {
		if c.Cache.RedisAddr == "" {
			return fmt.Errorf("cache.redis_addr is required when the cache is enabled")
		}
		ttl, err := c.Cache.ParseTTL()
		if err != nil {
			return fmt.Errorf("cache.ttl: %w", err)
		}
		if ttl < 0 {
			return fmt.Errorf("cache.ttl must not be negative")
		}
	}
	switch c.Journal.Type {
	case "", "none":
	case "csv":
		if c.Journal.CSVFile == "" {
			return fmt.Errorf("journal csv_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	p := indicators.DefaultParams()
	return &Config{
		Indicators: IndicatorsConfig{
			MACDFast:       p.MACDFast,
			MACDSlow:       p.MACDSlow,
			MACDSignal:     p.MACDSignal,
			KDJWindow:      p.KDJWindow,
			KDJSmooth:      p.KDJSmooth,
			KDJSeed:        p.KDJSeed,
			KDJFlat:        p.KDJFlat,
			Overbought:     p.Overbought,
			Oversold:       p.Oversold,
			MAPeriods:      p.MAPeriods,
			VolumeLookback: p.VolumeLookback,
			LevelWindow:    p.LevelWindow,
			LevelTolerance: p.LevelTolerance,
			LevelMax:       p.LevelMax,
		},
		Cache: CacheConfig{
			RedisAddr: "localhost:6379",
			Prefix:    "signalscope",
			TTL:       "1h",
		},
		Journal: JournalConfig{
			Type:   "sqlite",
			DBPath: "./signals.db",
		},
		Log: LogConfig{
			Level:  "info",
			Pretty: true,
		},
	}
}
