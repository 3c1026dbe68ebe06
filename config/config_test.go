package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/signalscope/indicators"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Equal(t, []int{5, 10, 20, 60}, cfg.Indicators.MAPeriods)
	assert.Equal(t, 50.0, cfg.Indicators.KDJSeed)
	assert.Equal(t, "sqlite", cfg.Journal.Type)
	assert.False(t, cfg.Cache.Enabled)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, indicators.DefaultParams(), cfg.Indicators.Params())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name:    "no ma periods",
			mutate:  func(c *Config) { c.Indicators.MAPeriods = nil },
			wantErr: true,
			errMsg:  "indicators.ma_periods is required",
		},
		{
			name:    "negative ma period",
			mutate:  func(c *Config) { c.Indicators.MAPeriods = []int{5, -10} },
			wantErr: true,
			errMsg:  "indicators.ma_periods must be positive",
		},
		{
			name:    "macd slow below fast",
			mutate:  func(c *Config) { c.Indicators.MACDSlow = 6 },
			wantErr: true,
			errMsg:  "slow period",
		},
		{
			name:    "min confidence above one",
			mutate:  func(c *Config) { c.Patterns.MinConfidence = 1.5 },
			wantErr: true,
			errMsg:  "patterns.min_confidence must be between 0 and 1",
		},
		{
			name: "cache without address",
			mutate: func(c *Config) {
				c.Cache.Enabled = true
				c.Cache.RedisAddr = ""
			},
			wantErr: true,
			errMsg:  "cache.redis_addr is required",
		},
		{
			name: "cache bad ttl",
			mutate: func(c *Config) {
				c.Cache.Enabled = true
				c.Cache.TTL = "soon"
			},
			wantErr: true,
			errMsg:  "cache.ttl",
		},
		{
			name:    "unknown journal",
			mutate:  func(c *Config) { c.Journal.Type = "postgres" },
			wantErr: true,
			errMsg:  "journal.type must be",
		},
		{
			name: "csv without file",
			mutate: func(c *Config) {
				c.Journal.Type = "csv"
				c.Journal.CSVFile = ""
			},
			wantErr: true,
			errMsg:  "journal csv_file required",
		},
		{
			name:    "sqlite without path",
			mutate:  func(c *Config) { c.Journal.DBPath = "" },
			wantErr: true,
			errMsg:  "journal db_path required",
		},
		{
			name:   "journal disabled",
			mutate: func(c *Config) { c.Journal = JournalConfig{Type: "none"} },
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "loud" },
			wantErr: true,
			errMsg:  "log.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name string
		ext  string
	}{
		{"json format", ".json"},
		{"yaml format", ".yaml"},
		{"yml format", ".yml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Indicators.MAPeriods = []int{10, 30}
			cfg.Cache.Enabled = true
			cfg.Cache.TTL = "30m"
			path := filepath.Join(tmpDir, "test"+tt.ext)

			require.NoError(t, cfg.SaveToFile(path))

			_, err := os.Stat(path)
			require.NoError(t, err)

			loaded, err := LoadFromFile(path)
			require.NoError(t, err)

			assert.Equal(t, cfg.Indicators, loaded.Indicators)
			assert.Equal(t, cfg.Journal, loaded.Journal)
			assert.Equal(t, cfg.Cache.Enabled, loaded.Cache.Enabled)
			ttl, err := loaded.Cache.ParseTTL()
			require.NoError(t, err)
			assert.Equal(t, 30*time.Minute, ttl)
		})
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("indicators:\n  ma_periods: [3, 8]\nlog:\n  level: debug\n"), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 8}, cfg.Indicators.MAPeriods)
	assert.Equal(t, 12, cfg.Indicators.MACDFast)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "sqlite", cfg.Journal.Type)
}

func TestLoadFromFileErrors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0644))
	_, err = LoadFromFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("journal:\n  type: mongo\n"), 0644))
	_, err = LoadFromFile(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SIGNALSCOPE_INDICATORS_MA_PERIODS", "5,20")
	t.Setenv("SIGNALSCOPE_CACHE_ENABLED", "true")
	t.Setenv("SIGNALSCOPE_CACHE_REDIS_ADDR", "redis:6380")
	t.Setenv("SIGNALSCOPE_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, []int{5, 20}, cfg.Indicators.MAPeriods)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "redis:6380", cfg.Cache.RedisAddr)
	assert.Equal(t, "warn", cfg.Log.Level)
	// untouched
	assert.Equal(t, "1h", cfg.Cache.TTL)
	assert.Equal(t, 26, cfg.Indicators.MACDSlow)
}

func TestApplyEnvInvalid(t *testing.T) {
	t.Setenv("SIGNALSCOPE_INDICATORS_MACD_FAST", "fast")
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "apply environment")
}

func TestOptionsAndFingerprint(t *testing.T) {
	cfg := Default()
	cfg.Indicators.VolumeLookback = 5

	var p indicators.Params
	for _, opt := range cfg.Indicators.Options() {
		opt(&p)
	}
	assert.Equal(t, 5, p.VolumeLookback)

	a := Default().Indicators.Fingerprint()
	assert.Len(t, a, 16)
	assert.Equal(t, a, Default().Indicators.Fingerprint())
	assert.NotEqual(t, a, cfg.Indicators.Fingerprint())
}
