package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-redis/redis/v8"

	"github.com/rustyeddy/signalscope/cache"
	"github.com/rustyeddy/signalscope/config"
	"github.com/rustyeddy/signalscope/journal"
	"github.com/rustyeddy/signalscope/market"
)

func loadSeries(path string) (market.Series, error) {
	s, err := market.LoadCSV(path)
	if err != nil {
		return market.Series{}, fmt.Errorf("load bars: %w", err)
	}
	return s, nil
}

// symbolFor defaults the symbol to the file name without extension.
func symbolFor(flag, path string) string {
	if flag != "" {
		return flag
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func openJournal(jc config.JournalConfig) (journal.Journal, error) {
	switch jc.Type {
	case "sqlite":
		return journal.NewSQLite(jc.DBPath)
	case "csv":
		return journal.NewCSV(jc.CSVFile)
	default:
		return nil, nil
	}
}

func openCache(cc config.CacheConfig) (cache.Cache, func() error, error) {
	if !cc.Enabled {
		return cache.Nop{}, func() error { return nil }, nil
	}
	ttl, err := cc.ParseTTL()
	if err != nil {
		return nil, nil, err
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cc.RedisAddr,
		DB:       cc.RedisDB,
		Password: cc.Password,
	})
	return cache.NewRedis(client, cc.Prefix, ttl), client.Close, nil
}
