package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rpgo/growth-calculator/internal/store"
)

// Store backends.
const (
	StoreMemory   = "memory"
	StoreFile     = "file"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

// Settings are the environment driven options of the CLI.
type Settings struct {
	Store       string
	StoreDir    string
	RedisAddr   string
	DatabaseURL string
}

// LoadSettings loads the given .env files (".env" when none is named) and
// reads the GROWTHCALC_* variables. Missing env files are not an error;
// variables already set in the process win over file values.
func LoadSettings(files ...string) (Settings, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("failed to load env file: %w", err)
	}
	s := Settings{
		Store:       strings.ToLower(getenv("GROWTHCALC_STORE", StoreFile)),
		StoreDir:    getenv("GROWTHCALC_STORE_DIR", ".growthcalc"),
		RedisAddr:   getenv("GROWTHCALC_REDIS_ADDR", "localhost:6379"),
		DatabaseURL: getenv("GROWTHCALC_DATABASE_URL", os.Getenv("DATABASE_URL")),
	}
	switch s.Store {
	case StoreMemory, StoreFile, StoreRedis, StorePostgres:
	default:
		return Settings{}, fmt.Errorf("unknown store backend %q", s.Store)
	}
	return s, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// OpenStore opens the configured key-value backend. The returned close
// function is never nil.
func OpenStore(ctx context.Context, s Settings) (store.KV, func(), error) {
	noop := func() {}
	switch s.Store {
	case StoreMemory:
		return store.NewMemoryKV(), noop, nil
	case StoreFile, "":
		kv, err := store.NewFileKV(s.StoreDir)
		if err != nil {
			return nil, noop, err
		}
		return kv, noop, nil
	case StoreRedis:
		kv := store.NewRedisKV(s.RedisAddr)
		return kv, func() { _ = kv.Close() }, nil
	case StorePostgres:
		kv, err := store.NewPostgresKV(ctx, s.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		return kv, kv.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown store backend %q", s.Store)
	}
}
