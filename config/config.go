package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "CLASSBOARD"

// storage backends understood by data.OpenStore
const (
	StoreMemory   = "memory"
	StoreFile     = "file"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

type Runtime struct {
	Store    string
	StateDir string
	LogLevel string

	DBConn     string
	TestDBConn string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	Port           int
	AllowedOrigins []string
	RequestsPerMin int
	RequestBurst   int
}

// Load reads an optional .env file (CLASSBOARD_ENV_FILE or ./.env) and then
// resolves every setting from CLASSBOARD_* environment variables.
func Load() (Runtime, error) {
	envFile := strings.TrimSpace(os.Getenv(envPrefix + "_ENV_FILE"))
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return Runtime{}, fmt.Errorf("load env file %s: %w", envFile, err)
	}

	stateHome := strings.TrimSpace(os.Getenv("XDG_STATE_HOME"))
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Runtime{}, fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	// the database connections keep the bare names used by migrate tooling
	_ = v.BindEnv("db_conn", envPrefix+"_DB_CONN", "DB_CONN")
	_ = v.BindEnv("test_db_conn", envPrefix+"_TEST_DB_CONN", "TEST_DB_CONN")

	v.SetDefault("store", StoreFile)
	v.SetDefault("state_dir", filepath.Join(stateHome, "classboard"))
	v.SetDefault("log_level", "info")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_db", 0)
	v.SetDefault("redis_prefix", "classboard:")
	v.SetDefault("port", 3000)
	v.SetDefault("allowed_origins", "*")
	v.SetDefault("requests_per_min", 600)
	v.SetDefault("request_burst", 60)

	rt := Runtime{
		Store:          strings.ToLower(strings.TrimSpace(v.GetString("store"))),
		StateDir:       strings.TrimSpace(v.GetString("state_dir")),
		LogLevel:       strings.TrimSpace(v.GetString("log_level")),
		DBConn:         strings.TrimSpace(v.GetString("db_conn")),
		TestDBConn:     strings.TrimSpace(v.GetString("test_db_conn")),
		RedisAddr:      strings.TrimSpace(v.GetString("redis_addr")),
		RedisPassword:  v.GetString("redis_password"),
		RedisDB:        v.GetInt("redis_db"),
		RedisPrefix:    v.GetString("redis_prefix"),
		Port:           v.GetInt("port"),
		AllowedOrigins: splitList(v.GetString("allowed_origins")),
		RequestsPerMin: v.GetInt("requests_per_min"),
		RequestBurst:   v.GetInt("request_burst"),
	}

	if rt.Port <= 0 {
		rt.Port = 3000
	}
	if rt.RequestsPerMin <= 0 {
		rt.RequestsPerMin = 600
	}
	if rt.RequestBurst <= 0 {
		rt.RequestBurst = 1
	}

	if err := rt.Validate(); err != nil {
		return Runtime{}, err
	}
	return rt, nil
}

// Validate checks that the selected store has what it needs to connect
func (rt Runtime) Validate() error {
	switch rt.Store {
	case StoreMemory:
	case StoreFile:
		if rt.StateDir == "" {
			return fmt.Errorf("%s_STATE_DIR must be set for the file store", envPrefix)
		}
	case StorePostgres:
		if rt.DBConn == "" {
			return fmt.Errorf("DB_CONN must be set for the postgres store")
		}
	case StoreRedis:
		if rt.RedisAddr == "" {
			return fmt.Errorf("%s_REDIS_ADDR must be set for the redis store", envPrefix)
		}
	default:
		return fmt.Errorf("unknown store %q (want %s, %s, %s or %s)",
			rt.Store, StoreMemory, StoreFile, StorePostgres, StoreRedis)
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
