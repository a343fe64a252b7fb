package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var ErrMissingStorePath = errors.New("question store path is empty")

// Config holds application configuration loaded from files, flags and environment variables.
type Config struct {
	Env    string `mapstructure:"env"`      // current application environment (local, dev, prod etc)
	Store  Store  `mapstructure:"store"`    // question store section
	Log    Log    `mapstructure:"log"`      // logger section
	Scores Scores `mapstructure:"scores"`   // score history section
	DB     DB     `mapstructure:"database"` // optional score database section
}

// Store points at the question store file.
type Store struct {
	Path string `mapstructure:"path"`
}

// Log configures the zap logger.
type Log struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Output string `mapstructure:"output"` // stderr, stdout or a file path
}

// Scores configures the leaderboard.
type Scores struct {
	Limit int `mapstructure:"limit"` // number of entries shown in top scores
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"url"`               // database connection string, empty means in-memory scores
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// Enabled reports whether a score database is configured.
func (db DB) Enabled() bool {
	return db.URL != ""
}

// Flags returns the command-line flags Load understands.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("quiz", pflag.ContinueOnError)
	fs.String("config", "", "path to a config file (default ./config/config.yaml)")
	fs.String("store", "", "path to the question store file")
	fs.String("log-level", "", "log level: debug, info, warn, error")
	return fs
}

// Load reads configuration from config files, parsed flags and environment variables.
// fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	v.SetDefault("env", "local")
	v.SetDefault("store.path", "quiz.txt")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.output", "stderr")
	v.SetDefault("scores.limit", 10)
	v.SetDefault("database.url", "")
	v.SetDefault("database.max_connections", 5)
	v.SetDefault("database.max_conn_lifetime", "30s")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("store.path", "QUIZ_STORE_PATH")
	_ = v.BindEnv("log.level", "LOG_LEVEL")
	_ = v.BindEnv("database.url", "DATABASE_URL")

	if fs != nil {
		if f := fs.Lookup("store"); f != nil && f.Changed {
			_ = v.BindPFlag("store.path", f)
		}
		if f := fs.Lookup("log-level"); f != nil && f.Changed {
			_ = v.BindPFlag("log.level", f)
		}
		if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if strings.TrimSpace(cfg.Store.Path) == "" {
		return nil, ErrMissingStorePath
	}

	return &cfg, nil
}
