package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"ScoringEngine/internal/shared/constants"
	"ScoringEngine/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. SCORINGENGINE_REDIS_ADDR.
const EnvPrefix = "SCORINGENGINE"

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Engine   EngineConfig   `mapstructure:"engine"`
	Worker   WorkerConfig   `mapstructure:"worker"`
	Checks   ChecksConfig   `mapstructure:"checks"`
}

type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	Namespace string `mapstructure:"namespace"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type EngineConfig struct {
	// TotalRounds of 0 runs until shutdown.
	TotalRounds     int           `mapstructure:"total_rounds"`
	TargetRoundTime time.Duration `mapstructure:"target_round_time"`
	// Seed of 0 seeds the scheduler randomly.
	Seed uint64 `mapstructure:"seed"`
}

type WorkerConfig struct {
	CheckTimeout time.Duration `mapstructure:"check_timeout"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	Concurrency  int           `mapstructure:"concurrency"`
	BinPath      string        `mapstructure:"bin_path"`
}

type ChecksConfig struct {
	// Protocols limits the loaded checks; empty loads all of them.
	Protocols []string `mapstructure:"protocols"`
}

// Load reads path, or configs/config.yaml when path is empty, applies
// defaults and environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("configs")
		v.AddConfigPath(".")
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			slog.Warn("config file not found, using defaults")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "scoring-engine")
	v.SetDefault("app.version", "dev")

	// database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "scoring")
	v.SetDefault("database.password", "scoring")
	v.SetDefault("database.dbname", "scoring_engine")
	v.SetDefault("database.sslmode", "disable")

	// redis defaults
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.namespace", constants.QueueNamespace)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetDefault("engine.total_rounds", 0)
	v.SetDefault("engine.target_round_time", "60s")
	v.SetDefault("engine.seed", 0)

	v.SetDefault("worker.check_timeout", constants.CheckTimeout.String())
	v.SetDefault("worker.poll_interval", constants.WorkerPollInterval.String())
	v.SetDefault("worker.concurrency", 1)
	v.SetDefault("worker.bin_path", "")

	v.SetDefault("checks.protocols", []string{})
}

func validateConfig(cfg *Config) error {
	if cfg.Database.Host == "" {
		return errors.New("database host is required")
	}

	if cfg.Database.DBName == "" {
		return errors.New("database name is required")
	}

	if cfg.Redis.Addr == "" {
		return errors.New("redis address is required")
	}

	if !validator.ValidateAddress(cfg.Redis.Addr) {
		return fmt.Errorf("invalid redis address %q", cfg.Redis.Addr)
	}

	if cfg.Redis.Namespace == "" {
		return errors.New("redis namespace is required")
	}

	if cfg.Engine.TotalRounds < 0 {
		return fmt.Errorf("invalid total rounds %d", cfg.Engine.TotalRounds)
	}

	if cfg.Engine.TargetRoundTime < 0 {
		return fmt.Errorf("invalid target round time %s", cfg.Engine.TargetRoundTime)
	}

	if cfg.Worker.CheckTimeout <= 0 {
		return fmt.Errorf("invalid check timeout %s", cfg.Worker.CheckTimeout)
	}

	if cfg.Worker.PollInterval <= 0 {
		return fmt.Errorf("invalid poll interval %s", cfg.Worker.PollInterval)
	}

	if cfg.Worker.Concurrency < 1 {
		return fmt.Errorf("invalid worker concurrency %d", cfg.Worker.Concurrency)
	}

	return nil
}

// GetDSN returns the PostgreSQL connection string.
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

func (r *RedisConfig) GetRedisOptions() *redis.Options {
	return &redis.Options{
		Addr:            r.Addr,
		Password:        r.Password,
		DB:              r.DB,
		DisableIdentity: true,
	}
}
