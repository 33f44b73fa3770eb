package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/xyproto/randomstring"
	"gopkg.in/yaml.v3"
)

const (
	MaxFloors    = 10
	MaxQueueSize = 10
	GroundFloor  = 1
	CarIDLen     = 8
)

// Keys read from the dotenv file. They take precedence over the YAML file.
const (
	EnvCarID        = "LIFT_CAR_ID"
	EnvLogLevel     = "LIFT_LOG_LEVEL"
	EnvLogFile      = "LIFT_LOG_FILE"
	EnvMaxQueueSize = "LIFT_MAX_QUEUE_SIZE"
)

type Config struct {
	CarID        string `yaml:"car_id"`
	MaxFloors    int    `yaml:"max_floors"`
	MaxQueueSize int    `yaml:"max_queue_size"`
	LogLevel     string `yaml:"log_level"`
	LogFile      string `yaml:"log_file"`
}

func Default() Config {
	return Config{
		MaxFloors:    MaxFloors,
		MaxQueueSize: MaxQueueSize,
		LogLevel:     "info",
	}
}

// Load builds the runtime configuration. Empty paths are skipped, and a
// missing dotenv file is not an error.
func Load(yamlPath, envPath string) (Config, error) {
	cfg := Default()

	if yamlPath != "" {
		file, err := os.Open(yamlPath)
		if err != nil {
			return cfg, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("decode config %s: %w", yamlPath, err)
		}
	}

	if envPath != "" {
		env, err := godotenv.Read(envPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read env file %s: %w", envPath, err)
		default:
			if err := applyEnv(&cfg, env); err != nil {
				return cfg, err
			}
		}
	}

	if cfg.CarID == "" {
		cfg.CarID = randomstring.EnglishFrequencyString(CarIDLen)
	}

	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config, env map[string]string) error {
	if v, ok := env[EnvCarID]; ok {
		cfg.CarID = v
	}
	if v, ok := env[EnvLogLevel]; ok {
		cfg.LogLevel = v
	}
	if v, ok := env[EnvLogFile]; ok {
		cfg.LogFile = v
	}
	if v, ok := env[EnvMaxQueueSize]; ok {
		size, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxQueueSize, err)
		}
		cfg.MaxQueueSize = size
	}
	return nil
}

func (cfg Config) Validate() error {
	if cfg.MaxFloors < 2 {
		return fmt.Errorf("max_floors must be at least 2, got %d", cfg.MaxFloors)
	}
	if cfg.MaxQueueSize < 1 {
		return fmt.Errorf("max_queue_size must be positive, got %d", cfg.MaxQueueSize)
	}
	if _, err := cfg.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (cfg Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return level, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}
