package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	timex "github.com/adisatrio/mindskit/internal/pkg/time"
)

type Server struct {
	Port            int            `json:"port,omitempty"`
	ReadTimeout     timex.Duration `json:"read_timeout,omitempty"`
	WriteTimeout    timex.Duration `json:"write_timeout,omitempty"`
	IdleTimeout     timex.Duration `json:"idle_timeout,omitempty"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout,omitempty"`
	MaxBodyBytes    int64          `json:"max_body_bytes,omitempty"`
}

type DB struct {
	Driver          string         `json:"driver,omitempty"`
	MaxOpenConns    int            `json:"max_open_conns,omitempty"`
	MaxIdleConns    int            `json:"max_idle_conns,omitempty"`
	ConnMaxIdleTime timex.Duration `json:"conn_max_idle_time,omitempty"`
	ConnMaxLifetime timex.Duration `json:"conn_max_lifetime,omitempty"`
	PingTimeout     timex.Duration `json:"ping_timeout,omitempty"`
}

type Redis struct {
	DB          int            `json:"db,omitempty"`
	DialTimeout timex.Duration `json:"dial_timeout,omitempty"`
	AnswerTTL   timex.Duration `json:"answer_ttl,omitempty"`
}

type JWT struct {
	JTILength uint32         `json:"jti_length,omitempty"`
	Issuer    string         `json:"issuer,omitempty"`
	TTL       timex.Duration `json:"ttl,omitempty"`
}

// Minds holds the upstream MindsDB agent server settings. Host and Agent come
// from the environment; only timeouts and the project name live in the file.
type Minds struct {
	Host              string         `json:"-"`
	Agent             string         `json:"-"`
	Project           string         `json:"project,omitempty"`
	CompletionTimeout timex.Duration `json:"completion_timeout,omitempty"`
}

type Argon2 struct {
	Memory     uint32 `json:"memory,omitempty"`
	Iterations uint32 `json:"iterations,omitempty"`
	Threads    uint8  `json:"threads,omitempty"`
	SaltLength uint32 `json:"salt_length,omitempty"`
	KeyLength  uint32 `json:"key_length,omitempty"`
}

type RateLimit struct {
	Max    int            `json:"max,omitempty"`
	Window timex.Duration `json:"window,omitempty"`
}

type Config struct {
	Server    *Server    `json:"server,omitempty"`
	DB        *DB        `json:"db,omitempty"`
	Redis     *Redis     `json:"redis,omitempty"`
	JWT       *JWT       `json:"jwt,omitempty"`
	Minds     *Minds     `json:"minds,omitempty"`
	Argon2    *Argon2    `json:"argon2,omitempty"`
	RateLimit *RateLimit `json:"rate_limit,omitempty"`
}

func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("server", c.Server),
		slog.Any("db", c.DB),
		slog.Any("redis", c.Redis),
		slog.Any("jwt", c.JWT),
		slog.Any("rate_limit", c.RateLimit),
		slog.String("minds_project", c.Minds.Project),
	)
}

func Load(cfgFile string) (*Config, error) {
	slog.Info("Loading config...")
	cfg, err := parseCfgFile(cfgFile)
	if err != nil {
		return nil, err
	}

	if err := overrideWithEnv(cfg); err != nil {
		return nil, err
	}

	slog.Info("Config loaded.", "config_file", cfgFile, slog.Any("config", cfg))
	return cfg, nil
}

func parseCfgFile(cfgFile string) (*Config, error) {
	cfgFile = filepath.Clean(cfgFile)
	contents, err := os.ReadFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", cfgFile, err)
	}

	var cfg Config
	if err := json.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("decode json config %s: %w", cfgFile, err)
	}

	return &cfg, nil
}

func overrideWithEnv(cfg *Config) error {
	if portStr, ok := os.LookupEnv("PORT"); ok {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("parse PORT: %w", err)
		}
		cfg.Server.Port = port
	}

	if host, ok := os.LookupEnv("MINDS_HOST"); ok {
		cfg.Minds.Host = host
	}

	if agent, ok := os.LookupEnv("MINDS_AGENT"); ok {
		cfg.Minds.Agent = agent
	}

	if project, ok := os.LookupEnv("MINDS_PROJECT"); ok {
		cfg.Minds.Project = project
	}

	return nil
}
