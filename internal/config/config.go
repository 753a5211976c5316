package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"lesson-sage/internal/generator"
)

// DefaultPath is used when CONFIG_PATH is unset.
const DefaultPath = "config.yaml"

// Config is the startup configuration shared by all services.
// Every service reads the same file and ignores what it does not need.
type Config struct {
	Port               string            `yaml:"port"`
	LogMode            string            `yaml:"logMode"`
	DBConnectionString string            `yaml:"dbConnectionString"`
	JWTSecret          string            `yaml:"jwtSecret"`
	JWTIssuer          string            `yaml:"jwtIssuer"`
	JWTTTL             time.Duration     `yaml:"jwtTTL"`
	MaxAvatarBytes     int64             `yaml:"maxAvatarBytes"`
	Generator          GeneratorConfig   `yaml:"generator"`
	Credentials        map[string]string `yaml:"credentials"`
}

// GeneratorConfig selects and tunes the answer generator backend.
type GeneratorConfig struct {
	Backend           string        `yaml:"backend"`
	Model             string        `yaml:"model"`
	BaseURL           string        `yaml:"baseURL"`
	SystemInstruction string        `yaml:"systemInstruction"`
	Temperature       *float64      `yaml:"temperature"`
	MaxTokens         int           `yaml:"maxTokens"`
	CredentialName    string        `yaml:"credentialName"`
	Timeout           time.Duration `yaml:"timeout"`
}

// Options converts the file section into generator options.
func (g GeneratorConfig) Options() generator.Options {
	return generator.Options{
		Model:             g.Model,
		BaseURL:           g.BaseURL,
		SystemInstruction: g.SystemInstruction,
		Temperature:       g.Temperature,
		MaxTokens:         g.MaxTokens,
		CredentialName:    g.CredentialName,
		Timeout:           g.Timeout,
	}
}

// CredentialStore looks up API keys in the environment first, then the file.
func (c Config) CredentialStore() generator.CredentialStore {
	return generator.ChainStore{generator.EnvStore{}, generator.StaticStore(c.Credentials)}
}

// Load reads config from path (CONFIG_PATH or config.yaml when empty), then
// applies environment overrides and defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Config{}
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = strings.TrimSpace(v)
	}
	if v := os.Getenv("LOG_MODE"); v != "" {
		cfg.LogMode = strings.TrimSpace(v)
	}
	if v := os.Getenv("DB_CONNECTION_STRING"); v != "" {
		cfg.DBConnectionString = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("JWT_ISSUER"); v != "" {
		cfg.JWTIssuer = strings.TrimSpace(v)
	}
	if v := os.Getenv("JWT_TTL"); v != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("parse JWT_TTL: %w", err)
		}
		cfg.JWTTTL = d
	}
	if v := os.Getenv("MAX_AVATAR_BYTES"); v != "" {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("parse MAX_AVATAR_BYTES: %w", err)
		}
		cfg.MaxAvatarBytes = n
	}
	if v := os.Getenv("GENERATOR_BACKEND"); v != "" {
		cfg.Generator.Backend = strings.TrimSpace(v)
	}
	if v := os.Getenv("GENERATOR_MODEL"); v != "" {
		cfg.Generator.Model = strings.TrimSpace(v)
	}
	if v := os.Getenv("GENERATOR_BASE_URL"); v != "" {
		cfg.Generator.BaseURL = strings.TrimSpace(v)
	}
	if v := os.Getenv("GENERATOR_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("parse GENERATOR_TIMEOUT: %w", err)
		}
		cfg.Generator.Timeout = d
	}
	if v := os.Getenv("GENERATOR_MAX_TOKENS"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("parse GENERATOR_MAX_TOKENS: %w", err)
		}
		cfg.Generator.MaxTokens = n
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.LogMode == "" {
		cfg.LogMode = "dev"
	}
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "lesson-sage"
	}
	if cfg.JWTTTL <= 0 {
		cfg.JWTTTL = 24 * time.Hour
	}
	if cfg.MaxAvatarBytes <= 0 {
		cfg.MaxAvatarBytes = 5 << 20
	}
	if cfg.Generator.Backend == "" {
		cfg.Generator.Backend = generator.BackendOpenAI
	}
	if cfg.Generator.Timeout == 0 {
		cfg.Generator.Timeout = generator.DefaultTimeout
	}
}
