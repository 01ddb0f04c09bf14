package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"pet-shop-api/internal/ports/storage"
)

type Config struct {
	HTTP      HTTPConfig
	Database  DatabaseConfig
	Log       LogConfig
	RateLimit RateLimitConfig
	Email     EmailConfig
	API       APIConfig
}

type HTTPConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig: DSN vacío => store in-memory.
type DatabaseConfig struct {
	DSN          string
	MaxConns     int32
	EnsureSchema bool
}

type LogConfig struct {
	Level  string
	Format string
	App    string
}

type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
}

type EmailConfig struct {
	CheckDeliverability bool
}

type APIConfig struct {
	EmptyListNotFound bool
	DefaultPageLimit  int
}

func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{MaxConns: 10},
		Log:      LogConfig{Level: "info", Format: "text", App: "pet-shop-api"},
		RateLimit: RateLimitConfig{
			Enabled: true,
			RPS:     20,
			Burst:   40,
		},
		API: APIConfig{
			EmptyListNotFound: true,
			DefaultPageLimit:  storage.DefaultLimit,
		},
	}
}

// fileConfig es la forma del YAML; los punteros distinguen "ausente" de "cero".
type fileConfig struct {
	HTTP struct {
		Addr            string        `yaml:"addr"`
		ReadTimeout     time.Duration `yaml:"readTimeout"`
		WriteTimeout    time.Duration `yaml:"writeTimeout"`
		ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
	} `yaml:"http"`
	Database struct {
		DSN          string `yaml:"dsn"`
		MaxConns     int32  `yaml:"maxConns"`
		EnsureSchema *bool  `yaml:"ensureSchema"`
	} `yaml:"database"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		App    string `yaml:"app"`
	} `yaml:"log"`
	RateLimit struct {
		Enabled *bool   `yaml:"enabled"`
		RPS     float64 `yaml:"rps"`
		Burst   int     `yaml:"burst"`
	} `yaml:"rateLimit"`
	Email struct {
		CheckDeliverability *bool `yaml:"checkDeliverability"`
	} `yaml:"email"`
	API struct {
		EmptyListNotFound *bool `yaml:"emptyListNotFound"`
		DefaultPageLimit  int   `yaml:"defaultPageLimit"`
	} `yaml:"api"`
}

var defaultCandidates = []string{
	"configs/config.yaml",
	"config.yaml",
}

// Load arma la config: defaults -> YAML -> variables de entorno (.env incluido).
// Un path explícito que no se puede leer es error; los candidatos por defecto son opcionales.
func Load(path string) (Config, error) {
	// .env es opcional; las variables ya exportadas ganan
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()

	candidates := defaultCandidates
	if path != "" {
		candidates = []string{path}
	}

	for _, p := range candidates {
		data, err := os.ReadFile(p)
		if err != nil {
			if path != "" {
				return Config{}, fmt.Errorf("read config %s: %w", p, err)
			}
			continue
		}

		var parsed fileConfig
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", p, err)
		}
		merge(&cfg, parsed)
		break
	}

	if err := ApplyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func merge(dst *Config, src fileConfig) {
	if src.HTTP.Addr != "" {
		dst.HTTP.Addr = src.HTTP.Addr
	}
	if src.HTTP.ReadTimeout != 0 {
		dst.HTTP.ReadTimeout = src.HTTP.ReadTimeout
	}
	if src.HTTP.WriteTimeout != 0 {
		dst.HTTP.WriteTimeout = src.HTTP.WriteTimeout
	}
	if src.HTTP.ShutdownTimeout != 0 {
		dst.HTTP.ShutdownTimeout = src.HTTP.ShutdownTimeout
	}

	if src.Database.DSN != "" {
		dst.Database.DSN = src.Database.DSN
	}
	if src.Database.MaxConns != 0 {
		dst.Database.MaxConns = src.Database.MaxConns
	}
	if src.Database.EnsureSchema != nil {
		dst.Database.EnsureSchema = *src.Database.EnsureSchema
	}

	if src.Log.Level != "" {
		dst.Log.Level = src.Log.Level
	}
	if src.Log.Format != "" {
		dst.Log.Format = src.Log.Format
	}
	if src.Log.App != "" {
		dst.Log.App = src.Log.App
	}

	if src.RateLimit.Enabled != nil {
		dst.RateLimit.Enabled = *src.RateLimit.Enabled
	}
	if src.RateLimit.RPS != 0 {
		dst.RateLimit.RPS = src.RateLimit.RPS
	}
	if src.RateLimit.Burst != 0 {
		dst.RateLimit.Burst = src.RateLimit.Burst
	}

	if src.Email.CheckDeliverability != nil {
		dst.Email.CheckDeliverability = *src.Email.CheckDeliverability
	}

	if src.API.EmptyListNotFound != nil {
		dst.API.EmptyListNotFound = *src.API.EmptyListNotFound
	}
	if src.API.DefaultPageLimit != 0 {
		dst.API.DefaultPageLimit = src.API.DefaultPageLimit
	}
}

func ApplyEnvOverrides(cfg *Config) error {
	if port := env("PORT"); port != "" {
		cfg.HTTP.Addr = ":" + strings.TrimPrefix(port, ":")
	}
	if dsn := env("DB_DSN"); dsn != "" {
		cfg.Database.DSN = dsn
	}
	if v := env("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := env("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := env("APP_NAME"); v != "" {
		cfg.Log.App = v
	}

	var errs []error
	if v := env("DB_MAX_CONNS"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n <= 0 {
			errs = append(errs, invalid("DB_MAX_CONNS", v))
		} else {
			cfg.Database.MaxConns = int32(n)
		}
	}
	if v := env("RATE_LIMIT_RPS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			errs = append(errs, invalid("RATE_LIMIT_RPS", v))
		} else {
			cfg.RateLimit.RPS = f
		}
	}
	if v := env("RATE_LIMIT_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			errs = append(errs, invalid("RATE_LIMIT_BURST", v))
		} else {
			cfg.RateLimit.Burst = n
		}
	}
	if v := env("DEFAULT_PAGE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			errs = append(errs, invalid("DEFAULT_PAGE_LIMIT", v))
		} else {
			cfg.API.DefaultPageLimit = n
		}
	}

	boolVars := []struct {
		name string
		dst  *bool
	}{
		{"DB_ENSURE_SCHEMA", &cfg.Database.EnsureSchema},
		{"RATE_LIMIT_ENABLED", &cfg.RateLimit.Enabled},
		{"EMAIL_CHECK_DELIVERABILITY", &cfg.Email.CheckDeliverability},
		{"EMPTY_LIST_NOT_FOUND", &cfg.API.EmptyListNotFound},
	}
	for _, b := range boolVars {
		v := env(b.name)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, invalid(b.name, v))
			continue
		}
		*b.dst = parsed
	}

	return errors.Join(errs...)
}

func env(name string) string {
	return strings.TrimSpace(os.Getenv(name))
}

func invalid(name, value string) error {
	return fmt.Errorf("config: invalid %s=%q", name, value)
}
