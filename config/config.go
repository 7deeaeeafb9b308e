package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when none is given. A missing file is not an error.
const DefaultPath = "config.yaml"

type Config struct {
	Server      ServerConfig     `yaml:"server"`
	Database    DatabaseConfig   `yaml:"database"`
	Auth        AuthConfig       `yaml:"auth"`
	Accounting  AccountingConfig `yaml:"accounting"`
	SeedOnStart bool             `yaml:"seed_on_start"`
}

type ServerConfig struct {
	Port           string   `yaml:"port"`
	Mode           string   `yaml:"mode"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type DatabaseConfig struct {
	Driver       string `yaml:"driver"`
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	User         string `yaml:"user"`
	Password     string `yaml:"password"`
	Name         string `yaml:"name"`
	DSN          string `yaml:"dsn"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
}

type AuthConfig struct {
	JWTSecret         string        `yaml:"jwt_secret"`
	GuestTokenTTL     time.Duration `yaml:"guest_token_ttl"`
	RequireGuestToken bool          `yaml:"require_guest_token"`
}

// AccountingConfig tags the invoice and ledger rows written for every order.
type AccountingConfig struct {
	ClientID string `yaml:"client_id"`
	Source   string `yaml:"source"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:           "8080",
			Mode:           "release",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Database: DatabaseConfig{
			Driver:       "mysql",
			Host:         "127.0.0.1",
			Port:         3306,
			User:         "root",
			Name:         "restaurant",
			MaxOpenConns: 25,
			MaxIdleConns: 5,
		},
		Auth: AuthConfig{
			GuestTokenTTL: 7 * 24 * time.Hour,
		},
		Accounting: AccountingConfig{
			ClientID: "701",
			Source:   "pwa",
		},
	}
}

// Load builds the configuration from defaults, then the YAML file at path, then .env, then the
// process environment. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = n
		return nil
	}
	flag := func(key string, dst *bool) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = b
		return nil
	}

	str("PORT", &c.Server.Port)
	str("GIN_MODE", &c.Server.Mode)
	if v, ok := lookup("CORS_ORIGINS"); ok && v != "" {
		c.Server.AllowedOrigins = splitList(v)
	}

	str("DB_DRIVER", &c.Database.Driver)
	str("DB_HOST", &c.Database.Host)
	str("DB_USER", &c.Database.User)
	str("DB_PASSWORD", &c.Database.Password)
	str("DB_NAME", &c.Database.Name)
	str("DB_DSN", &c.Database.DSN)
	for key, dst := range map[string]*int{
		"DB_PORT":           &c.Database.Port,
		"DB_MAX_OPEN_CONNS": &c.Database.MaxOpenConns,
		"DB_MAX_IDLE_CONNS": &c.Database.MaxIdleConns,
	} {
		if err := num(key, dst); err != nil {
			return err
		}
	}

	str("JWT_SECRET", &c.Auth.JWTSecret)
	if v, ok := lookup("GUEST_TOKEN_TTL"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("GUEST_TOKEN_TTL: %w", err)
		}
		c.Auth.GuestTokenTTL = d
	}
	if err := flag("REQUIRE_GUEST_TOKEN", &c.Auth.RequireGuestToken); err != nil {
		return err
	}

	str("ACCOUNTING_CLIENT_ID", &c.Accounting.ClientID)
	str("ORDER_SOURCE", &c.Accounting.Source)
	return flag("SEED_ON_START", &c.SeedOnStart)
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c Config) Validate() error {
	var errs []error
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		errs = append(errs, fmt.Errorf("server.port %q is not numeric", c.Server.Port))
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("server.mode %q must be debug, release or test", c.Server.Mode))
	}
	if len(c.Server.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("server.allowed_origins must list at least one origin"))
	}
	switch c.Database.Driver {
	case DriverMySQL, DriverPostgres:
		if c.Database.DSN == "" && c.Database.Name == "" {
			errs = append(errs, errors.New("database.name is required"))
		}
	case DriverSQLite:
		if c.Database.DSN == "" && c.Database.Name == "" {
			errs = append(errs, errors.New("database.name or database.dsn is required for sqlite"))
		}
	default:
		errs = append(errs, fmt.Errorf("database.driver %q must be mysql, postgres or sqlite", c.Database.Driver))
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns && c.Database.MaxOpenConns > 0 {
		errs = append(errs, errors.New("database.max_idle_conns exceeds max_open_conns"))
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("auth.jwt_secret is required"))
	}
	if c.Auth.GuestTokenTTL <= 0 {
		errs = append(errs, errors.New("auth.guest_token_ttl must be positive"))
	}
	if c.Accounting.ClientID == "" {
		errs = append(errs, errors.New("accounting.client_id is required"))
	}
	return errors.Join(errs...)
}
