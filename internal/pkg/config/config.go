package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Server is the configuration of the API process.
type Server struct {
	Port     string `env:"PORT,      default=5000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth  AuthConfig
	Mongo MongoConfig
	Redis RedisConfig
	CORS  CORSConfig
}

type AuthConfig struct {
	// JWTSecret signs session tokens. It must never be logged.
	JWTSecret string        `env:"JWT_SECRET, required"`
	TokenTTL  time.Duration `env:"JWT_TTL,    default=720h"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=portfolio"`
}

// RedisConfig is optional; an empty Addr disables token revocation.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

func (r RedisConfig) Enabled() bool { return r.Addr != "" }

type CORSConfig struct {
	AllowOrigins []string `env:"CORS_ALLOW_ORIGINS, default=http://localhost:3000"`
}

// IsProduction reports whether the process runs with ENV=production.
func (s *Server) IsProduction() bool {
	return strings.EqualFold(s.Env, "production")
}

// Client is the configuration of API consumers (SDK, CLI).
type Client struct {
	APIURL  string        `env:"PORTFOLIO_API_URL, default=http://localhost:5000/api"`
	Timeout time.Duration `env:"PORTFOLIO_TIMEOUT, default=10s"`
}

// LoadServer reads server configuration. A nil lookuper reads the OS environment.
func LoadServer(ctx context.Context, l envconfig.Lookuper) (*Server, error) {
	var cfg Server
	if err := process(ctx, &cfg, l); err != nil {
		return nil, fmt.Errorf("config: server: %w", err)
	}
	return &cfg, nil
}

// LoadClient reads client configuration. A nil lookuper reads the OS environment.
func LoadClient(ctx context.Context, l envconfig.Lookuper) (*Client, error) {
	var cfg Client
	if err := process(ctx, &cfg, l); err != nil {
		return nil, fmt.Errorf("config: client: %w", err)
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	return &cfg, nil
}

func process(ctx context.Context, target any, l envconfig.Lookuper) error {
	if l == nil {
		l = envconfig.OsLookuper()
	}
	return envconfig.ProcessWith(ctx, &envconfig.Config{Target: target, Lookuper: l})
}
