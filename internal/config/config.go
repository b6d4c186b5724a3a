package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Redis    RedisConfig
	Delays   DelayConfig
	LogLevel slog.Level
	// AuthPageEnabled mounts the /auth routes. The page exists but is
	// unreachable by default.
	AuthPageEnabled bool
}

type ServerConfig struct {
	Host    string
	Port    int
	GinMode string
}

// RedisConfig configures the optional availability cache. An empty Addr
// disables it.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type DelayConfig struct {
	Processing time.Duration
	Refresh    time.Duration
}

func New() (*Config, error) {
	const op = "config.New"

	_ = godotenv.Load()

	serverHost := os.Getenv("SERVER_HOST")
	if serverHost == "" {
		serverHost = "localhost"
	}

	serverPortStr := os.Getenv("SERVER_PORT")
	if serverPortStr == "" {
		serverPortStr = "8080"
	}

	serverPort, err := strconv.Atoi(serverPortStr)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid SERVER_PORT: %w", op, err)
	}

	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "" {
		ginMode = "release"
	}

	switch ginMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("%s: invalid GIN_MODE: %q", op, ginMode)
	}

	serverCfg := ServerConfig{
		Host:    serverHost,
		Port:    serverPort,
		GinMode: ginMode,
	}

	logLevel, err := parseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return nil, fmt.Errorf("%s: invalid LOG_LEVEL: %w", op, err)
	}

	redisDB := 0
	if s := os.Getenv("REDIS_DB"); s != "" {
		redisDB, err = strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid REDIS_DB: %w", op, err)
		}
	}

	cacheTTL, err := durationEnv("CACHE_TTL", 15*time.Second)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid CACHE_TTL: %w", op, err)
	}

	redisCfg := RedisConfig{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       redisDB,
		TTL:      cacheTTL,
	}

	processing, err := durationEnv("PROCESSING_DELAY", 2*time.Second)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid PROCESSING_DELAY: %w", op, err)
	}

	refresh, err := durationEnv("REFRESH_DELAY", 1500*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid REFRESH_DELAY: %w", op, err)
	}

	authEnabled := false
	if s := os.Getenv("AUTH_PAGE_ENABLED"); s != "" {
		authEnabled, err = strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid AUTH_PAGE_ENABLED: %w", op, err)
		}
	}

	return &Config{
		Server:          serverCfg,
		Redis:           redisCfg,
		Delays:          DelayConfig{Processing: processing, Refresh: refresh},
		LogLevel:        logLevel,
		AuthPageEnabled: authEnabled,
	}, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}

	if d < 0 {
		return 0, fmt.Errorf("negative duration %s", s)
	}

	return d, nil
}

func parseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, err
	}

	return l, nil
}
