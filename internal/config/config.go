package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// DB stores database connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a postgres connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		d.User, d.Pass, d.Host, d.Port, d.Name)
}

// Kafka stores order-event consumer settings. Empty brokers disable the consumer.
type Kafka struct {
	Brokers []string
	GroupID string
	Topic   string
}

// Auth stores token signing settings.
type Auth struct {
	Secret   string
	TokenTTL time.Duration
}

// RateLimit stores per-IP request limiting settings.
type RateLimit struct {
	Limit  int
	Window time.Duration
}

// Pprof stores debug server settings.
type Pprof struct {
	Port int
	User string
	Pass string
}

// Config stores all service settings.
type Config struct {
	Port      int
	DB        DB
	Kafka     Kafka
	Auth      Auth
	RateLimit RateLimit
	Pprof     Pprof
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      DefaultPort(),
		DB:        DefaultDB(),
		Kafka:     DefaultKafka(),
		Auth:      DefaultAuth(),
		RateLimit: DefaultRateLimit(),
		Pprof:     DefaultPprof(),
	}

	cfg.Port = envInt("PORT", cfg.Port)

	cfg.DB.Host = envStr("DB_HOST", cfg.DB.Host)
	cfg.DB.Port = envStr("DB_PORT", cfg.DB.Port)
	cfg.DB.User = envStr("DB_USER", cfg.DB.User)
	cfg.DB.Pass = envStr("DB_PASS", cfg.DB.Pass)
	cfg.DB.Name = envStr("DB_NAME", cfg.DB.Name)

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = splitBrokers(v)
	}
	cfg.Kafka.GroupID = envStr("KAFKA_GROUP_ID", cfg.Kafka.GroupID)
	cfg.Kafka.Topic = envStr("KAFKA_ORDERS_TOPIC", cfg.Kafka.Topic)

	cfg.Auth.Secret = envStr("AUTH_SECRET", cfg.Auth.Secret)
	cfg.Auth.TokenTTL = envDuration("AUTH_TOKEN_TTL", cfg.Auth.TokenTTL)

	cfg.RateLimit.Limit = envInt("RATE_LIMIT", cfg.RateLimit.Limit)
	cfg.RateLimit.Window = envDuration("RATE_LIMIT_WINDOW", cfg.RateLimit.Window)

	cfg.Pprof.Port = envInt("PPROF_PORT", cfg.Pprof.Port)
	cfg.Pprof.User = envStr("PPROF_USER", cfg.Pprof.User)
	cfg.Pprof.Pass = envStr("PPROF_PASS", cfg.Pprof.Pass)

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.Parse()

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.Auth.Secret == "" {
		return nil, fmt.Errorf("auth secret is required")
	}
	return cfg, nil
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitBrokers(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
