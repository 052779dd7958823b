package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "truckhub",
	Pass: "truckhub",
	Name: "truckhub",
}

var defaultKafka = Kafka{
	GroupID: "truckhub-orders",
	Topic:   "orders.events",
}

var defaultAuth = Auth{
	TokenTTL: 24 * time.Hour,
}

var defaultRateLimit = RateLimit{
	Limit:  100,
	Window: time.Second,
}

var defaultPprof = Pprof{Port: 6060}

// DefaultPort returns the default HTTP port.
func DefaultPort() int { return defaultPort }

// DefaultDB returns the default database settings.
func DefaultDB() DB { return defaultDB }

// DefaultKafka returns the default kafka settings (consumer disabled:
// no brokers).
func DefaultKafka() Kafka { return defaultKafka }

// DefaultAuth returns the default auth settings. The secret has no
// default and must come from the environment.
func DefaultAuth() Auth { return defaultAuth }

// DefaultRateLimit returns the default rate limit settings.
func DefaultRateLimit() RateLimit { return defaultRateLimit }

// DefaultPprof returns the default pprof server settings.
func DefaultPprof() Pprof { return defaultPprof }
