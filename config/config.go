package config

import (
	"time"

	"github.com/ardanlabs/conf/v3"
)

type Config struct {
	conf.Version
	Web       Web
	Cors      Cors
	Auth      Auth
	RateLimit RateLimit
	Learning  Learning
}

type Web struct {
	ReadTimeout     time.Duration `conf:"default:5s"`
	WriteTimeout    time.Duration `conf:"default:10s"`
	IdleTimeout     time.Duration `conf:"default:120s"`
	ShutdownTimeout time.Duration `conf:"default:20s"`
	Address         string        `conf:"default:0.0.0.0:8000"`
}

type Cors struct {
	Origin string `conf:"default:http://localhost:5173"`
}

type Auth struct {
	SessionLifetime time.Duration `conf:"default:24h"`
	TokenLength     int           `conf:"default:32"`
}

type RateLimit struct {
	Burst    int           `conf:"default:5"`
	Interval time.Duration `conf:"default:2s"`
	Expiry   int           `conf:"default:10"`
}

type Learning struct {
	BaseURL string        `conf:"default:http://localhost:8080/api/v1"`
	Timeout time.Duration `conf:"default:10s"`
}
