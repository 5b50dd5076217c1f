package config

import "time"

// DBConfig contains PostgreSQL database configuration.
type DBConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"website"`
	Password string `env:"PASSWORD" envDefault:"website"`
	Name     string `env:"NAME"     envDefault:"website"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"` // Use 'disable' for local dev, 'require' for production
	// RunMigrationsOnStart controls whether the application automatically applies migrations during startup.
	RunMigrationsOnStart bool `env:"RUN_MIGRATIONS_ON_START" envDefault:"true"`
}

// CacheConfig contains the Redis content cache configuration.
type CacheConfig struct {
	RedisAddr     string `env:"CACHE_REDIS_ADDR"     envDefault:"localhost:6379"`
	RedisPassword string `env:"CACHE_REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"CACHE_REDIS_DB"       envDefault:"0"`

	// ProjectTTL is the TTL for the cached public project list.
	ProjectTTL time.Duration `env:"CACHE_PROJECT_TTL" envDefault:"5m"`

	// Enabled toggles the content cache. When false the public site reads
	// straight from Postgres.
	Enabled bool `env:"CACHE_ENABLED" envDefault:"true"`
}
