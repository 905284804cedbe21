package structs

import "time"

type Config struct {
	Server    *ServerConfig
	Cors      *CorsConfig
	Database  *DatabaseConfig
	Session   *SessionConfig
	Cache     *CacheConfig
	RateLimit *RateLimitConfig
}

type ServerConfig struct {
	AppName        string        // Smorgas Kaffet POS
	Environment    string        // development, production
	Port           string        // :8082
	ReadTimeout    time.Duration // in seconds
	WriteTimeout   time.Duration // in seconds
	IdleTimeout    time.Duration // in seconds
	MaxHeaderBytes int           // in bytes
}

type CorsConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposedHeaders   []string
	AllowCredentials bool
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	Name        string
	MaxConns    int
	MinConns    int
	MaxLifetime time.Duration // in seconds
	MaxIdleTime time.Duration // in seconds
	LockTimeout time.Duration // bound on row-lock waits, surfaced as 55P03
}

type SessionConfig struct {
	TTL time.Duration // sliding inactivity window
}

type CacheConfig struct {
	Address     string
	Username    string
	Password    string
	DB          int
	PoolSize    int
	DialTimeout time.Duration
	ReadTimeout time.Duration
	CatalogTTL  time.Duration
}

type RateLimitConfig struct {
	Enabled     bool
	AuthLimit   int
	AuthWindow  time.Duration
	WriteLimit  int
	WriteWindow time.Duration
}
