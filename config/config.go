package config

import (
	"smorgas_server/structs"
	"sync"
	"time"
)

var (
	configInstance *structs.Config
	configOnce     sync.Once
)

func GetConfig() *structs.Config {
	configOnce.Do(func() {
		configInstance = &structs.Config{
			Server: &structs.ServerConfig{
				AppName:        getEnvAsString("APP_NAME", "Smorgas_Kaffet_no_env"),
				Environment:    getEnvAsString("APP_ENV", "development"),
				Port:           getEnvAsString("APP_PORT", ":8082"),
				ReadTimeout:    getEnvAsTimeDuration("SERVER_READ_TIME_OUT", 15*time.Second),
				WriteTimeout:   getEnvAsTimeDuration("SERVER_WRITE_TIME_OUT", 15*time.Second),
				IdleTimeout:    getEnvAsTimeDuration("SERVER_IDLE_TIME_OUT", 60*time.Second),
				MaxHeaderBytes: getEnvAsInt("SERVER_MAX_HEADER_BYTES", 1<<20), // 1 MB
			},
			Cors: &structs.CorsConfig{
				AllowOrigins:     getEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"localhost", "http://localhost:3000"}),
				AllowMethods:     getEnvAsSlice("CORS_ALLOW_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
				AllowHeaders:     getEnvAsSlice("CORS_ALLOW_HEADERS", []string{"Origin", "Content-Type", "Accept", "Authorization"}),
				AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", true),
				ExposedHeaders:   getEnvAsSlice("CORS_EXPOSED_HEADERS", []string{"Content-Length"}),
			},
			Database: &structs.DatabaseConfig{
				Host:        getEnvAsString("DB_HOST", "localhost"),
				Port:        getEnvAsInt("DB_PORT", 5432),
				User:        getEnvAsString("DB_USER", "postgres"),
				Password:    getEnvAsString("DB_PASSWORD", "password"),
				Name:        getEnvAsString("DB_NAME", "smorgas_db"),
				MaxConns:    getEnvAsInt("DB_MAX_CONNS", 10),
				MinConns:    getEnvAsInt("DB_MIN_CONNS", 2),
				MaxLifetime: getEnvAsTimeDuration("DB_MAX_LIFETIME", 30*time.Minute),
				MaxIdleTime: getEnvAsTimeDuration("DB_MAX_IDLE_TIME", 5*time.Minute),
				LockTimeout: getEnvAsTimeDuration("DB_LOCK_TIMEOUT", 5*time.Second),
			},
			Session: &structs.SessionConfig{
				TTL: getEnvAsTimeDuration("SESSION_TTL", 30*time.Minute),
			},
			Cache: &structs.CacheConfig{
				Address:     getEnvAsString("CACHE_ADDRESS", "localhost:6379"),
				Username:    getEnvAsString("CACHE_USERNAME", ""),
				Password:    getEnvAsString("CACHE_PASSWORD", ""),
				DB:          getEnvAsInt("CACHE_DB", 0),
				PoolSize:    getEnvAsInt("CACHE_POOL_SIZE", 10),
				DialTimeout: getEnvAsTimeDuration("CACHE_DIAL_TIMEOUT", 5*time.Second),
				ReadTimeout: getEnvAsTimeDuration("CACHE_READ_TIMEOUT", 3*time.Second),
				CatalogTTL:  getEnvAsTimeDuration("CACHE_CATALOG_TTL", 10*time.Minute),
			},
			RateLimit: &structs.RateLimitConfig{
				Enabled:     getEnvAsBool("RATE_LIMIT_ENABLED", true),
				AuthLimit:   getEnvAsInt("RATE_LIMIT_AUTH", 10),
				AuthWindow:  getEnvAsTimeDuration("RATE_LIMIT_AUTH_WINDOW", time.Minute),
				WriteLimit:  getEnvAsInt("RATE_LIMIT_WRITE", 60),
				WriteWindow: getEnvAsTimeDuration("RATE_LIMIT_WRITE_WINDOW", time.Minute),
			},
		}
	})
	return configInstance
}

func GetLogLevel() string {
	if GetConfig().Server.Environment == "production" {
		return "info"
	}
	return "debug"
}

func IsProduction() bool {
	return GetConfig().Server.Environment == "production"
}
