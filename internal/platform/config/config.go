package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	AuthCookieName    string

	// BootstrapAdminUsername and BootstrapAdminPassword seed the first
	// admin on an empty users table. An empty password means one is
	// generated and logged at startup.
	BootstrapAdminUsername string
	BootstrapAdminPassword string

	// RedisAddr enables the shared rate-snapshot cache when set.
	RedisAddr string

	// RatesRefreshInterval is how often the exchange-rate snapshot is
	// refreshed in the background.
	RatesRefreshInterval time.Duration

	// CORSAllowOrigins is the comma-free list viper parses from the env.
	CORSAllowOrigins []string
}

// LoadConfig loads configuration from environment variables and a .env
// file if present. Defaults keep a development setup working out of the box.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "mevatur-backend")
	viper.SetDefault("AUTH_COOKIE_NAME", "auth-token")
	viper.SetDefault("BOOTSTRAP_ADMIN_USERNAME", "admin")
	viper.SetDefault("BOOTSTRAP_ADMIN_PASSWORD", "")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("RATES_REFRESH_INTERVAL", "10m")
	viper.SetDefault("CORS_ALLOW_ORIGINS", []string{"http://localhost:3000"})

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiry = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiry)
	}
	cfg.JWTExpiryDuration = jwtExpiry

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.AuthCookieName = viper.GetString("AUTH_COOKIE_NAME")
	cfg.BootstrapAdminUsername = viper.GetString("BOOTSTRAP_ADMIN_USERNAME")
	cfg.BootstrapAdminPassword = viper.GetString("BOOTSTRAP_ADMIN_PASSWORD")
	cfg.RedisAddr = viper.GetString("REDIS_ADDR")

	refreshStr := viper.GetString("RATES_REFRESH_INTERVAL")
	refresh, err := time.ParseDuration(refreshStr)
	if err != nil || refresh <= 0 {
		refresh = 10 * time.Minute
		if refreshStr != "" {
			log.Printf("Warning: Invalid value for RATES_REFRESH_INTERVAL ('%s'). Defaulting to %s.\n", refreshStr, refresh)
		}
	}
	cfg.RatesRefreshInterval = refresh

	cfg.CORSAllowOrigins = viper.GetStringSlice("CORS_ALLOW_ORIGINS")

	return cfg, nil
}
