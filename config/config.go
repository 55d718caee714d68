package config

import (
	"errors"
	"os"
)

// Config holds everything the server reads from the environment at startup.
type Config struct {
	Port string

	DatabaseURL string

	// Hosted auth provider (Supabase project)
	BaasURL        string
	BaasAnonKey    string
	ServiceRoleKey string

	JWTSecret string

	AdminAPIKey string

	UploadsDir string
	CartDir    string
}

var ErrMissingServiceKey = errors.New("SUPABASE_URL and SUPABASE_SERVICE_ROLE_KEY are required for the privileged user endpoint")

func Load() *Config {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		BaasURL:        os.Getenv("SUPABASE_URL"),
		BaasAnonKey:    os.Getenv("SUPABASE_ANON_KEY"),
		ServiceRoleKey: os.Getenv("SUPABASE_SERVICE_ROLE_KEY"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AdminAPIKey:    os.Getenv("ADMIN_API_KEY"),
		UploadsDir:     getEnv("UPLOADS_DIR", "/var/www/galleryease/uploads"),
		CartDir:        getEnv("CART_DIR", "/var/www/galleryease/carts"),
	}
	return cfg
}

// ValidatePrivileged reports whether the server may mount the privileged
// user-creation endpoint. Missing keys here are fatal server-side; the
// storefront-facing auth routes degrade to provider errors instead.
func (c *Config) ValidatePrivileged() error {
	if c.BaasURL == "" || c.ServiceRoleKey == "" {
		return ErrMissingServiceKey
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
