package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr          string        `yaml:"addr"`
	JWTSecret     string        `yaml:"jwt_secret"`
	APITimeout    time.Duration `yaml:"timeout"`
	DatabasePath  string        `yaml:"database_path"`
	TokenDuration time.Duration `yaml:"token_duration"`
	Admin         AdminConfig   `yaml:"admin"`
	Email         EmailConfig   `yaml:"email"`
	RateLimit     RateConfig    `yaml:"rate_limit"`
}

// AdminConfig seeds the first admin account when the admins table is empty.
type AdminConfig struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type EmailConfig struct {
	APIKey string `yaml:"api_key"`
	From   string `yaml:"from"`
	// AdminTo receives inquiry and application notifications.
	AdminTo string `yaml:"admin_to"`
}

// RateConfig bounds public submission endpoints per client IP.
type RateConfig struct {
	Requests int           `yaml:"requests"`
	Window   time.Duration `yaml:"window"`
}

func LoadConfig(path string) (*Config, error) {
	// Optional .env next to the binary; missing file is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		Addr:          getEnv("AWTAD_ADDR", ":8080"),
		JWTSecret:     getEnv("AWTAD_JWT_SECRET", "supersecretkey"),
		APITimeout:    15 * time.Second,
		DatabasePath:  getEnv("AWTAD_DATABASE_PATH", "awtad.db"),
		TokenDuration: 1 * time.Hour,
		Admin: AdminConfig{
			Name:     getEnv("AWTAD_ADMIN_NAME", "Administrator"),
			Email:    getEnv("AWTAD_ADMIN_EMAIL", ""),
			Password: getEnv("AWTAD_ADMIN_PASSWORD", ""),
		},
		Email: EmailConfig{
			APIKey:  getEnv("AWTAD_EMAIL_API_KEY", ""),
			From:    getEnv("AWTAD_EMAIL_FROM", "Awtad Engineering <noreply@awtad.example>"),
			AdminTo: getEnv("AWTAD_EMAIL_ADMIN_TO", ""),
		},
		RateLimit: RateConfig{
			Requests: 5,
			Window:   time.Minute,
		},
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
