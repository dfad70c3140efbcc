package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	// Admin holds the single shared moderator credential pair. The password
	// is stored as a bcrypt hash, compared as-is at login.
	Admin struct {
		Username     string `yaml:"username"`
		PasswordHash string `yaml:"password_hash"`
		NotifyEmail  string `yaml:"notify_email"`
	} `yaml:"admin"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		Enabled      bool   `yaml:"enabled"`
	} `yaml:"email"`

	Storage struct {
		Type      string `yaml:"type"`       // local, s3
		BasePath  string `yaml:"base_path"`  // for local storage
		BaseURL   string `yaml:"base_url"`   // public URL base
		Bucket    string `yaml:"bucket"`     // for S3
		Region    string `yaml:"region"`     // for S3
		AccessKey string `yaml:"access_key"` // for S3
		SecretKey string `yaml:"secret_key"` // for S3
		Endpoint  string `yaml:"endpoint"`   // for custom S3 endpoints
	} `yaml:"storage"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
}

var AppConfig *Config

// LoadConfig reads config/config.yaml, or builds the config from environment
// variables when DATABASE_URL is set (container and CI deployments).
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = getEnv("SERVER_ENV", "production")
	cfg.Server.Host = getEnv("SERVER_HOST", "0.0.0.0")
	cfg.Server.Port, _ = strconv.Atoi(getEnv("SERVER_PORT", "4000"))

	cfg.Admin.Username = getEnv("ADMIN_USERNAME", "admin")
	cfg.Admin.PasswordHash = os.Getenv("ADMIN_PASSWORD_HASH")
	cfg.Admin.NotifyEmail = os.Getenv("ADMIN_NOTIFY_EMAIL")

	cfg.Email.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.Email.SMTPPort, _ = strconv.Atoi(getEnv("SMTP_PORT", "587"))
	cfg.Email.SMTPUsername = os.Getenv("SMTP_USER")
	cfg.Email.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.Email.FromEmail = getEnv("SMTP_FROM", "noreply@jobboard.local")
	cfg.Email.Enabled = cfg.Email.SMTPHost != ""

	cfg.Storage.Type = getEnv("STORAGE_TYPE", "local")
	cfg.Storage.BasePath = getEnv("STORAGE_BASE_PATH", "./uploads")
	cfg.Storage.BaseURL = getEnv("STORAGE_BASE_URL", "/files")
	cfg.Storage.Bucket = os.Getenv("STORAGE_BUCKET")
	cfg.Storage.Region = os.Getenv("STORAGE_REGION")
	cfg.Storage.AccessKey = os.Getenv("STORAGE_ACCESS_KEY")
	cfg.Storage.SecretKey = os.Getenv("STORAGE_SECRET_KEY")
	cfg.Storage.Endpoint = os.Getenv("STORAGE_ENDPOINT")

	AppConfig = &cfg
}

// GetConfig returns the loaded config, loading it on first use.
func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
