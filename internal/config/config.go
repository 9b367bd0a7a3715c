package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		Driver string `yaml:"driver"` // postgres, mysql, sqlite
		DSN    string `yaml:"dsn"`
	} `yaml:"database"`

	// Provider is the external backend (identity + storage) the core talks
	// to. Endpoint and ServiceKey missing switches the whole core into stub
	// mode: writes fail with NOT_CONFIGURED, reads return empty collections.
	Provider struct {
		Endpoint       string `yaml:"endpoint"`
		ServiceKey     string `yaml:"service_key"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"provider"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Storage struct {
		Type      string `yaml:"type"`       // local, s3, cloudflare_r2
		BasePath  string `yaml:"base_path"`  // for local storage
		BaseURL   string `yaml:"base_url"`   // public URL base
		Bucket    string `yaml:"bucket"`     // for S3/R2
		Region    string `yaml:"region"`     // for S3
		AccessKey string `yaml:"access_key"` // for S3/R2
		SecretKey string `yaml:"secret_key"` // for S3/R2
		Endpoint  string `yaml:"endpoint"`   // for R2 or custom S3
	} `yaml:"storage"`

	Uploads struct {
		// Policy decides what a failed document upload does to the rest of
		// the registration: "best_effort" skips the document and continues,
		// "atomic" aborts the registration and deletes what already landed.
		Policy       string   `yaml:"policy"`
		MaxSize      int64    `yaml:"max_size"`
		AllowedTypes []string `yaml:"allowed_types"`
	} `yaml:"uploads"`

	Email EmailConfig `yaml:"email"`

	FirstAdminEmail    string `yaml:"-"`
	FirstAdminPassword string `yaml:"-"`
}

type EmailConfig struct {
	SMTPHost     string `yaml:"smtp_host"`
	SMTPPort     int    `yaml:"smtp_port"`
	SMTPUser     string `yaml:"smtp_user"`
	SMTPPassword string `yaml:"smtp_password"`
	From         string `yaml:"from"`
}

const (
	UploadPolicyBestEffort = "best_effort"
	UploadPolicyAtomic     = "atomic"
)

var AppConfig *Config

func LoadConfig() {
	var cfg Config

	dbDSN := os.Getenv("DATABASE_URL")

	if dbDSN == "" {
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
	} else {
		// Env-driven configuration (tests, containers).
		cfg.Database.Driver = envOr("DATABASE_DRIVER", "postgres")
		cfg.Database.DSN = dbDSN
		cfg.Server.Env = os.Getenv("SERVER_ENV")
		cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
		cfg.JWT.TTL = 60

		cfg.Storage.Type = "local"
		cfg.Storage.BasePath = "./uploads"
		cfg.Storage.BaseURL = "/api/v1/files"
	}

	// Provider credentials and the admin seed are secrets; they always come
	// from the environment, never the yaml file.
	if v := os.Getenv("PROVIDER_ENDPOINT"); v != "" {
		cfg.Provider.Endpoint = v
	}
	if v := os.Getenv("PROVIDER_SERVICE_KEY"); v != "" {
		cfg.Provider.ServiceKey = v
	}
	cfg.FirstAdminEmail = os.Getenv("FIRST_ADMIN_EMAIL")
	cfg.FirstAdminPassword = os.Getenv("FIRST_ADMIN_PASSWORD")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Provider.TimeoutSeconds <= 0 {
		cfg.Provider.TimeoutSeconds = 10
	}
	if cfg.Uploads.Policy == "" {
		cfg.Uploads.Policy = UploadPolicyBestEffort
	}
	if cfg.Uploads.MaxSize <= 0 {
		cfg.Uploads.MaxSize = 10 * 1024 * 1024 // 10MB
	}
	if len(cfg.Uploads.AllowedTypes) == 0 {
		cfg.Uploads.AllowedTypes = []string{
			"application/pdf", "image/jpeg", "image/png",
		}
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "postgres"
	}
	if cfg.JWT.TTL <= 0 {
		cfg.JWT.TTL = 60
	}
}

// Configured reports whether the external provider is set up. When false the
// app runs in stub mode.
func (c *Config) Configured() bool {
	return c.Provider.Endpoint != "" && c.Provider.ServiceKey != ""
}

// ProviderTimeout is the per-call deadline for identity, storage, and store
// operations.
func (c *Config) ProviderTimeout() time.Duration {
	return time.Duration(c.Provider.TimeoutSeconds) * time.Second
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
