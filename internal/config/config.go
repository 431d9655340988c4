package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Config is the application configuration tree.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Store  StoreConfig  `yaml:"store"`
	Email  EmailConfig  `yaml:"email"`
	LLM    LLMConfig    `yaml:"llm"`
	Admin  AdminConfig  `yaml:"admin"`
	Worker WorkerConfig `yaml:"worker"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
	Env  string `yaml:"env"`
}

type StoreConfig struct {
	Type     string `yaml:"type"`
	BasePath string `yaml:"base_path"`
	DSN      string `yaml:"dsn"`
}

type EmailConfig struct {
	SMTPHost     string `yaml:"smtp_host"`
	SMTPPort     int    `yaml:"smtp_port"`
	SMTPUsername string `yaml:"smtp_username"`
	SMTPPassword string `yaml:"smtp_password"`
	FromEmail    string `yaml:"from_email"`
	FromName     string `yaml:"from_name"`
	UseTLS       bool   `yaml:"use_tls"`
	Simulate     bool   `yaml:"simulate"`
}

type LLMConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url"`
}

type AdminConfig struct {
	AccessCode string `yaml:"access_code"`
	SeedDemo   bool   `yaml:"seed_demo"`
}

type WorkerConfig struct {
	PollInterval time.Duration `yaml:"poll_interval"`
}

// AppConfig is the loaded configuration, populated by LoadConfig.
var AppConfig *Config

// LoadConfig reads the yaml config file, applies environment overrides
// and stores the result in AppConfig.
func LoadConfig(path string) (*Config, error) {
	// .env is optional, ignore a missing file
	_ = godotenv.Load()

	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if cfg.Worker.PollInterval <= 0 {
		cfg.Worker.PollInterval = 5 * time.Second
	}

	AppConfig = cfg
	return cfg, nil
}

// GetConfig returns the loaded configuration.
func GetConfig() *Config {
	if AppConfig == nil {
		panic("config not loaded, call LoadConfig first")
	}
	return AppConfig
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: "8080",
			Env:  "development",
		},
		Store: StoreConfig{
			Type:     "local",
			BasePath: "./data",
		},
		Email: EmailConfig{
			SMTPPort:  587,
			FromEmail: "no-reply@technexus.com",
			FromName:  "TechNexus Solutions",
			UseTLS:    true,
			Simulate:  true,
		},
		LLM: LLMConfig{
			Provider: "none",
			Model:    "gpt-4o-mini",
		},
		Admin: AdminConfig{
			AccessCode: "ADMIN_2024",
			SeedDemo:   true,
		},
		Worker: WorkerConfig{
			PollInterval: 5 * time.Second,
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	setString(&cfg.Server.Host, "SERVER_HOST")
	setString(&cfg.Server.Port, "SERVER_PORT")
	setString(&cfg.Server.Env, "APP_ENV")

	setString(&cfg.Store.Type, "STORE_TYPE")
	setString(&cfg.Store.BasePath, "STORE_BASE_PATH")
	setString(&cfg.Store.DSN, "STORE_DSN")

	setString(&cfg.Email.SMTPHost, "SMTP_HOST")
	setInt(&cfg.Email.SMTPPort, "SMTP_PORT")
	setString(&cfg.Email.SMTPUsername, "SMTP_USERNAME")
	setString(&cfg.Email.SMTPPassword, "SMTP_PASSWORD")
	setString(&cfg.Email.FromEmail, "EMAIL_FROM")
	setString(&cfg.Email.FromName, "EMAIL_FROM_NAME")
	setBool(&cfg.Email.Simulate, "EMAIL_SIMULATE")

	setString(&cfg.LLM.Provider, "LLM_PROVIDER")
	setString(&cfg.LLM.Model, "LLM_MODEL")
	setString(&cfg.LLM.APIKey, "LLM_API_KEY")
	setString(&cfg.LLM.BaseURL, "LLM_BASE_URL")

	setString(&cfg.Admin.AccessCode, "ADMIN_ACCESS_CODE")
	setBool(&cfg.Admin.SeedDemo, "ADMIN_SEED_DEMO")

	if v := os.Getenv("WORKER_POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Worker.PollInterval = d
		}
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
