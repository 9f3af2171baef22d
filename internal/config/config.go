package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	ImageHost ImageHostConfig `yaml:"image_host"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port           string   `yaml:"port"`
	Environment    string   `yaml:"environment"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
}

// ImageHostConfig selects and configures the image-hosting backend
type ImageHostConfig struct {
	// Provider is "imghippo" or "s3". Empty means no backend configured;
	// upload endpoints fail with a configuration error at point of use.
	Provider string         `yaml:"provider"`
	ImgHippo ImgHippoConfig `yaml:"imghippo"`
	S3       S3Config       `yaml:"s3"`
}

// ImgHippoConfig contains ImgHippo API settings
type ImgHippoConfig struct {
	APIKey    string `yaml:"api_key"`
	UploadURL string `yaml:"upload_url"`
	DeleteURL string `yaml:"delete_url"`
}

// S3Config contains S3-compatible object storage settings
type S3Config struct {
	Endpoint      string `yaml:"endpoint"`
	AccessKey     string `yaml:"access_key"`
	SecretKey     string `yaml:"secret_key"`
	Bucket        string `yaml:"bucket"`
	UseSSL        bool   `yaml:"use_ssl"`
	PublicBaseURL string `yaml:"public_base_url"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        "3000",
			Environment: "development",
			AllowedOrigins: []string{
				"http://localhost:5173",
				"https://nyxta-neon.vercel.app",
				"https://nyxta-cms.vercel.app",
			},
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "nyxta_user",
			Password: "nyxta_pass",
			Database: "nyxta_db",
			SSLMode:  "disable",
		},
		ImageHost: ImageHostConfig{
			ImgHippo: ImgHippoConfig{
				UploadURL: "https://api.imghippo.com/v1/upload",
				DeleteURL: "https://api.imghippo.com/v1/delete",
			},
		},
	}
}

// LoadConfig loads configuration from a YAML file, then applies environment
// variable overrides. A missing file is not an error; defaults are used.
func LoadConfig(filepath string) (*Config, error) {
	config := DefaultConfig()

	if _, err := os.Stat(filepath); err == nil {
		data, err := os.ReadFile(filepath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	config.applyEnv()
	return config, nil
}

// applyEnv lets environment variables win over file values, so the same build
// runs under docker-compose and bare metal without editing the YAML.
func (c *Config) applyEnv() {
	setString(&c.Server.Port, "PORT")
	setString(&c.Server.Environment, "APP_ENV")

	setString(&c.Database.Host, "DB_HOST")
	setInt(&c.Database.Port, "DB_PORT")
	setString(&c.Database.User, "DB_USER")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.Database, "DB_NAME")
	setString(&c.Database.SSLMode, "DB_SSLMODE")

	setString(&c.ImageHost.Provider, "IMAGE_HOST_PROVIDER")
	// Both spellings of the ImgHippo key are accepted, newer one wins.
	setString(&c.ImageHost.ImgHippo.APIKey, "IMGHIPPO_API_KEY")
	setString(&c.ImageHost.ImgHippo.APIKey, "IMAGEHIPPO_API_KEY")
	setString(&c.ImageHost.ImgHippo.UploadURL, "IMAGEHIPPO_UPLOAD_URL")
	setString(&c.ImageHost.ImgHippo.DeleteURL, "IMAGEHIPPO_DELETE_URL")

	setString(&c.ImageHost.S3.Endpoint, "S3_ENDPOINT")
	setString(&c.ImageHost.S3.AccessKey, "S3_ACCESS_KEY")
	setString(&c.ImageHost.S3.SecretKey, "S3_SECRET_KEY")
	setString(&c.ImageHost.S3.Bucket, "S3_BUCKET")
	setString(&c.ImageHost.S3.PublicBaseURL, "S3_PUBLIC_BASE_URL")
	if v := os.Getenv("S3_USE_SSL"); v != "" {
		c.ImageHost.S3.UseSSL = v == "true" || v == "1"
	}
}

// IsDevelopment reports whether internal error detail may be echoed to clients.
func (c *ServerConfig) IsDevelopment() bool {
	return c.Environment == "development"
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
