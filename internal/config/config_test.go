package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.Port != "3000" {
		t.Errorf("default port = %q", cfg.Server.Port)
	}
	if !cfg.Server.IsDevelopment() {
		t.Error("default environment should be development")
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		t.Error("default origins should not be empty")
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("default db port = %d", cfg.Database.Port)
	}
	if cfg.ImageHost.Provider != "" {
		t.Errorf("image host should be unset by default, got %q", cfg.ImageHost.Provider)
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Server.Port != "3000" {
		t.Errorf("port = %q", cfg.Server.Port)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  port: "8080"
  environment: production
  allowed_origins:
    - https://example.com
database:
  host: db.internal
  database: hostels
image_host:
  provider: imghippo
  imghippo:
    api_key: file-key
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q", cfg.Server.Port)
	}
	if cfg.Server.IsDevelopment() {
		t.Error("environment should be production")
	}
	if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "https://example.com" {
		t.Errorf("origins = %v", cfg.Server.AllowedOrigins)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("db host = %q", cfg.Database.Host)
	}
	// Values the file does not mention keep their defaults.
	if cfg.Database.Port != 5432 {
		t.Errorf("db port = %d", cfg.Database.Port)
	}
	if cfg.ImageHost.ImgHippo.APIKey != "file-key" {
		t.Errorf("api key = %q", cfg.ImageHost.ImgHippo.APIKey)
	}
	if cfg.ImageHost.ImgHippo.UploadURL == "" {
		t.Error("imghippo upload URL default lost")
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: \"8080\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PORT", "9090")
	t.Setenv("DB_HOST", "pg.docker")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("IMAGE_HOST_PROVIDER", "s3")
	t.Setenv("S3_USE_SSL", "true")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("env should override file, port = %q", cfg.Server.Port)
	}
	if cfg.Database.Host != "pg.docker" || cfg.Database.Port != 5433 {
		t.Errorf("db overrides lost: %s:%d", cfg.Database.Host, cfg.Database.Port)
	}
	if cfg.ImageHost.Provider != "s3" {
		t.Errorf("provider = %q", cfg.ImageHost.Provider)
	}
	if !cfg.ImageHost.S3.UseSSL {
		t.Error("S3_USE_SSL not applied")
	}
}

func TestImgHippoKeySpellings(t *testing.T) {
	t.Setenv("IMGHIPPO_API_KEY", "old-spelling")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ImageHost.ImgHippo.APIKey != "old-spelling" {
		t.Errorf("api key = %q", cfg.ImageHost.ImgHippo.APIKey)
	}

	t.Setenv("IMAGEHIPPO_API_KEY", "new-spelling")
	cfg, err = LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ImageHost.ImgHippo.APIKey != "new-spelling" {
		t.Errorf("newer spelling should win, got %q", cfg.ImageHost.ImgHippo.APIKey)
	}
}
