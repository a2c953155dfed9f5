package config

import (
	"alcyxob/gym-coach/internal/domain"
	"alcyxob/gym-coach/internal/generator"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig without a file: %v", err)
	}
	if cfg.Server.Address != ":8080" {
		t.Errorf("Server.Address = %q", cfg.Server.Address)
	}
	if cfg.Database.Enabled || cfg.S3.Enabled {
		t.Errorf("database and s3 must be disabled by default")
	}
	if cfg.Database.Timeout != 10*time.Second {
		t.Errorf("Database.Timeout = %v", cfg.Database.Timeout)
	}
	if cfg.S3.URLExpiry != 15*time.Minute {
		t.Errorf("S3.URLExpiry = %v", cfg.S3.URLExpiry)
	}
	if cfg.JWT.Expiration != time.Hour {
		t.Errorf("JWT.Expiration = %v", cfg.JWT.Expiration)
	}
	if !cfg.Seed.Demo {
		t.Errorf("Seed.Demo should default to true")
	}
	if got := cfg.GoalRules(); len(got) != len(generator.DefaultRules()) {
		t.Errorf("GoalRules() = %v, want defaults", got)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  address: ":9090"
jwt:
  secret: "s3cret"
  expiration: 30m
goals:
  rules:
    - profile: weight_loss
      keywords: [adelgazar]
    - profile: strength
      keywords: [fuerza, musculo]
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Address != ":9090" || cfg.JWT.Secret != "s3cret" || cfg.JWT.Expiration != 30*time.Minute {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	rules := cfg.GoalRules()
	if len(rules) != 2 {
		t.Fatalf("GoalRules() len = %d, want 2", len(rules))
	}
	if rules[0].Profile != domain.ProfileWeightLoss || rules[1].Keywords[1] != "musculo" {
		t.Fatalf("GoalRules() = %+v", rules)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":7070")
	t.Setenv("SEED_DEMO", "false")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Address != ":7070" {
		t.Errorf("Server.Address = %q, want env value", cfg.Server.Address)
	}
	if cfg.Seed.Demo {
		t.Errorf("Seed.Demo should be overridden to false")
	}
}

func TestLoadConfigS3FromEnv(t *testing.T) {
	t.Setenv("S3_ENABLED", "true")
	t.Setenv("S3_ENDPOINT", "http://minio:9000")
	t.Setenv("S3_REGION", "us-east-1")
	t.Setenv("S3_ACCESS_KEY_ID", "AKIA")
	t.Setenv("S3_SECRET_ACCESS_KEY", "shh")
	t.Setenv("S3_BUCKET_NAME", "reports")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	want := S3Config{
		Enabled:         true,
		Endpoint:        "http://minio:9000",
		Region:          "us-east-1",
		AccessKeyID:     "AKIA",
		SecretAccessKey: "shh",
		BucketName:      "reports",
		URLExpiry:       15 * time.Minute,
	}
	if cfg.S3 != want {
		t.Fatalf("S3 = %+v, want %+v", cfg.S3, want)
	}
	if cfg.JWT.Secret != "s3cret" {
		t.Fatalf("JWT.Secret = %q", cfg.JWT.Secret)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(dir); err == nil {
		t.Fatal("expected an error for malformed yaml")
	}
}
