package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Host:    "localhost",
			Port:    5432,
			User:    "campushub",
			DBName:  "campushub",
			SSLMode: "disable",
		},
		JWT: JWTConfig{
			Secret:    strings.Repeat("x", 32),
			ExpiryMin: 60,
		},
		Matching: MatchingConfig{QueueSize: 64},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing db host", func(c *Config) { c.Database.Host = "" }, "database host"},
		{"missing db user", func(c *Config) { c.Database.User = "" }, "database user"},
		{"missing db name", func(c *Config) { c.Database.DBName = "" }, "database name"},
		{"missing jwt secret", func(c *Config) { c.JWT.Secret = "" }, "JWT secret"},
		{"short jwt secret", func(c *Config) { c.JWT.Secret = "short" }, "at least 32"},
		{"zero queue size", func(c *Config) { c.Matching.QueueSize = 0 }, "queue size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestGetDSN(t *testing.T) {
	db := &DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "app",
		Password: "secret",
		DBName:   "campushub",
		SSLMode:  "require",
	}
	want := "host=db.internal port=5433 user=app password=secret dbname=campushub sslmode=require"
	if got := db.GetDSN(); got != want {
		t.Errorf("GetDSN() = %q, want %q", got, want)
	}
}

func TestGetAddr(t *testing.T) {
	r := &RedisConfig{Host: "cache.internal", Port: 6380}
	if got := r.GetAddr(); got != "cache.internal:6380" {
		t.Errorf("GetAddr() = %q", got)
	}
}
