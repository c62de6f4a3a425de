package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Run("missing file yields empty config", func(t *testing.T) {
		cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, 0, cfg.Server.Port)
	})

	t.Run("decodes yaml", func(t *testing.T) {
		path := writeConfig(t, `
server:
  port: 8080
  env: production
  read_timeout: 5s
database:
  driver: mysql
  url: user:pass@tcp(localhost:3306)/skaters
jwt:
  secret: s3cret
  ttl: 30
upload:
  allowed_types: [image/png]
`)
		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, EnvProduction, cfg.Server.Env)
		assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, "mysql", cfg.Database.Driver)
		assert.Equal(t, "user:pass@tcp(localhost:3306)/skaters", cfg.Database.DSN)
		assert.Equal(t, 30*time.Minute, cfg.TokenTTL())
		assert.Equal(t, []string{"image/png"}, cfg.Upload.AllowedTypes)
	})

	t.Run("broken yaml is an error", func(t *testing.T) {
		path := writeConfig(t, "server: [")
		_, err := LoadFile(path)
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Run("environment overrides file and defaults fill the rest", func(t *testing.T) {
		path := writeConfig(t, `
server:
  port: 8080
database:
  driver: memory
jwt:
  secret: from-file
`)
		t.Setenv("CONFIG_PATH", path)
		t.Setenv("JWT_SECRET", "from-env")
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("ADMIN_EMAIL", "")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "from-env", cfg.JWT.Secret)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, EnvDevelopment, cfg.Server.Env)
		assert.Equal(t, 60, cfg.JWT.TTL)
		assert.Equal(t, DefaultAdminEmail, cfg.Admin.Email)
		assert.Equal(t, "local", cfg.Storage.Type)
		assert.Equal(t, "/uploads", cfg.Storage.BaseURL)
		assert.Equal(t, int64(5*1024*1024), cfg.Upload.MaxSize)
		assert.Equal(t, 40_000_000, cfg.Upload.MaxPixels)
		assert.Equal(t, ":9090", cfg.Address())
	})

	t.Run("production without secret is rejected", func(t *testing.T) {
		path := writeConfig(t, `
server:
  env: production
database:
  driver: memory
`)
		t.Setenv("CONFIG_PATH", path)
		t.Setenv("JWT_SECRET", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Database.Driver = "memory"
		applyDefaults(cfg)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults are valid", func(*Config) {}, ""},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, "invalid server port"},
		{"negative ttl", func(c *Config) { c.JWT.TTL = -1 }, "jwt ttl"},
		{"postgres without dsn", func(c *Config) { c.Database.Driver = "postgres" }, "DATABASE_URL"},
		{"unknown driver", func(c *Config) { c.Database.Driver = "sqlite" }, "unsupported database driver"},
		{"s3 without bucket", func(c *Config) { c.Storage.Type = "s3" }, "bucket"},
		{"unknown storage", func(c *Config) { c.Storage.Type = "ftp" }, "unsupported storage type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
