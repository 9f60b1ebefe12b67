package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_FileThenEnv(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
auth:
  jwt_secret: file-secret
  login_delay: 250ms
session:
  cookie_secret: cookie-secret
seed:
  random_seed: 7
`)
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("SERVER_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("REDIS_DB", "3")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "250ms", cfg.Auth.LoginDelay)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 3, cfg.Session.RedisDB)
	assert.Equal(t, int64(7), cfg.Seed.RandomSeed)
	// untouched defaults survive
	assert.Equal(t, "memory", cfg.Session.Store)
	assert.Equal(t, "30m", cfg.Session.TTL)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
	}{
		{
			name: "missing jwt secret",
			body: "session:\n  cookie_secret: x\n",
		},
		{
			name: "missing cookie secret",
			body: "auth:\n  jwt_secret: x\n",
		},
		{
			name: "bad login delay",
			body: "auth:\n  jwt_secret: x\n  login_delay: soon\nsession:\n  cookie_secret: x\n",
		},
		{
			name: "unknown session store",
			body: "auth:\n  jwt_secret: x\nsession:\n  cookie_secret: x\n  store: etcd\n",
		},
		{
			name: "bad env integer",
			body: "auth:\n  jwt_secret: x\nsession:\n  cookie_secret: x\n",
			env:  map[string]string{"AUTH_BCRYPT_COST": "lots"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("SESSION_COOKIE_SECRET", "c")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "1s", cfg.Auth.LoginDelay)
	assert.Len(t, cfg.Timetable.WorkingDays, 5)
}
