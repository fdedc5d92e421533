package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save current env and restore later
	origHost := os.Getenv("DB_HOST")
	defer os.Setenv("DB_HOST", origHost)

	os.Setenv("DB_HOST", "test-host")
	os.Setenv("DB_MAX_OPEN_CONNS", "20")
	os.Setenv("MINIO_USE_SSL", "true")
	os.Setenv("APP_ENV", "production")
	defer func() {
		os.Unsetenv("DB_MAX_OPEN_CONNS")
		os.Unsetenv("MINIO_USE_SSL")
		os.Unsetenv("APP_ENV")
	}()

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.True(t, cfg.Production())
}

func TestValidate(t *testing.T) {
	t.Run("complete config passes", func(t *testing.T) {
		cfg := &AppConfig{
			Database: DatabaseConfig{Host: "db", User: "u", Name: "entries"},
			MinIO: MinIOConfig{
				Endpoint:  "minio:9000",
				AccessKey: "ak",
				SecretKey: "sk",
				Bucket:    "visuals",
			},
		}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("reports every missing variable at once", func(t *testing.T) {
		cfg := &AppConfig{
			Database: DatabaseConfig{Host: "db"},
			MinIO:    MinIOConfig{Endpoint: "minio:9000", Bucket: "visuals"},
		}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_USER")
		assert.Contains(t, err.Error(), "DB_NAME")
		assert.Contains(t, err.Error(), "MINIO_ACCESS_KEY")
		assert.Contains(t, err.Error(), "MINIO_SECRET_KEY")
		assert.NotContains(t, err.Error(), "DB_HOST")
		assert.NotContains(t, err.Error(), "MINIO_BUCKET")
	})

	t.Run("whitespace only counts as missing", func(t *testing.T) {
		cfg := &AppConfig{
			Database: DatabaseConfig{Host: "  ", User: "u", Name: "entries"},
			MinIO: MinIOConfig{
				Endpoint:  "minio:9000",
				AccessKey: "ak",
				SecretKey: "sk",
				Bucket:    "visuals",
			},
		}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_HOST")
	})
}

func TestProduction(t *testing.T) {
	assert.True(t, (&AppConfig{AppEnv: "Production"}).Production())
	assert.False(t, (&AppConfig{AppEnv: "development"}).Production())
	assert.False(t, (&AppConfig{}).Production())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
