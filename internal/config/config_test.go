package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "jobsync")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("JWT_ACCESS_SECRET", "secret")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_NAME", "jobsync")
	t.Setenv("STORE_DRIVER", "")
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreDriverPostgres, cfg.App.StoreDriver)
	assert.Equal(t, 85, cfg.Matching.AcceptanceThreshold)
	assert.Equal(t, 5.0, cfg.Matching.ExperienceWeight)
	assert.Equal(t, 3.0, cfg.Matching.IndustryWeight)
	assert.Equal(t, 600*time.Second, cfg.Redis.TTL)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiresIn)
	assert.False(t, cfg.Redis.Enabled())
	assert.Contains(t, cfg.Database.DSN(), "sslmode=disable")
}

func TestLoad_MissingRequired(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_NAME", "")
	t.Setenv("JWT_ACCESS_SECRET", " ")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, errMissingRequiredEnv)
	assert.Contains(t, err.Error(), "APP_NAME")
	assert.Contains(t, err.Error(), "JWT_ACCESS_SECRET")
}

func TestLoad_FirestoreNeedsProject(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("STORE_DRIVER", "Firestore")
	t.Setenv("FIRESTORE_PROJECT_ID", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FIRESTORE_PROJECT_ID")

	t.Setenv("FIRESTORE_PROJECT_ID", "demo-project")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreDriverFirestore, cfg.App.StoreDriver)
}

func TestLoad_InvalidValues(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("MATCH_EXPERIENCE_WEIGHT", "-1")
	t.Setenv("MATCH_ACCEPTANCE_THRESHOLD", "high")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MATCH_EXPERIENCE_WEIGHT")
	assert.Contains(t, err.Error(), "MATCH_ACCEPTANCE_THRESHOLD")
}

func TestRedisConfig_Addr(t *testing.T) {
	assert.Equal(t, "cache:6379", RedisConfig{Host: "cache"}.Addr())
	assert.Equal(t, "cache:6380", RedisConfig{Host: "cache", Port: "6380"}.Addr())
}
