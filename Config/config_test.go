package Config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("DATABASE_URL", "host=localhost user=app dbname=app")
	t.Setenv("ALGORITHM", "")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "")
	t.Setenv("LISTEN_PORT", "")

	settings, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "HS256", settings.Algorithm)
	assert.Equal(t, 30, settings.AccessTokenExpireMinutes)
	assert.Equal(t, "8000", settings.ListenPort)
}

func TestLoadMissingSecret(t *testing.T) {
	t.Setenv("SECRET_KEY", "")
	t.Setenv("DATABASE_URL", "host=localhost user=app dbname=app")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadMissingDatabaseURL(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsUnknownAlgorithm(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("DATABASE_URL", "host=localhost user=app dbname=app")
	t.Setenv("ALGORITHM", "RS256")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadExpiry(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("DATABASE_URL", "host=localhost user=app dbname=app")
	t.Setenv("ALGORITHM", "HS256")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "zero")

	_, err := Load()
	assert.Error(t, err)
}
