package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnv_MissingVersion(t *testing.T) {
	t.Setenv(EnvSchemaVersion, "")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	t.Setenv(EnvSchemaVersion, "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_MissingRequired(t *testing.T) {
	t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
	t.Setenv(EnvAPIBaseURL, "")
	t.Setenv(EnvPlayerID, "p1")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required environment variables")
	assert.Contains(t, err.Error(), EnvAPIBaseURL)
	assert.NotContains(t, err.Error(), EnvPlayerID)
}

func TestValidateEnvWithWarnings(t *testing.T) {
	setRequired := func(t *testing.T) {
		t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
		t.Setenv(EnvAPIBaseURL, "http://authority.test")
		t.Setenv(EnvPlayerID, "p1")
		t.Setenv(EnvJournalDriver, "")
		t.Setenv(EnvJournalDSN, "")
	}

	t.Run("example api key and dangling journal driver", func(t *testing.T) {
		setRequired(t)
		t.Setenv(EnvAPIKey, ExampleAPIKey)
		t.Setenv(EnvJournalDriver, JournalDriverSQLite)

		warnings, err := ValidateEnvWithWarnings()
		require.NoError(t, err, "Should not error even with warnings")
		require.Len(t, warnings, 2)
		assert.Contains(t, warnings[0], "API_KEY")
		assert.Contains(t, warnings[1], "JOURNAL_DSN")
	})

	t.Run("unset api key", func(t *testing.T) {
		setRequired(t)
		t.Setenv(EnvAPIKey, "")

		warnings, err := ValidateEnvWithWarnings()
		require.NoError(t, err)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "unauthenticated")
	})

	t.Run("clean", func(t *testing.T) {
		setRequired(t)
		t.Setenv(EnvAPIKey, "0123456789abcdef")

		warnings, err := ValidateEnvWithWarnings()
		require.NoError(t, err)
		assert.Empty(t, warnings)
	})

	t.Run("propagates validation error", func(t *testing.T) {
		t.Setenv(EnvSchemaVersion, "")

		_, err := ValidateEnvWithWarnings()
		assert.Error(t, err)
	})
}
