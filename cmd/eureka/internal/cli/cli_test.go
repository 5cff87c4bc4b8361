//go:build unit

package cli

import (
	"path/filepath"
	"testing"

	"github.com/lerenn/eureka/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigDir(t *testing.T) {
	original := ConfigDir
	defer func() { ConfigDir = original }()

	t.Run("flag wins over environment", func(t *testing.T) {
		t.Setenv(config.EnvConfigDir, "/from/env")
		ConfigDir = "/from/flag"

		dir, err := GetConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/from/flag", dir)
	})

	t.Run("environment when no flag", func(t *testing.T) {
		t.Setenv(config.EnvConfigDir, "/from/env")
		ConfigDir = ""

		dir, err := GetConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/from/env", dir)
	})
}

func TestNewEureka(t *testing.T) {
	original := ConfigDir
	defer func() { ConfigDir = original }()

	ConfigDir = filepath.Join(t.TempDir(), "eureka")

	e, err := NewEureka()
	require.NoError(t, err)
	assert.NotNil(t, e)

	manager, err := NewConfigManager()
	require.NoError(t, err)
	assert.Equal(t, ConfigDir, manager.GetConfigDir())
}
