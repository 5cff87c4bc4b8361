//go:build unit

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/eureka/pkg/fs"
	fsmocks "github.com/lerenn/eureka/pkg/fs/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestManager(t *testing.T) (Manager, string) {
	t.Helper()
	configDir := filepath.Join(t.TempDir(), "eureka")
	return NewManager(fs.NewFS(), configDir), configDir
}

func TestSetting_FileName(t *testing.T) {
	assert.Equal(t, "repo_path", RepositoryPath.FileName())
	assert.Equal(t, "editor_path", EditorPath.FileName())
	assert.Equal(t, "", Setting(42).FileName())
}

func TestRealManager_CreateDir(t *testing.T) {
	manager, configDir := newTestManager(t)

	exists, err := manager.DirExists()
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, manager.CreateDir())

	exists, err = manager.DirExists()
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, configDir, manager.GetConfigDir())
}

func TestRealManager_WriteAndRead(t *testing.T) {
	manager, configDir := newTestManager(t)
	require.NoError(t, manager.CreateDir())

	err := manager.Write(RepositoryPath, "  /home/user/ideas\n")
	require.NoError(t, err)

	value, err := manager.Read(RepositoryPath)
	require.NoError(t, err)
	assert.Equal(t, "/home/user/ideas", value)

	// One file per setting, holding the trimmed value
	data, err := os.ReadFile(filepath.Join(configDir, "repo_path"))
	require.NoError(t, err)
	assert.Equal(t, "/home/user/ideas", string(data))

	// The other setting is untouched
	_, err = manager.Read(EditorPath)
	assert.ErrorIs(t, err, ErrSettingNotFound)
	assert.True(t, manager.Exists(RepositoryPath))
	assert.False(t, manager.Exists(EditorPath))
}

func TestRealManager_Write_Empty(t *testing.T) {
	manager, _ := newTestManager(t)

	err := manager.Write(EditorPath, "   ")
	assert.ErrorIs(t, err, ErrSettingEmpty)
}

func TestRealManager_Read_Blank(t *testing.T) {
	manager, configDir := newTestManager(t)
	require.NoError(t, manager.CreateDir())
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "editor_path"), []byte("\n"), 0644))

	_, err := manager.Read(EditorPath)
	assert.ErrorIs(t, err, ErrSettingNotFound)
	assert.False(t, manager.Exists(EditorPath))
}

func TestRealManager_Remove(t *testing.T) {
	manager, _ := newTestManager(t)
	require.NoError(t, manager.CreateDir())
	require.NoError(t, manager.Write(EditorPath, "/usr/bin/vim"))

	require.NoError(t, manager.Remove(EditorPath))
	assert.False(t, manager.Exists(EditorPath))

	// Removing again surfaces the failure
	err := manager.Remove(EditorPath)
	assert.ErrorIs(t, err, ErrSettingRemove)
}

func TestRealManager_Settings(t *testing.T) {
	manager, _ := newTestManager(t)
	require.NoError(t, manager.CreateDir())
	require.NoError(t, manager.Write(EditorPath, "/usr/bin/nano"))

	settings, err := manager.Settings()
	require.NoError(t, err)
	assert.Equal(t, Settings{EditorPath: "/usr/bin/nano"}, settings)
}

func TestRealManager_Read_IOError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	manager := NewManager(mockFS, "/config/eureka")

	ioErr := errors.New("permission denied")
	mockFS.EXPECT().ReadFile("/config/eureka/repo_path").Return(nil, ioErr).Times(2)
	mockFS.EXPECT().IsNotExist(ioErr).Return(false).Times(2)

	_, err := manager.Read(RepositoryPath)
	assert.ErrorIs(t, err, ErrSettingRead)
	assert.ErrorIs(t, err, ioErr)

	_, err = manager.Settings()
	assert.ErrorIs(t, err, ErrSettingRead)
}

func TestRealManager_CreateDir_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	manager := NewManager(mockFS, "/config/eureka")

	mockFS.EXPECT().MkdirAll("/config/eureka", os.FileMode(0755)).Return(errors.New("read-only file system"))

	err := manager.CreateDir()
	assert.ErrorIs(t, err, ErrConfigDirCreate)
}

func TestDefaultDir(t *testing.T) {
	t.Setenv(EnvConfigDir, "/custom/eureka")

	dir, err := DefaultDir()
	require.NoError(t, err)
	assert.Equal(t, "/custom/eureka", dir)

	t.Setenv(EnvConfigDir, "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	t.Setenv("HOME", "/home/user")

	dir, err = DefaultDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(userConfigDir(t), "eureka"), dir)
}

func userConfigDir(t *testing.T) string {
	t.Helper()
	dir, err := os.UserConfigDir()
	require.NoError(t, err)
	return dir
}
