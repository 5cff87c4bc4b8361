package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/eureka/pkg/fs"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// Manager interface provides access to the persisted settings.
type Manager interface {
	// GetConfigDir returns the config directory.
	GetConfigDir() string
	// DirExists checks whether the config directory exists.
	DirExists() (bool, error)
	// CreateDir creates the config directory and its parents.
	CreateDir() error
	// Read returns the trimmed value of a setting, or ErrSettingNotFound.
	Read(setting Setting) (string, error)
	// Write persists the trimmed value of a setting.
	Write(setting Setting, value string) error
	// Remove deletes a setting.
	Remove(setting Setting) error
	// Exists reports whether a setting holds a value.
	Exists(setting Setting) bool
	// Settings returns a snapshot of every setting.
	Settings() (Settings, error)
}

type realManager struct {
	fs        fs.FS
	configDir string
}

// NewManager creates a new Manager storing settings in configDir.
func NewManager(fsys fs.FS, configDir string) Manager {
	return &realManager{
		fs:        fsys,
		configDir: configDir,
	}
}

// GetConfigDir returns the config directory.
func (m *realManager) GetConfigDir() string {
	return m.configDir
}

// DirExists checks whether the config directory exists.
func (m *realManager) DirExists() (bool, error) {
	return m.fs.Exists(m.configDir)
}

// CreateDir creates the config directory and its parents.
func (m *realManager) CreateDir() error {
	if err := m.fs.MkdirAll(m.configDir, 0755); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrConfigDirCreate, m.configDir, err)
	}
	return nil
}

// Read returns the trimmed value of a setting.
func (m *realManager) Read(setting Setting) (string, error) {
	path, err := m.settingPath(setting)
	if err != nil {
		return "", err
	}

	data, err := m.fs.ReadFile(path)
	if err != nil {
		if m.fs.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrSettingNotFound, setting)
		}
		return "", fmt.Errorf("%w: %s: %w", ErrSettingRead, setting, err)
	}

	value := strings.TrimSpace(string(data))
	if value == "" {
		return "", fmt.Errorf("%w: %s", ErrSettingNotFound, setting)
	}

	return value, nil
}

// Write persists the trimmed value of a setting.
func (m *realManager) Write(setting Setting, value string) error {
	path, err := m.settingPath(setting)
	if err != nil {
		return err
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("%w: %s", ErrSettingEmpty, setting)
	}

	if err := m.fs.WriteFileAtomic(path, []byte(value), 0644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSettingWrite, setting, err)
	}

	return nil
}

// Remove deletes a setting.
func (m *realManager) Remove(setting Setting) error {
	path, err := m.settingPath(setting)
	if err != nil {
		return err
	}

	if err := m.fs.Remove(path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSettingRemove, setting, err)
	}

	return nil
}

// Exists reports whether a setting holds a value.
func (m *realManager) Exists(setting Setting) bool {
	_, err := m.Read(setting)
	return err == nil
}

// Settings returns a snapshot of every setting; missing ones are left empty.
func (m *realManager) Settings() (Settings, error) {
	var settings Settings

	values := []struct {
		setting Setting
		dst     *string
	}{
		{RepositoryPath, &settings.RepositoryPath},
		{EditorPath, &settings.EditorPath},
	}
	for _, v := range values {
		value, err := m.Read(v.setting)
		if err != nil && !errors.Is(err, ErrSettingNotFound) {
			return Settings{}, err
		}
		*v.dst = value
	}

	return settings, nil
}

// settingPath returns the file backing a setting.
func (m *realManager) settingPath(setting Setting) (string, error) {
	name := setting.FileName()
	if name == "" {
		return "", fmt.Errorf("%w: %s", ErrSettingInvalid, setting)
	}
	return filepath.Join(m.configDir, name), nil
}
