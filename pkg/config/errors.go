package config

import "errors"

// Error definitions for config package.
var (
	// Configuration directory errors.
	ErrConfigDirUnknown = errors.New("cannot determine config directory")
	ErrConfigDirCreate  = errors.New("failed to create config directory")

	// Setting errors.
	ErrSettingNotFound = errors.New("setting not found")
	ErrSettingInvalid  = errors.New("unknown setting")
	ErrSettingEmpty    = errors.New("setting value cannot be empty")
	ErrSettingRead     = errors.New("failed to read setting")
	ErrSettingWrite    = errors.New("failed to write setting")
	ErrSettingRemove   = errors.New("failed to remove setting")
)
