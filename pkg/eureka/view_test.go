//go:build unit

package eureka

import (
	"errors"
	"testing"

	"github.com/lerenn/eureka/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestRealEureka_OpenIdeaFile(t *testing.T) {
	e, m := newTestEureka(t)

	m.Config.EXPECT().Read(config.RepositoryPath).Return(testRepoPath, nil)
	m.FS.EXPECT().Which(DefaultPager).Return("/usr/bin/less", nil)
	m.FS.EXPECT().ExecuteInteractive("/usr/bin/less", testNotesPath).Return(0, nil)

	err := e.OpenIdeaFile()
	assert.NoError(t, err)
}

func TestRealEureka_OpenIdeaFile_CustomPager(t *testing.T) {
	e, m := newTestEureka(t)

	m.Config.EXPECT().Read(config.RepositoryPath).Return(testRepoPath, nil)
	m.FS.EXPECT().Which("bat").Return("/usr/bin/bat", nil)
	m.FS.EXPECT().ExecuteInteractive("/usr/bin/bat", testNotesPath).Return(0, nil)

	err := e.OpenIdeaFile(OpenIdeaFileOpts{Pager: "bat"})
	assert.NoError(t, err)
}

func TestRealEureka_OpenIdeaFile_RepositoryNotConfigured(t *testing.T) {
	e, m := newTestEureka(t)

	// Neither the pager lookup nor any process runs.
	m.Config.EXPECT().Read(config.RepositoryPath).Return("", config.ErrSettingNotFound)

	err := e.OpenIdeaFile()
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
}

func TestRealEureka_OpenIdeaFile_PagerNotFound(t *testing.T) {
	e, m := newTestEureka(t)

	m.Config.EXPECT().Read(config.RepositoryPath).Return(testRepoPath, nil)
	m.FS.EXPECT().Which(DefaultPager).Return("", errNotInstalled)

	err := e.OpenIdeaFile()
	assert.ErrorIs(t, err, ErrPagerNotFound)
}

func TestRealEureka_OpenIdeaFile_PagerLaunchFailure(t *testing.T) {
	e, m := newTestEureka(t)

	m.Config.EXPECT().Read(config.RepositoryPath).Return(testRepoPath, nil)
	m.FS.EXPECT().Which(DefaultPager).Return("/usr/bin/less", nil)
	m.FS.EXPECT().ExecuteInteractive("/usr/bin/less", testNotesPath).Return(-1, errors.New("exec format error"))

	err := e.OpenIdeaFile()
	assert.ErrorIs(t, err, ErrPagerLaunch)
	assert.Contains(t, err.Error(), testNotesPath)
}
