package eureka

import "github.com/lerenn/eureka/pkg/config"

// ClearRepo removes the repository path setting, if any.
func (e *realEureka) ClearRepo() error {
	return e.clearSetting(config.RepositoryPath)
}

// ClearEditor removes the editor path setting, if any.
func (e *realEureka) ClearEditor() error {
	return e.clearSetting(config.EditorPath)
}

// clearSetting removes a setting; an absent setting is left alone.
func (e *realEureka) clearSetting(setting config.Setting) error {
	if !e.deps.Config.Exists(setting) {
		e.VerbosePrint("No %s to clear", setting)
		return nil
	}

	e.VerbosePrint("Clearing %s", setting)
	return e.deps.Config.Remove(setting)
}
