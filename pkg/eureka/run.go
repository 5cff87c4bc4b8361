package eureka

// Run classifies the configuration state and runs either the setup or the idea capture.
func (e *realEureka) Run() error {
	state := e.classifyRunState()
	e.VerbosePrint("Run state: %s", state)

	if state == BothPresent {
		return e.InputIdea()
	}

	return e.runSetup(state)
}

// runSetup acquires the missing settings, repository path first.
func (e *realEureka) runSetup(state RunState) error {
	if state == BothMissing {
		if err := e.ensureConfigDir(); err != nil {
			return err
		}
		e.deps.Printer.PrintWelcomeBanner()
	}

	if state.repoMissing() {
		if err := e.setupRepositoryPath(); err != nil {
			return err
		}
	}

	if state.editorMissing() {
		if err := e.setupEditorPath(); err != nil {
			return err
		}
	}

	e.deps.Printer.PrintSetupComplete()
	return nil
}

// ensureConfigDir creates the config directory if it does not exist yet.
func (e *realEureka) ensureConfigDir() error {
	exists, err := e.deps.Config.DirExists()
	if err != nil {
		return wrap(ErrConfigDirCheck, err)
	}
	if exists {
		return nil
	}

	e.VerbosePrint("Creating config directory %s", e.deps.Config.GetConfigDir())
	return e.deps.Config.CreateDir()
}
