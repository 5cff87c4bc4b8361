package git

// CommitAndPush stages every change in the repository, commits it and pushes it.
func (g *realGit) CommitAndPush(repoPath, message string) error {
	if err := g.Add(repoPath, "--all"); err != nil {
		return err
	}

	if err := g.Commit(repoPath, message); err != nil {
		return err
	}

	return g.Push(repoPath, DefaultRemote)
}
