package git

type Git interface {

	// CurrentBranch returns the current branch name.
	// Returns "HEAD" if in detached HEAD state.
	CurrentBranch() (string, error)

	// LastCommitMessage returns the full commit message for HEAD, trimmed.
	LastCommitMessage() (string, error)

	// RemoteURL returns the configured URL for the named remote.
	RemoteURL(name string) (string, error)

	// Clone clones the repository at url into the working directory,
	// streaming git's output to the terminal.
	Clone(url string) error
}
