package domain

// ProjectScanner produces a project snapshot from a root directory.
type ProjectScanner interface {
	Scan(rootPath string) (*ProjectInfo, error)
}

// ConfigLoader reads tool configuration for a project.
type ConfigLoader interface {
	Load(rootPath string) (ToolConfig, error)
}

// ProfileStore persists the named profiles and global defaults.
type ProfileStore interface {
	Load(rootPath string) (ProfileConfig, error)
	Save(rootPath string, cfg ProfileConfig) error
}

// GitInfo answers version-control questions about a project directory.
type GitInfo interface {
	IsGitRepo(rootPath string) bool
	CommitHash(rootPath string) (string, error)
}
