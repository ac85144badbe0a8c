package profilestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/IanSimon23/doccheck/internal/domain"
)

// Store is a file-based implementation of domain.ProfileStore. The whole
// file is replaced on save; concurrent writers race and the last write
// wins, which is acceptable for a single-user local tool.
type Store struct{}

// New creates a file-based profile store.
func New() *Store {
	return &Store{}
}

// Load reads the profile config. A missing file yields an empty config,
// not an error.
func (s *Store) Load(rootPath string) (domain.ProfileConfig, error) {
	data, err := os.ReadFile(storePath(rootPath))
	if err != nil {
		if os.IsNotExist(err) {
			return domain.ProfileConfig{}, nil
		}
		return domain.ProfileConfig{}, err
	}

	var cfg domain.ProfileConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return domain.ProfileConfig{}, fmt.Errorf("parsing profile store: %w", err)
	}
	return cfg, nil
}

// Save writes the profile config, creating the .doccheck directory as
// needed.
func (s *Store) Save(rootPath string, cfg domain.ProfileConfig) error {
	dir := filepath.Join(rootPath, ".doccheck")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(storePath(rootPath), data, 0644)
}

func storePath(rootPath string) string {
	return filepath.Join(rootPath, ".doccheck", "profiles.json")
}
