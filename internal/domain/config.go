package domain

import "fmt"

// ToolConfig holds tool-level configuration loaded from .doccheck.yaml.
type ToolConfig struct {
	DocsFile     string   `yaml:"docs_file"     json:"docs_file,omitempty"`
	ExcludeDirs  []string `yaml:"exclude_dirs"  json:"exclude_dirs,omitempty"`
	ListenAddr   string   `yaml:"listen_addr"   json:"listen_addr,omitempty"`
	Profile      string   `yaml:"profile"       json:"profile,omitempty"`
}

// DefaultToolConfig returns the configuration used when no .doccheck.yaml
// exists.
func DefaultToolConfig() ToolConfig {
	return ToolConfig{
		DocsFile:   "PROJECT.md",
		ListenAddr: "127.0.0.1:8732",
	}
}

// Validate checks the config for unusable values.
func (c ToolConfig) Validate() error {
	if c.DocsFile == "" {
		return fmt.Errorf("docs_file must not be empty")
	}
	for _, d := range c.ExcludeDirs {
		if d == "" {
			return fmt.Errorf("exclude_dirs entries must not be empty")
		}
	}
	return nil
}
