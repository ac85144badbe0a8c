package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/IanSimon23/doccheck/internal/domain"
)

// dependencyCacheDirs are excluded from directory enumeration and the
// test-pattern file walk.
var dependencyCacheDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	"target":       true,
	"__pycache__":  true,
}

// sourceDirAliases are recognized source-directory names, checked
// alphabetically so detection is deterministic across platforms.
var sourceDirAliases = map[string]bool{
	"src":    true,
	"lib":    true,
	"source": true,
}

// testDirPatterns maps known test directory names to the glob pattern
// each one contributes.
var testDirNames = []struct {
	name    string
	pattern string
}{
	{"test", "test/**/*"},
	{"tests", "tests/**/*"},
	{"__tests__", "__tests__/**/*"},
	{"spec", "spec/**/*"},
	{"e2e", "e2e/**/*"},
}

// testFrameworks maps dev-dependency names to the glob pattern their
// conventional test files follow.
var testFrameworks = []struct {
	name    string
	pattern string
}{
	{"jest", "**/*.test.{js,jsx,ts,tsx}"},
	{"vitest", "**/*.test.{js,jsx,ts,tsx}"},
	{"mocha", "**/*.spec.{js,ts}"},
	{"cypress", "cypress/**/*.cy.{js,ts}"},
	{"playwright", "**/*.spec.{js,ts}"},
	{"jasmine", "**/*.spec.{js,ts}"},
	{"ava", "**/*.test.{js,ts}"},
	{"pytest", "**/test_*.py"},
}

const maxReadmeSize = 16 * 1024

// FileScanner implements domain.ProjectScanner by reading manifests and
// enumerating the project's top-level layout.
type FileScanner struct {
	excludeDirs map[string]bool
}

func New(excludeDirs ...string) *FileScanner {
	extra := make(map[string]bool, len(excludeDirs))
	for _, d := range excludeDirs {
		extra[strings.TrimSuffix(d, "/")] = true
	}
	return &FileScanner{excludeDirs: extra}
}

// Scan builds a ProjectInfo snapshot for rootPath. Only an unreadable root
// is an error; a malformed or missing manifest degrades to a nil
// PackageManager and the scan continues.
func (s *FileScanner) Scan(rootPath string) (*domain.ProjectInfo, error) {
	absPath, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(absPath)
	if err != nil {
		return nil, fmt.Errorf("reading project root: %w", err)
	}

	info := &domain.ProjectInfo{
		Name:     filepath.Base(absPath),
		RootPath: absPath,
	}

	pm, manifestName := detectPackageManager(absPath)
	info.PackageManager = pm
	if manifestName != "" {
		info.Name = manifestName
	}
	info.Structure = buildStructure(entries)
	info.CI = detectCI(absPath)
	s.detectTests(absPath, entries, info)

	if readme := readReadme(absPath); readme != "" {
		info.Readme = readme
		info.Claims = domain.ExtractClaims(readme)
	}

	return info, nil
}

// buildStructure enumerates top-level directories, excluding hidden
// entries and dependency caches, sorted for determinism.
func buildStructure(entries []os.DirEntry) domain.DirectoryStructure {
	var dirs []string
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") || dependencyCacheDirs[e.Name()] {
			continue
		}
		dirs = append(dirs, e.Name())
	}
	sort.Strings(dirs)

	st := domain.DirectoryStructure{Directories: dirs}
	for _, d := range dirs {
		if sourceDirAliases[d] {
			st.HasSourceDir = true
			st.SourceDir = d
			break
		}
	}
	return st
}

// detectTests fills HasTests and TestPatterns: the union of known test
// directory names and known framework dev dependencies. Framework glob
// patterns are only claimed when at least one walked file matches.
func (s *FileScanner) detectTests(root string, entries []os.DirEntry, info *domain.ProjectInfo) {
	dirSet := make(map[string]bool)
	for _, e := range entries {
		if e.IsDir() {
			dirSet[e.Name()] = true
		}
	}

	for _, td := range testDirNames {
		if dirSet[td.name] {
			info.HasTests = true
			info.TestPatterns = append(info.TestPatterns, td.pattern)
		}
	}

	pm := info.PackageManager
	if pm == nil {
		return
	}

	var files []string
	for _, fw := range testFrameworks {
		if _, ok := pm.DevDependencies[fw.name]; !ok {
			continue
		}
		info.HasTests = true
		if files == nil {
			files = s.walkFiles(root)
		}
		if anyMatch(fw.pattern, files) {
			info.TestPatterns = append(info.TestPatterns, fw.pattern)
		}
	}
}

// walkFiles lists files relative to root, skipping hidden and
// dependency-cache directories.
func (s *FileScanner) walkFiles(root string) []string {
	var files []string
	_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || dependencyCacheDirs[name] || s.excludeDirs[name]) {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	return files
}

func anyMatch(pattern string, files []string) bool {
	for _, f := range files {
		if ok, err := doublestar.Match(pattern, f); err == nil && ok {
			return true
		}
	}
	return false
}

// detectCI checks the supported CI platforms by path convention,
// GitHub Actions before GitLab CI.
func detectCI(root string) *domain.CIInfo {
	workflows := filepath.Join(root, ".github", "workflows")
	if st, err := os.Stat(workflows); err == nil && st.IsDir() {
		return &domain.CIInfo{
			Platform:   domain.CIPlatformGitHubActions,
			ConfigPath: ".github/workflows",
		}
	}
	if _, err := os.Stat(filepath.Join(root, ".gitlab-ci.yml")); err == nil {
		return &domain.CIInfo{
			Platform:   domain.CIPlatformGitLabCI,
			ConfigPath: ".gitlab-ci.yml",
		}
	}
	return nil
}

// readReadme returns up to 16KB of README.md, or "" when absent.
func readReadme(root string) string {
	data, err := os.ReadFile(filepath.Join(root, "README.md"))
	if err != nil {
		return ""
	}
	if len(data) > maxReadmeSize {
		data = data[:maxReadmeSize]
	}
	return string(data)
}
