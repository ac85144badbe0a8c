package scanner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/IanSimon23/doccheck/internal/adapters/outbound/scanner"
	"github.com/IanSimon23/doccheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reactFixture = "../../../../testdata/react-app"

func TestScan_NpmProject(t *testing.T) {
	s := scanner.New()
	info, err := s.Scan(reactFixture)
	require.NoError(t, err)

	assert.Equal(t, "react-app", info.Name)
	require.NotNil(t, info.PackageManager)
	assert.Equal(t, domain.PackageManagerNpm, info.PackageManager.Type)
	assert.Equal(t, "package.json", info.PackageManager.ManifestFile)
	assert.Equal(t, "^18.2.0", info.PackageManager.Dependencies["react"])
	assert.Equal(t, "^1.2.0", info.PackageManager.DevDependencies["vitest"])
	assert.Equal(t, "vite build", info.PackageManager.Scripts["build"])
}

func TestScan_DirectoryStructure(t *testing.T) {
	s := scanner.New()
	info, err := s.Scan(reactFixture)
	require.NoError(t, err)

	// Sorted, no hidden dirs, no node_modules.
	assert.Equal(t, []string{"public", "src", "tests"}, info.Structure.Directories)
	assert.True(t, info.Structure.HasSourceDir)
	assert.Equal(t, "src", info.Structure.SourceDir)
}

func TestScan_TestDetection(t *testing.T) {
	s := scanner.New()
	info, err := s.Scan(reactFixture)
	require.NoError(t, err)

	assert.True(t, info.HasTests)
	assert.Contains(t, info.TestPatterns, "tests/**/*")
	assert.Contains(t, info.TestPatterns, "**/*.test.{js,jsx,ts,tsx}")
}

func TestScan_CIDetection(t *testing.T) {
	s := scanner.New()
	info, err := s.Scan(reactFixture)
	require.NoError(t, err)

	require.NotNil(t, info.CI)
	assert.Equal(t, domain.CIPlatformGitHubActions, info.CI.Platform)
	assert.Equal(t, ".github/workflows", info.CI.ConfigPath)
}

func TestScan_ReadmeClaimsAttached(t *testing.T) {
	s := scanner.New()
	info, err := s.Scan(reactFixture)
	require.NoError(t, err)

	assert.NotEmpty(t, info.Readme)
	require.NotNil(t, info.Claims)
	assert.Equal(t, []string{"React", "Vite", "Tailwind CSS"}, info.Claims.TechStack)
	assert.Contains(t, info.Claims.Structure, "react-app/src/components/")
	assert.Equal(t, []string{"dev", "build"}, info.Claims.Commands)
}

func TestScan_PipProject(t *testing.T) {
	s := scanner.New()
	info, err := s.Scan("../../../../testdata/pip-project")
	require.NoError(t, err)

	require.NotNil(t, info.PackageManager)
	assert.Equal(t, domain.PackageManagerPip, info.PackageManager.Type)
	assert.Equal(t, "requirements.txt", info.PackageManager.ManifestFile)
	assert.Equal(t, "==3.0.0", info.PackageManager.Dependencies["flask"])
	assert.Equal(t, ">=2.31", info.PackageManager.Dependencies["requests"])
	assert.Equal(t, "", info.PackageManager.Dependencies["gunicorn"])
	assert.NotContains(t, info.PackageManager.Dependencies, "-r extra.txt")
}

func TestScan_CargoProject(t *testing.T) {
	s := scanner.New()
	info, err := s.Scan("../../../../testdata/cargo-project")
	require.NoError(t, err)

	require.NotNil(t, info.PackageManager)
	assert.Equal(t, domain.PackageManagerCargo, info.PackageManager.Type)
	assert.Equal(t, "1.0", info.PackageManager.Dependencies["serde"])
	assert.Equal(t, "1.35", info.PackageManager.Dependencies["tokio"])
	assert.Equal(t, "0.5", info.PackageManager.DevDependencies["criterion"])
}

func TestScan_GoProject(t *testing.T) {
	dir := t.TempDir()
	gomod := "module example.com/demo\n\ngo 1.22\n\nrequire github.com/spf13/cobra v1.8.0\n\nrequire github.com/spf13/pflag v1.0.5 // indirect\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte(gomod), 0644))

	info, err := scanner.New().Scan(dir)
	require.NoError(t, err)

	require.NotNil(t, info.PackageManager)
	assert.Equal(t, domain.PackageManagerGo, info.PackageManager.Type)
	assert.Equal(t, "v1.8.0", info.PackageManager.Dependencies["github.com/spf13/cobra"])
	assert.Equal(t, "v1.0.5", info.PackageManager.DevDependencies["github.com/spf13/pflag"])
}

func TestScan_MalformedPackageJSONDegrades(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte("{not json"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "src"), 0755))

	info, err := scanner.New().Scan(dir)
	require.NoError(t, err, "malformed manifest must not fail the scan")
	assert.Nil(t, info.PackageManager)
	assert.Equal(t, []string{"src"}, info.Structure.Directories)
}

func TestScan_LockfileRefinesNpmFlavor(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"name":"x"}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pnpm-lock.yaml"), []byte("lockfileVersion: 9\n"), 0644))

	info, err := scanner.New().Scan(dir)
	require.NoError(t, err)
	require.NotNil(t, info.PackageManager)
	assert.Equal(t, domain.PackageManagerPnpm, info.PackageManager.Type)

	dir2 := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir2, "package.json"), []byte(`{"name":"x"}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir2, "yarn.lock"), []byte(""), 0644))

	info, err = scanner.New().Scan(dir2)
	require.NoError(t, err)
	require.NotNil(t, info.PackageManager)
	assert.Equal(t, domain.PackageManagerYarn, info.PackageManager.Type)
}

func TestScan_ManifestOrderIsFirstMatchWins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"name":"x"}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "requirements.txt"), []byte("flask==3.0.0\n"), 0644))

	info, err := scanner.New().Scan(dir)
	require.NoError(t, err)
	require.NotNil(t, info.PackageManager)
	assert.Equal(t, domain.PackageManagerNpm, info.PackageManager.Type, "package.json outranks requirements.txt")
}

func TestScan_NoReadmeMeansNilClaims(t *testing.T) {
	dir := t.TempDir()

	info, err := scanner.New().Scan(dir)
	require.NoError(t, err)
	assert.Empty(t, info.Readme)
	assert.Nil(t, info.Claims)
}

func TestScan_UnreadableRootFails(t *testing.T) {
	_, err := scanner.New().Scan(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}
