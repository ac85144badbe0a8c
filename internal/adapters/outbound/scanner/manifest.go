package scanner

import (
	"encoding/json"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/mod/modfile"

	"github.com/IanSimon23/doccheck/internal/domain"
)

// detectPackageManager probes manifests in a fixed, first-match-wins
// order: package.json, then requirements.txt, then Cargo.toml, then
// go.mod. A malformed manifest counts as absent so the scan never fails
// on bad input; detection simply falls through to the next candidate.
// The second return value is the project name declared by the manifest,
// "" when the manifest carries none.
func detectPackageManager(root string) (*domain.PackageManagerInfo, string) {
	if pm, name := parsePackageJSON(root); pm != nil {
		return pm, name
	}
	if pm := parseRequirementsTxt(root); pm != nil {
		return pm, ""
	}
	if pm, name := parseCargoToml(root); pm != nil {
		return pm, name
	}
	return parseGoMod(root)
}

type packageJSON struct {
	Name            string            `json:"name"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Scripts         map[string]string `json:"scripts"`
}

func parsePackageJSON(root string) (*domain.PackageManagerInfo, string) {
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		return nil, ""
	}

	var manifest packageJSON
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, ""
	}

	return &domain.PackageManagerInfo{
		Type:            npmFlavor(root),
		ManifestFile:    "package.json",
		Dependencies:    manifest.Dependencies,
		DevDependencies: manifest.DevDependencies,
		Scripts:         manifest.Scripts,
	}, manifest.Name
}

// npmFlavor refines an npm-style project by lockfile: pnpm, then yarn,
// then plain npm.
func npmFlavor(root string) domain.PackageManagerType {
	if _, err := os.Stat(filepath.Join(root, "pnpm-lock.yaml")); err == nil {
		return domain.PackageManagerPnpm
	}
	if _, err := os.Stat(filepath.Join(root, "yarn.lock")); err == nil {
		return domain.PackageManagerYarn
	}
	return domain.PackageManagerNpm
}

// versionOps are the constraint operators a requirements.txt line may use,
// longest first so "==" wins over "=".
var versionOps = []string{"===", "==", ">=", "<=", "~=", "!=", ">", "<"}

func parseRequirementsTxt(root string) *domain.PackageManagerInfo {
	data, err := os.ReadFile(filepath.Join(root, "requirements.txt"))
	if err != nil {
		return nil
	}

	deps := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}
		name, version := line, ""
		for _, op := range versionOps {
			if idx := strings.Index(line, op); idx >= 0 {
				name = strings.TrimSpace(line[:idx])
				version = strings.TrimSpace(line[idx:])
				break
			}
		}
		// Extras like "requests[socks]" reduce to the bare name.
		if idx := strings.Index(name, "["); idx >= 0 {
			name = name[:idx]
		}
		if name != "" {
			deps[name] = version
		}
	}

	return &domain.PackageManagerInfo{
		Type:         domain.PackageManagerPip,
		ManifestFile: "requirements.txt",
		Dependencies: deps,
	}
}

type cargoManifest struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Dependencies    map[string]any `toml:"dependencies"`
	DevDependencies map[string]any `toml:"dev-dependencies"`
}

func parseCargoToml(root string) (*domain.PackageManagerInfo, string) {
	data, err := os.ReadFile(filepath.Join(root, "Cargo.toml"))
	if err != nil {
		return nil, ""
	}

	var manifest cargoManifest
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return nil, ""
	}

	return &domain.PackageManagerInfo{
		Type:            domain.PackageManagerCargo,
		ManifestFile:    "Cargo.toml",
		Dependencies:    cargoVersions(manifest.Dependencies),
		DevDependencies: cargoVersions(manifest.DevDependencies),
	}, manifest.Package.Name
}

// cargoVersions flattens cargo dependency values: either a bare version
// string or a table with a "version" key.
func cargoVersions(deps map[string]any) map[string]string {
	if len(deps) == 0 {
		return nil
	}
	out := make(map[string]string, len(deps))
	for name, v := range deps {
		switch val := v.(type) {
		case string:
			out[name] = val
		case map[string]any:
			if ver, ok := val["version"].(string); ok {
				out[name] = ver
			} else {
				out[name] = ""
			}
		default:
			out[name] = ""
		}
	}
	return out
}

func parseGoMod(root string) (*domain.PackageManagerInfo, string) {
	data, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		return nil, ""
	}

	f, err := modfile.Parse("go.mod", data, nil)
	if err != nil {
		return nil, ""
	}

	deps := make(map[string]string)
	indirect := make(map[string]string)
	for _, r := range f.Require {
		if r.Indirect {
			indirect[r.Mod.Path] = r.Mod.Version
		} else {
			deps[r.Mod.Path] = r.Mod.Version
		}
	}

	name := ""
	if f.Module != nil {
		name = path.Base(f.Module.Mod.Path)
	}

	return &domain.PackageManagerInfo{
		Type:            domain.PackageManagerGo,
		ManifestFile:    "go.mod",
		Dependencies:    deps,
		DevDependencies: indirect,
	}, name
}
