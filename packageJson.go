package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/jsonc"
)

var ErrPackageJsonNotFound = errors.New("package.json not found")
var ErrPackageJsonInvalid = errors.New("invalid JSON in package.json")

var dependencySections = []string{"dependencies", "devDependencies"}

// ReadPackageJson reads and parses the dependency manifest. The content is
// passed through a JSONC filter first, so comments and trailing commas do not
// fail the run.
func ReadPackageJson(path string) (map[string]interface{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPackageJsonNotFound, path)
	}

	var pkg map[string]interface{}
	if err := json.Unmarshal(jsonc.ToJSON(content), &pkg); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPackageJsonInvalid, path)
	}

	return pkg, nil
}

// GetDeclaredDependencies extracts the declared dependency name set from a
// parsed manifest. devDependencies are folded in only on request.
func GetDeclaredDependencies(pkg map[string]interface{}, includeDev bool) map[string]bool {
	declared := map[string]bool{}

	sections := dependencySections[:1]
	if includeDev {
		sections = dependencySections
	}

	for _, section := range sections {
		deps, ok := pkg[section].(map[string]interface{})
		if !ok {
			continue
		}
		for name := range deps {
			declared[name] = true
		}
	}

	return declared
}

// GetNodeModuleName returns the base package name for an import request,
// keeping the scope for "@scope/name/sub/path" style requests.
func GetNodeModuleName(request string) string {
	splitCount := 2
	if strings.HasPrefix(request, "@") {
		splitCount = 3
	}
	parts := strings.SplitN(request, "/", splitCount)
	return strings.Join(parts[:min(splitCount-1, len(parts))], "/")
}

// RemoveDependenciesFromPackageJson rewrites the manifest with the given
// dependency names deleted from both dependency maps. Used by --clean, which
// mutates the manifest instead of invoking the package manager.
func RemoveDependenciesFromPackageJson(path string, names []string) error {
	pkg, err := ReadPackageJson(path)
	if err != nil {
		return err
	}

	removed := false
	for _, section := range dependencySections {
		deps, ok := pkg[section].(map[string]interface{})
		if !ok {
			continue
		}
		for _, name := range names {
			if _, found := deps[name]; found {
				delete(deps, name)
				removed = true
			}
		}
	}

	if !removed {
		return nil
	}

	content, err := json.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return err
	}
	content = append(content, '\n')

	return os.WriteFile(path, content, 0o644)
}
