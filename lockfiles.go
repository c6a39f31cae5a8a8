package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/fatih/color"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// LockfileFormat enumerates the supported lockfile flavors. Each variant has
// its own parse function; detection picks the variant.
type LockfileFormat uint8

const (
	LockfileNpm LockfileFormat = iota
	LockfileYarn
	LockfilePnpm
	LockfileBun
	LockfileBunBinary
)

var lockfileNames = map[LockfileFormat]string{
	LockfileNpm:       "package-lock.json",
	LockfileYarn:      "yarn.lock",
	LockfilePnpm:      "pnpm-lock.yaml",
	LockfileBun:       "bun.lock",
	LockfileBunBinary: "bun.lockb",
}

var lockfileDetectionOrder = []LockfileFormat{
	LockfileNpm,
	LockfileYarn,
	LockfilePnpm,
	LockfileBun,
	LockfileBunBinary,
}

func (f LockfileFormat) FileName() string {
	return lockfileNames[f]
}

// DetectLockfiles returns every lockfile format present in cwd, in a fixed
// order.
func DetectLockfiles(cwd string) []LockfileFormat {
	var present []LockfileFormat
	for _, format := range lockfileDetectionOrder {
		info, err := os.Stat(filepath.Join(cwd, format.FileName()))
		if err == nil && !info.IsDir() {
			present = append(present, format)
		}
	}
	return present
}

// GetRequiredDependencies extracts the package name set recorded in the
// project's lockfile. Packages listed there are treated as necessary even
// without a direct source reference (peer dependencies, framework runtime
// packages).
//
// When more than one lockfile is present, resolution is ambiguous: a warning
// is emitted and the required set stays empty rather than guessing which
// package manager owns the project. Malformed lockfiles likewise degrade to
// an empty set so the scan continues.
func GetRequiredDependencies(cwd string) map[string]bool {
	present := DetectLockfiles(cwd)

	if len(present) == 0 {
		return map[string]bool{}
	}

	if len(present) > 1 {
		names := make([]string, 0, len(present))
		for _, format := range present {
			names = append(names, format.FileName())
		}
		warnf("Multiple lockfiles detected (%s). Please use only one package manager.", strings.Join(names, ", "))
		return map[string]bool{}
	}

	format := present[0]

	if format == LockfileBunBinary {
		warnf("bun.lockb is a binary lockfile and is not supported. Run `bun install --save-text-lockfile` to generate bun.lock.")
		return map[string]bool{}
	}

	content, err := os.ReadFile(filepath.Join(cwd, format.FileName()))
	if err != nil {
		return map[string]bool{}
	}

	switch format {
	case LockfileNpm:
		return parseNpmLockfile(content)
	case LockfileYarn:
		return parseYarnLockfile(content)
	case LockfilePnpm:
		return parsePnpmLockfile(content)
	case LockfileBun:
		return parseBunLockfile(content)
	}

	return map[string]bool{}
}

// parseNpmLockfile handles package-lock.json v1 ("dependencies" name map) and
// v2/v3 ("packages" path map with node_modules/ prefixed keys).
func parseNpmLockfile(content []byte) map[string]bool {
	required := map[string]bool{}

	var lock struct {
		Dependencies map[string]interface{} `json:"dependencies"`
		Packages     map[string]interface{} `json:"packages"`
	}
	if err := json.Unmarshal(jsonc.ToJSON(content), &lock); err != nil {
		return required
	}

	for name := range lock.Dependencies {
		if name != "" {
			required[name] = true
		}
	}

	for key := range lock.Packages {
		if name := StripLockfilePackageKey(key); name != "" {
			required[name] = true
		}
	}

	return required
}

// parseYarnLockfile handles yarn.lock's line-oriented format. Every top-level
// unindented line ending in a colon holds one or more comma separated,
// possibly quoted specifiers like `"@babel/core@^7.0.0", "@babel/core@^7.1.0":`.
func parseYarnLockfile(content []byte) map[string]bool {
	required := map[string]bool{}

	for _, line := range strings.Split(string(content), "\n") {
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			continue
		}
		line = strings.TrimRight(line, "\r")
		if !strings.HasSuffix(line, ":") {
			continue
		}

		entry := strings.TrimSuffix(line, ":")
		for _, specifier := range strings.Split(entry, ",") {
			specifier = strings.Trim(strings.TrimSpace(specifier), `"'`)
			if name := StripVersionSpecifier(specifier); name != "" {
				required[name] = true
			}
		}
	}

	return required
}

// parsePnpmLockfile handles pnpm-lock.yaml. Package keys look like
// "/@scope/name/1.0.0" (v5) or "/@scope/name@1.0.0(peer@2.0.0)" (v6+); the
// importer section lists direct dependencies by bare name.
func parsePnpmLockfile(content []byte) map[string]bool {
	required := map[string]bool{}

	var lock struct {
		Packages        map[string]interface{} `yaml:"packages"`
		Dependencies    map[string]interface{} `yaml:"dependencies"`
		DevDependencies map[string]interface{} `yaml:"devDependencies"`
	}
	if err := yaml.Unmarshal(content, &lock); err != nil {
		return required
	}

	for key := range lock.Packages {
		if name := StripLockfilePackageKey(key); name != "" {
			required[name] = true
		}
	}
	for name := range lock.Dependencies {
		if name != "" {
			required[name] = true
		}
	}
	for name := range lock.DevDependencies {
		if name != "" {
			required[name] = true
		}
	}

	return required
}

// parseBunLockfile handles bun.lock, which is JSONC (the file bun writes has
// trailing commas).
func parseBunLockfile(content []byte) map[string]bool {
	required := map[string]bool{}

	var lock struct {
		Packages map[string]interface{} `json:"packages"`
	}
	if err := json.Unmarshal(jsonc.ToJSON(content), &lock); err != nil {
		return required
	}

	for key := range lock.Packages {
		if name := StripLockfilePackageKey(key); name != "" {
			required[name] = true
		}
	}

	return required
}

// StripLockfilePackageKey reduces a lockfile package key to a bare package
// name: leading slash and node_modules/ path prefixes are dropped, then any
// trailing version specifier.
func StripLockfilePackageKey(key string) string {
	key = strings.TrimPrefix(key, "/")
	if idx := strings.LastIndex(key, NodeModulesDirName+"/"); idx >= 0 {
		key = key[idx+len(NodeModulesDirName)+1:]
	}
	if key == "" {
		return ""
	}

	// pnpm v5 keys separate name and version with a slash: "/name/1.0.0".
	// Only drop the last segment when it actually parses as a version.
	if slash := strings.LastIndex(key, "/"); slash > 0 {
		last := key[slash+1:]
		if paren := strings.Index(last, "("); paren >= 0 {
			last = last[:paren]
		}
		if _, err := semver.NewVersion(last); err == nil {
			return key[:slash]
		}
	}

	return StripVersionSpecifier(key)
}

// StripVersionSpecifier splits "name@version" into the bare name, taking the
// scope into account so "@scope/name@^1.0.0" yields "@scope/name".
func StripVersionSpecifier(specifier string) string {
	search := specifier
	offset := 0

	if strings.HasPrefix(specifier, "@") {
		slash := strings.Index(specifier, "/")
		if slash < 0 {
			return specifier
		}
		search = specifier[slash:]
		offset = slash
	}

	at := strings.Index(search, "@")
	if at < 0 {
		return specifier
	}

	return specifier[:offset+at]
}

func warnf(format string, args ...interface{}) {
	prefix := color.New(color.FgYellow, color.Bold).Sprint("Warning")
	fmt.Fprintf(os.Stderr, "%s: %s\n", prefix, fmt.Sprintf(format, args...))
}
