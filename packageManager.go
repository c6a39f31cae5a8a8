package main

import (
	"fmt"
	"os"
	"path/filepath"
)

type PackageManager string

const (
	Npm  PackageManager = "npm"
	Pnpm PackageManager = "pnpm"
	Yarn PackageManager = "yarn"
	Bun  PackageManager = "bun"
)

var packageManagerLockfiles = []struct {
	lockfile string
	manager  PackageManager
}{
	{"pnpm-lock.yaml", Pnpm},
	{"yarn.lock", Yarn},
	{"bun.lock", Bun},
	{"bun.lockb", Bun},
}

// DetectPackageManager picks the package manager from lockfile presence.
// First match wins (pnpm > yarn > bun); npm is the default when no lockfile
// is recognized.
func DetectPackageManager(cwd string) PackageManager {
	for _, candidate := range packageManagerLockfiles {
		if _, err := os.Stat(filepath.Join(cwd, candidate.lockfile)); err == nil {
			return candidate.manager
		}
	}
	return Npm
}

// RemoveVerb returns the manager's subcommand for removing a dependency.
func (pm PackageManager) RemoveVerb() (string, error) {
	switch pm {
	case Npm:
		return "uninstall", nil
	case Pnpm, Yarn, Bun:
		return "remove", nil
	}
	return "", fmt.Errorf("unsupported package manager: %s", pm)
}
