package main

import (
	"path/filepath"
	"testing"
)

func TestDetectPackageManager(t *testing.T) {
	cases := []struct {
		name      string
		lockfiles []string
		expected  PackageManager
	}{
		{name: "no lockfile defaults to npm", lockfiles: nil, expected: Npm},
		{name: "package-lock.json is npm", lockfiles: []string{"package-lock.json"}, expected: Npm},
		{name: "yarn.lock", lockfiles: []string{"yarn.lock"}, expected: Yarn},
		{name: "pnpm-lock.yaml", lockfiles: []string{"pnpm-lock.yaml"}, expected: Pnpm},
		{name: "bun.lock", lockfiles: []string{"bun.lock"}, expected: Bun},
		{name: "bun.lockb", lockfiles: []string{"bun.lockb"}, expected: Bun},
		{name: "pnpm wins over yarn and bun", lockfiles: []string{"bun.lock", "yarn.lock", "pnpm-lock.yaml"}, expected: Pnpm},
		{name: "yarn wins over bun", lockfiles: []string{"bun.lock", "yarn.lock"}, expected: Yarn},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			cwd := t.TempDir()
			for _, lockfile := range testCase.lockfiles {
				writeTestFile(t, filepath.Join(cwd, lockfile), "")
			}
			if manager := DetectPackageManager(cwd); manager != testCase.expected {
				t.Errorf("expected %s, got %s", testCase.expected, manager)
			}
		})
	}
}

func TestRemoveVerb(t *testing.T) {
	cases := []struct {
		manager PackageManager
		verb    string
	}{
		{manager: Npm, verb: "uninstall"},
		{manager: Pnpm, verb: "remove"},
		{manager: Yarn, verb: "remove"},
		{manager: Bun, verb: "remove"},
	}

	for _, testCase := range cases {
		verb, err := testCase.manager.RemoveVerb()
		if err != nil {
			t.Errorf("unexpected error for %s: %v", testCase.manager, err)
		}
		if verb != testCase.verb {
			t.Errorf("expected %s for %s, got %s", testCase.verb, testCase.manager, verb)
		}
	}

	if _, err := PackageManager("cargo").RemoveVerb(); err == nil {
		t.Error("expected an error for an unrecognized package manager")
	}
}
