package main

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestScanFiles(t *testing.T) {
	t.Run("finds used dependencies across source files", func(t *testing.T) {
		cwd := t.TempDir()
		writeTestFile(t, filepath.Join(cwd, "src", "index.js"), `import React from 'react';`)
		writeTestFile(t, filepath.Join(cwd, "src", "util.mjs"), `const _ = require('lodash');`)
		writeTestFile(t, filepath.Join(cwd, "README.md"), `import React from 'react';`)

		deps := map[string]bool{"react": true, "lodash": true, "moment": true}
		result := ScanFiles(cwd, deps, nil, nil)

		expectedUsed := map[string]bool{"react": true, "lodash": true}
		if !reflect.DeepEqual(result.UsedPackages, expectedUsed) {
			t.Errorf("expected used %v, got %v", expectedUsed, result.UsedPackages)
		}
		if len(result.ExploredFiles) != 2 {
			t.Errorf("expected 2 explored files, got %v", result.ExploredFiles)
		}
	})

	t.Run("ignore folder match is exact segment, not prefix", func(t *testing.T) {
		cwd := t.TempDir()
		writeTestFile(t, filepath.Join(cwd, "node_modules", "pkg", "index.js"), `require('lodash');`)
		writeTestFile(t, filepath.Join(cwd, "node_modules_backup", "index.js"), `require('lodash');`)

		deps := map[string]bool{"lodash": true}
		result := ScanFiles(cwd, deps, nil, nil)

		if !result.UsedPackages["lodash"] {
			t.Error("file under node_modules_backup should have been scanned")
		}
		if len(result.ExploredFiles) != 1 {
			t.Errorf("expected 1 explored file, got %v", result.ExploredFiles)
		}
		if len(result.IgnoredPaths) != 1 || !strings.HasSuffix(result.IgnoredPaths[0], "node_modules") {
			t.Errorf("expected node_modules to be recorded as ignored, got %v", result.IgnoredPaths)
		}
	})

	t.Run("ignore folder names also exclude files", func(t *testing.T) {
		cwd := t.TempDir()
		writeTestFile(t, filepath.Join(cwd, "src", "dist"), `require('lodash');`)
		writeTestFile(t, filepath.Join(cwd, "src", "app.js"), `export const x = 1;`)

		result := ScanFiles(cwd, map[string]bool{"lodash": true}, nil, nil)

		if result.UsedPackages["lodash"] {
			t.Error("file named after an ignore folder should not be scanned")
		}
	})

	t.Run("extra ignore globs exclude paths", func(t *testing.T) {
		cwd := t.TempDir()
		writeTestFile(t, filepath.Join(cwd, "src", "app.js"), `import 'react';`)
		writeTestFile(t, filepath.Join(cwd, "generated", "api.js"), `import 'moment';`)

		extraIgnore := CreateGlobMatchers([]string{"generated"}, filepath.ToSlash(cwd))
		result := ScanFiles(cwd, map[string]bool{"react": true, "moment": true}, nil, extraIgnore)

		expectedUsed := map[string]bool{"react": true}
		if !reflect.DeepEqual(result.UsedPackages, expectedUsed) {
			t.Errorf("expected used %v, got %v", expectedUsed, result.UsedPackages)
		}
	})

	t.Run("typescript imports the type checker reports unused are excluded", func(t *testing.T) {
		cwd := t.TempDir()
		writeTestFile(t, filepath.Join(cwd, TsConfigFileName), `{}`)
		writeTestFile(t, filepath.Join(cwd, "dead.ts"), `import { track } from '@vercel/analytics';
export const x = 1;`)
		writeTestFile(t, filepath.Join(cwd, "live.ts"), `import React from 'react';
export const y = React;`)
		stubExecCommand(t, `printf "dead.ts(1,10): error TS6133: 'track' is declared but its value is never read.\n"; exit 2`)

		deps := map[string]bool{"@vercel/analytics": true, "react": true}
		result := ScanFiles(cwd, deps, nil, nil)

		if result.UsedPackages["@vercel/analytics"] {
			t.Error("statically dead import should not count as usage")
		}
		if !result.UsedPackages["react"] {
			t.Error("genuinely used typescript import should still count")
		}
	})

	t.Run("commented out imports do not count", func(t *testing.T) {
		cwd := t.TempDir()
		writeTestFile(t, filepath.Join(cwd, "app.js"), `// import React from 'react';
export const x = 1;`)

		result := ScanFiles(cwd, map[string]bool{"react": true}, nil, nil)
		if result.UsedPackages["react"] {
			t.Error("commented out import should not count as usage")
		}
	})
}

func TestComputeUnusedDependencies(t *testing.T) {
	declared := map[string]bool{"a": true, "b": true, "c": true, "d": true, "e": true}
	used := map[string]bool{"a": true}
	required := map[string]bool{"b": true}
	ignored := map[string]bool{"c": true}

	unused := ComputeUnusedDependencies(declared, used, required, ignored)
	expected := []string{"d", "e"}
	if !reflect.DeepEqual(unused, expected) {
		t.Errorf("expected %v, got %v", expected, unused)
	}

	// unused must be disjoint from used, required and ignored
	for _, dependency := range unused {
		if used[dependency] || required[dependency] || ignored[dependency] {
			t.Errorf("dependency %s should not be in the unused set", dependency)
		}
	}
}
