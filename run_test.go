package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func setupProject(t *testing.T) string {
	t.Helper()
	cwd := t.TempDir()
	writeTestFile(t, filepath.Join(cwd, PackageJsonFileName),
		`{"dependencies": {"react": "^18.0.0", "lodash": "^4.17.21"}}`)
	writeTestFile(t, filepath.Join(cwd, "src", "index.js"), `import React from 'react';`)
	return cwd
}

func TestRunCheck(t *testing.T) {
	color.NoColor = true

	t.Run("declared but unreferenced dependency is unused", func(t *testing.T) {
		cwd := setupProject(t)
		var out bytes.Buffer

		if err := RunCheck(CheckOptions{Cwd: cwd, Out: &out}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := out.String()
		if !strings.Contains(output, "Unused Dependencies:") || !strings.Contains(output, "- lodash") {
			t.Errorf("lodash should be reported unused, got:\n%s", output)
		}
		if !strings.Contains(output, "Used Dependencies:") || !strings.Contains(output, "- react") {
			t.Errorf("react should be reported used, got:\n%s", output)
		}
	})

	t.Run("cnpignore suppresses the unused flag", func(t *testing.T) {
		cwd := setupProject(t)
		writeTestFile(t, filepath.Join(cwd, CnpIgnoreFileName), "lodash\n")
		var out bytes.Buffer

		if err := RunCheck(CheckOptions{Cwd: cwd, Out: &out}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(out.String(), "No unused dependencies found!") {
			t.Errorf("ignored dependency should not be flagged, got:\n%s", out.String())
		}
	})

	t.Run("lockfile-required dependency is not unused", func(t *testing.T) {
		cwd := setupProject(t)
		writeTestFile(t, filepath.Join(cwd, "package-lock.json"),
			`{"packages": {"": {}, "node_modules/lodash": {"version": "4.17.21"}}}`)
		var out bytes.Buffer

		if err := RunCheck(CheckOptions{Cwd: cwd, Out: &out}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(out.String(), "No unused dependencies found!") {
			t.Errorf("lockfile-listed dependency should not be flagged, got:\n%s", out.String())
		}
	})

	t.Run("missing manifest is fatal", func(t *testing.T) {
		origStderr := os.Stderr
		r, w, err := os.Pipe()
		if err != nil {
			t.Fatalf("pipe: %v", err)
		}
		os.Stderr = w
		t.Cleanup(func() { os.Stderr = origStderr })

		var out bytes.Buffer
		runErr := RunCheck(CheckOptions{Cwd: t.TempDir(), Out: &out})

		w.Close()
		captured, _ := io.ReadAll(r)

		if !errors.Is(runErr, ErrPackageJsonNotFound) {
			t.Errorf("expected ErrPackageJsonNotFound, got %v", runErr)
		}
		// reporting the error is the caller's job; printing it here too would
		// show it twice
		if strings.Contains(string(captured), "Error:") {
			t.Errorf("RunCheck should not print the error itself, stderr got %q", captured)
		}
	})

	t.Run("dry-run flows through without mutation", func(t *testing.T) {
		cwd := setupProject(t)
		calls := recordExecCommands(t)
		var out bytes.Buffer

		if err := RunCheck(CheckOptions{Cwd: cwd, DryRun: true, Out: &out}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(*calls) != 0 {
			t.Errorf("dry-run must not invoke any command, got %v", *calls)
		}
		if !strings.Contains(out.String(), "Would delete:") {
			t.Errorf("dry-run should list deletion candidates, got:\n%s", out.String())
		}
	})

	t.Run("devDependencies included on request", func(t *testing.T) {
		cwd := setupProject(t)
		writeTestFile(t, filepath.Join(cwd, PackageJsonFileName),
			`{"dependencies": {"react": "^18.0.0"}, "devDependencies": {"typescript": "^5.0.0"}}`)
		var out bytes.Buffer

		if err := RunCheck(CheckOptions{Cwd: cwd, IncludeDev: true, Out: &out}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(out.String(), "- typescript") {
			t.Errorf("typescript should be reported unused with --include-dev, got:\n%s", out.String())
		}
	})
}
