package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

const unusedDeclarationCode = "TS6133"

// Positional prefix of tsc diagnostics, e.g.
// "src/file.ts(1,8): error TS6133: 'analytics' is declared but its value is never read."
var tscDiagnosticRe = regexp.MustCompile(
	fmt.Sprintf(`^(.+\.(?:%s))\((\d+),\d+\)`, strings.Join(TypeScriptExtensions, "|")))

var importFromRe = regexp.MustCompile(`from\s+['"]([^'"\s]+)['"]`)
var importDefaultRe = regexp.MustCompile(`import\s+([^\s,]+)\s+from\s+['"]([^'"\s]+)['"]`)
var importNamespaceRe = regexp.MustCompile(`import\s+\*\s+as\s+(\S+)\s+from\s+['"]([^'"\s]+)['"]`)
var importCombinedRe = regexp.MustCompile(`import\s+([^\s,]+)\s*,\s*\{([^}]+)\}\s+from\s+['"]([^'"\s]+)['"]`)
var importSideEffectRe = regexp.MustCompile(`import\s+['"]([^'"\s]+)['"]`)

// GetTypeScriptUnusedImports invokes the TypeScript compiler in no-emit
// diagnostic mode and collects the base package names of imports that are
// declared but never read. Those are textually present yet statically dead,
// so counting them as usage would mask genuinely unused dependencies.
//
// When tsc cannot be invoked at all the scan degrades to the raw text scan: a
// warning is emitted and the returned set is empty.
func GetTypeScriptUnusedImports(cwd string) map[string]bool {
	unusedImports := map[string]bool{}

	if !IsTypeScriptProject(cwd) {
		return unusedImports
	}

	cmd := execCommand("tsc", "--noEmit", "--pretty", "false", "--noUnusedLocals")
	cmd.Dir = cwd
	output, err := cmd.CombinedOutput()

	if err != nil {
		if _, isExit := err.(*exec.ExitError); !isExit {
			warnf("Failed to run tsc. Unused imports may not be detected.")
			return unusedImports
		}
		// non-zero exit means tsc produced diagnostics; fall through
	}

	for _, line := range strings.Split(string(output), "\n") {
		if !strings.Contains(line, unusedDeclarationCode) {
			continue
		}
		filePath, lineNumber, ok := extractFileAndLine(line)
		if !ok {
			continue
		}
		if !filepath.IsAbs(filePath) {
			filePath = filepath.Join(cwd, filePath)
		}
		if request, ok := extractPackageNameFromFileLine(filePath, lineNumber); ok {
			unusedImports[GetNodeModuleName(request)] = true
		}
	}

	return unusedImports
}

// extractFileAndLine parses the source path and 1-based line number from a
// diagnostic's positional prefix.
func extractFileAndLine(diagnostic string) (string, int, bool) {
	caps := tscDiagnosticRe.FindStringSubmatch(diagnostic)
	if caps == nil {
		return "", 0, false
	}
	lineNumber, err := strconv.Atoi(caps[2])
	if err != nil {
		return "", 0, false
	}
	return caps[1], lineNumber, true
}

// extractPackageNameFromFileLine re-reads the given 1-based line from a file
// and recovers the import's target module name. Named, default, namespace,
// combined and side-effect import forms are recognized.
func extractPackageNameFromFileLine(filePath string, lineNumber int) (string, bool) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", false
	}

	lines := strings.Split(string(content), "\n")
	if lineNumber < 1 || lineNumber > len(lines) {
		return "", false
	}

	importLine := strings.TrimSpace(lines[lineNumber-1])
	if importLine == "" || strings.HasPrefix(importLine, "//") || strings.HasPrefix(importLine, "/*") {
		return "", false
	}

	// Any import with a from clause (named, default, namespace, combined).
	if caps := importNamespaceRe.FindStringSubmatch(importLine); caps != nil {
		return caps[2], true
	}
	if caps := importCombinedRe.FindStringSubmatch(importLine); caps != nil {
		return caps[3], true
	}
	if caps := importDefaultRe.FindStringSubmatch(importLine); caps != nil {
		return caps[2], true
	}
	if caps := importFromRe.FindStringSubmatch(importLine); caps != nil {
		return caps[1], true
	}
	if caps := importSideEffectRe.FindStringSubmatch(importLine); caps != nil {
		return caps[1], true
	}

	return "", false
}
