package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
)

// execCommand is swapped out in tests to avoid spawning real child processes.
var execCommand = exec.Command

func ResolveAbsoluteCwd(cwd string) string {
	if cwd == "" {
		binaryExecDir, _ := os.Getwd()
		return binaryExecDir
	}
	if filepath.IsAbs(cwd) {
		return filepath.Clean(cwd)
	}
	binaryExecDir, _ := os.Getwd()
	return filepath.Join(binaryExecDir, cwd)
}

// NormalizePath converts a path into a canonical absolute form so the same
// file counts once even when reached via symlinks. On macOS the /private
// prefix added by temporary filesystem mounts is stripped.
func NormalizePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	if runtime.GOOS == "darwin" && strings.HasPrefix(abs, "/private/") {
		abs = strings.TrimPrefix(abs, "/private")
	}
	return abs
}

func SortedSetKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// RemoveCommentsFromCode removes all comments from the given code while preserving string literals and template literals.
func RemoveCommentsFromCode(code []byte) []byte {
	var result []byte
	i := 0
	n := len(code)

	inSingleQuoteString := false
	inDoubleQuoteString := false
	inTemplateLiteral := false
	inLineComment := false
	inBlockComment := false

	for i < n {
		// Handle comment endings first
		if inLineComment && code[i] == '\n' {
			inLineComment = false
			// Keep the newline character
			result = append(result, '\n')
			i++
			continue
		}

		if inBlockComment && i+1 < n && code[i] == '*' && code[i+1] == '/' {
			inBlockComment = false
			i += 2
			continue
		}

		// If we're in any comment, skip the character
		if inLineComment || inBlockComment {
			i++
			continue
		}

		// Handle string and template literal contexts
		if code[i] == '`' && (i == 0 || code[i-1] != '\\') {
			inTemplateLiteral = !inTemplateLiteral
			result = append(result, code[i])
			i++
			continue
		} else if !inTemplateLiteral {
			if code[i] == '\'' && (i == 0 || code[i-1] != '\\') {
				inSingleQuoteString = !inSingleQuoteString
			} else if code[i] == '"' && (i == 0 || code[i-1] != '\\') {
				inDoubleQuoteString = !inDoubleQuoteString
			}
		}

		// Only process comments when not in any string/template literal
		if !inSingleQuoteString && !inDoubleQuoteString && !inTemplateLiteral {
			// Check for line comment start
			if i+1 < n && code[i] == '/' && code[i+1] == '/' {
				inLineComment = true
				i += 2
				continue
			}
			// Check for block comment start
			if i+1 < n && code[i] == '/' && code[i+1] == '*' {
				inBlockComment = true
				i += 2
				continue
			}
		}

		// Add the character to the result if we're not in a comment
		result = append(result, code[i])
		i++
	}

	return result
}
