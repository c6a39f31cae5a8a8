package main

import (
	"os"
	"path/filepath"
	"strings"
)

// ReadCnpIgnore reads the .cnpignore exclusion file: one dependency name per
// line, blank lines and `#` comments skipped, inline trailing comments
// stripped. A missing file is not an error and yields an empty set.
func ReadCnpIgnore(cwd string) map[string]bool {
	ignored := map[string]bool{}

	content, err := os.ReadFile(filepath.Join(cwd, CnpIgnoreFileName))
	if err != nil {
		return ignored
	}

	for _, line := range strings.Split(string(content), "\n") {
		if hash := strings.Index(line, "#"); hash >= 0 {
			line = line[:hash]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ignored[line] = true
	}

	return ignored
}
