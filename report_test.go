package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestPrintDependencyReport(t *testing.T) {
	color.NoColor = true

	t.Run("with unused dependencies", func(t *testing.T) {
		var out bytes.Buffer
		PrintDependencyReport(&out, "/project",
			map[string]bool{"react": true, "lodash": true},
			map[string]bool{"react": true},
			[]string{"lodash"},
			[]string{"/project/src/index.js"},
			[]string{"/project/node_modules"},
		)

		output := out.String()
		for _, fragment := range []string{
			"Dependency Usage Report",
			"Explored Files",
			"Total Dependencies",
			"Used Dependencies:",
			"- react",
			"Unused Dependencies:",
			"- lodash",
			"Note: Some may be required at runtime",
		} {
			if !strings.Contains(output, fragment) {
				t.Errorf("report should contain %q, got:\n%s", fragment, output)
			}
		}
	})

	t.Run("without unused dependencies", func(t *testing.T) {
		var out bytes.Buffer
		PrintDependencyReport(&out, "/project",
			map[string]bool{"react": true},
			map[string]bool{"react": true},
			nil,
			[]string{"/project/src/index.js"},
			nil,
		)

		output := out.String()
		if !strings.Contains(output, "No unused dependencies found!") {
			t.Errorf("report should celebrate a clean project, got:\n%s", output)
		}
		if strings.Contains(output, "Note: Some may be required at runtime") {
			t.Errorf("caveat note should only appear with unused dependencies, got:\n%s", output)
		}
	})

	t.Run("used list is sorted", func(t *testing.T) {
		var out bytes.Buffer
		PrintDependencyReport(&out, "/project",
			map[string]bool{"zod": true, "axios": true, "moment": true},
			map[string]bool{"zod": true, "axios": true, "moment": true},
			nil, nil, nil,
		)

		output := out.String()
		if strings.Index(output, "- axios") > strings.Index(output, "- moment") ||
			strings.Index(output, "- moment") > strings.Index(output, "- zod") {
			t.Errorf("used dependencies should be sorted, got:\n%s", output)
		}
	})
}
