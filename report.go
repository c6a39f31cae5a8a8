package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

var (
	greenText  = color.New(color.FgGreen)
	greenBold  = color.New(color.FgGreen, color.Bold)
	redText    = color.New(color.FgRed)
	redBold    = color.New(color.FgRed, color.Bold)
	yellowText = color.New(color.FgYellow)
	blueBold   = color.New(color.FgBlue, color.Bold)
)

// PrintDependencyReport renders the aggregate counts and per-dependency
// classification. Pure presentation: no side effects beyond writing to w.
func PrintDependencyReport(w io.Writer, cwd string, dependencies map[string]bool, usedPackages map[string]bool, unusedDependencies []string, exploredFiles []string, ignoredPaths []string) {
	fmt.Fprintf(w, "\n%s\n", blueBold.Sprint("Dependency Usage Report"))

	table := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(table, "Metric\tValue")
	fmt.Fprintf(table, "Project\t%s\n", cwd)
	fmt.Fprintf(table, "Extensions\t%s\n", strings.Join(Extensions, ", "))
	fmt.Fprintf(table, "Ignored Folders\t%s\n", strings.Join(IgnoreFolders, ", "))
	fmt.Fprintf(table, "Explored Files\t%d\n", len(exploredFiles))
	fmt.Fprintf(table, "Ignored Files\t%d\n", len(ignoredPaths))
	fmt.Fprintf(table, "Total Dependencies\t%d\n", len(dependencies))
	fmt.Fprintf(table, "Used Dependencies\t%s\n", greenText.Sprintf("%d", len(usedPackages)))
	fmt.Fprintf(table, "Unused Dependencies\t%s\n", redText.Sprintf("%d", len(unusedDependencies)))
	table.Flush()

	if len(usedPackages) > 0 {
		fmt.Fprintf(w, "\n%s\n", greenBold.Sprint("Used Dependencies:"))
		for _, dependency := range SortedSetKeys(usedPackages) {
			fmt.Fprintf(w, "- %s\n", greenText.Sprint(dependency))
		}
	}

	if len(unusedDependencies) == 0 {
		fmt.Fprintf(w, "\n%s\n", greenBold.Sprint("No unused dependencies found!"))
		return
	}

	fmt.Fprintf(w, "\n%s\n", redBold.Sprint("Unused Dependencies:"))
	fmt.Fprintln(w, yellowText.Sprint("Note: Some may be required at runtime (e.g., react-dom)."))
	for _, dependency := range unusedDependencies {
		fmt.Fprintf(w, "- %s\n", redText.Sprint(dependency))
	}
}
