package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
)

// UninstallOptions selects one of the mutually exclusive modes for acting on
// the unused set. With no mode selected the orchestrator only tells the user
// which flags to pass.
type UninstallOptions struct {
	DryRun       bool
	Interactive  bool
	All          bool
	Clean        bool
	PreselectAll bool
	SkipInstall  bool
	In           io.Reader
	Out          io.Writer
}

// HandleUnusedDependencies acts on the final unused set: simulate (dry-run),
// prompt per dependency (interactive), confirm once for everything (all), or
// rewrite the manifest directly (clean). Each successful removal is tracked;
// any success triggers a full reinstall of node_modules.
func HandleUnusedDependencies(cwd string, unusedDependencies []string, opts UninstallOptions) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	in := opts.In
	if in == nil {
		in = os.Stdin
	}

	if opts.DryRun {
		fmt.Fprintf(out, "\n%s\n", yellowText.Sprint("Dry-run mode: No changes will be made."))
		fmt.Fprintln(out, yellowText.Sprint("Would delete:"))
		for _, dependency := range unusedDependencies {
			fmt.Fprintf(out, "- %s\n", yellowText.Sprint(dependency))
		}
		return
	}

	if opts.Clean {
		cleanPackageJson(cwd, unusedDependencies, out)
		return
	}

	if !opts.Interactive && !opts.All {
		fmt.Fprintf(out, "\n%s\n", yellowText.Sprint("No action taken. Pass --dry-run, --interactive, --all or --clean to act on unused dependencies."))
		return
	}

	var toDelete []string
	if opts.Interactive && stdinIsTerminal(in) {
		toDelete = SelectDependenciesInteractively(unusedDependencies, opts.PreselectAll, out)
	} else {
		toDelete = ConfirmAllDeletion(unusedDependencies, in, out)
	}

	if len(toDelete) == 0 {
		fmt.Fprintf(out, "\n%s\n", yellowText.Sprint("No dependencies selected for deletion."))
		return
	}

	packageManager := DetectPackageManager(cwd)

	var deleted []string
	for _, dependency := range toDelete {
		if err := UninstallDependency(cwd, dependency, packageManager); err != nil {
			fmt.Fprintf(out, "%s\n", redText.Sprintf("Failed to delete %s: %v", dependency, err))
			continue
		}
		fmt.Fprintf(out, "%s\n", greenText.Sprintf("Deleted: %s", dependency))
		deleted = append(deleted, dependency)
	}

	fmt.Fprintf(out, "%s\n", greenBold.Sprint("Deletion complete!"))

	if len(deleted) > 0 && !opts.SkipInstall {
		ReinstallModules(cwd, packageManager, out)
	}
}

func cleanPackageJson(cwd string, unusedDependencies []string, out io.Writer) {
	path := filepath.Join(cwd, PackageJsonFileName)
	if err := RemoveDependenciesFromPackageJson(path, unusedDependencies); err != nil {
		fmt.Fprintf(out, "%s\n", redText.Sprintf("Failed to clean %s: %v", PackageJsonFileName, err))
		return
	}
	fmt.Fprintf(out, "\n%s\n", greenBold.Sprintf("Removed %d dependencies from %s.", len(unusedDependencies), PackageJsonFileName))
	fmt.Fprintln(out, yellowText.Sprint("Run your package manager's install command to update the lockfile."))
}

// UninstallDependency removes a single dependency through the package
// manager. An unrecognized manager fails only this dependency.
func UninstallDependency(cwd string, dependency string, packageManager PackageManager) error {
	verb, err := packageManager.RemoveVerb()
	if err != nil {
		return err
	}

	cmd := execCommand(string(packageManager), verb, dependency)
	cmd.Dir = cwd
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s %s %s failed: %w (output: %s)", packageManager, verb, dependency, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// ReinstallModules deletes node_modules and runs the package manager's
// install command so the tree reflects the trimmed manifest. Failure is
// reported but never escalates to a process-level failure.
func ReinstallModules(cwd string, packageManager PackageManager, out io.Writer) {
	fmt.Fprintln(out, "Reinstalling node_modules...")

	nodeModulesPath := filepath.Join(cwd, NodeModulesDirName)
	if _, err := os.Stat(nodeModulesPath); err == nil {
		if err := os.RemoveAll(nodeModulesPath); err != nil {
			fmt.Fprintf(out, "%s\n", redText.Sprintf("Failed to remove %s: %v", NodeModulesDirName, err))
			return
		}
	}

	cmd := execCommand(string(packageManager), "install")
	cmd.Dir = cwd
	if _, err := cmd.CombinedOutput(); err != nil {
		fmt.Fprintf(out, "%s\n", redText.Sprint("Failed to reinstall dependencies"))
		return
	}

	fmt.Fprintf(out, "%s\n", greenText.Sprint("Reinstallation successful!"))
}

// ConfirmAllDeletion asks a single yes/no question covering the whole unused
// set.
func ConfirmAllDeletion(unusedDependencies []string, in io.Reader, out io.Writer) []string {
	fmt.Fprintf(out, "\n%s\n", yellowText.Sprint("Confirm deletion of all unused dependencies? (y/n)"))

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return nil
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	if answer == "y" || answer == "yes" {
		return unusedDependencies
	}
	return nil
}

func stdinIsTerminal(in io.Reader) bool {
	if f, ok := in.(*os.File); ok {
		return isatty.IsTerminal(f.Fd())
	}
	return false
}
