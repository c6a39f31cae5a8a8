package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// Version is set via -ldflags at release time.
var Version = "dev"

var (
	rootCmd = &cobra.Command{
		Use:   "cnp",
		Short: "Check for unused node packages",
		Long: `Scans a JavaScript/TypeScript project to determine which declared package
dependencies are actually referenced in source code, flags unused ones and can
remove them via the project's package manager.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunCheck(CheckOptions{
				Cwd:            ResolveAbsoluteCwd(checkCwd),
				DryRun:         checkDryRun,
				Interactive:    checkInteractive,
				All:            checkAll,
				Clean:          checkClean,
				IncludeDev:     checkIncludeDev,
				IgnorePatterns: checkIgnorePatterns,
				PreselectAll:   checkPreselectAll,
				SkipInstall:    checkSkipInstall,
				Out:            os.Stdout,
			})
		},
	}
)

var docsCmd = &cobra.Command{
	Use:    "doc-gen",
	Short:  "Generate CLI documentation",
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doc.GenMarkdownTree(rootCmd, "./docs")
	},
}

var (
	checkCwd            string
	checkDryRun         bool
	checkInteractive    bool
	checkAll            bool
	checkClean          bool
	checkIncludeDev     bool
	checkIgnorePatterns []string
	checkPreselectAll   bool
	checkSkipInstall    bool
)

func init() {
	rootCmd.Flags().StringVarP(&checkCwd, "cwd", "c", "",
		"Project root to scan (default: current directory)")
	rootCmd.Flags().BoolVar(&checkDryRun, "dry-run", false,
		"Simulate actions without making changes (e.g., no uninstalls)")
	rootCmd.Flags().BoolVarP(&checkInteractive, "interactive", "i", false,
		"Prompt per dependency before removing")
	rootCmd.Flags().BoolVarP(&checkAll, "all", "a", false,
		"Confirm once, then remove all unused dependencies")
	rootCmd.Flags().BoolVar(&checkClean, "clean", false,
		"Remove unused dependencies from package.json directly instead of invoking the package manager")
	rootCmd.Flags().BoolVar(&checkIncludeDev, "include-dev", false,
		"Also treat devDependencies as declared dependencies")
	rootCmd.Flags().StringSliceVar(&checkIgnorePatterns, "ignore", nil,
		"Additional glob patterns for paths to skip during the scan")
	rootCmd.Flags().BoolVar(&checkPreselectAll, "preselect-all", false,
		"Pre-select every dependency in the interactive prompt")
	rootCmd.Flags().BoolVar(&checkSkipInstall, "skip-install", false,
		"Skip the node_modules reinstall after removals")

	rootCmd.MarkFlagsMutuallyExclusive("dry-run", "interactive", "all", "clean")

	rootCmd.AddCommand(docsCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, redText.Sprintf("Error: %v", err))
		os.Exit(1)
	}
}

// CheckOptions carries one invocation's configuration. The project root is
// always passed explicitly; no component consults the process working
// directory on its own.
type CheckOptions struct {
	Cwd            string
	DryRun         bool
	Interactive    bool
	All            bool
	Clean          bool
	IncludeDev     bool
	IgnorePatterns []string
	PreselectAll   bool
	SkipInstall    bool
	In             io.Reader
	Out            io.Writer
}

// RunCheck is the whole pipeline: manifest -> scan -> lockfile + ignore file
// -> set difference -> report -> uninstall handling. Only a missing or
// unparseable manifest is fatal; everything else degrades with a warning.
func RunCheck(opts CheckOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	spinner := NewSpinner(out, "Initializing...")

	pkg, err := ReadPackageJson(filepath.Join(opts.Cwd, PackageJsonFileName))
	if err != nil {
		spinner.Abandon()
		return err
	}

	dependencies := GetDeclaredDependencies(pkg, opts.IncludeDev)
	extraIgnore := CreateGlobMatchers(opts.IgnorePatterns, filepath.ToSlash(opts.Cwd))

	spinner.SetMessage("Scanning files...")
	result := ScanFiles(opts.Cwd, dependencies, spinner, extraIgnore)
	spinner.Finish(greenText.Sprint("Scanning complete!"))

	requiredDependencies := GetRequiredDependencies(opts.Cwd)
	ignoredDependencies := ReadCnpIgnore(opts.Cwd)

	unusedDependencies := ComputeUnusedDependencies(dependencies, result.UsedPackages, requiredDependencies, ignoredDependencies)

	PrintDependencyReport(out, opts.Cwd, dependencies, result.UsedPackages, unusedDependencies, result.ExploredFiles, result.IgnoredPaths)

	if len(unusedDependencies) > 0 {
		HandleUnusedDependencies(opts.Cwd, unusedDependencies, UninstallOptions{
			DryRun:       opts.DryRun,
			Interactive:  opts.Interactive,
			All:          opts.All,
			Clean:        opts.Clean,
			PreselectAll: opts.PreselectAll,
			SkipInstall:  opts.SkipInstall,
			In:           opts.In,
			Out:          out,
		})
	}

	return nil
}
