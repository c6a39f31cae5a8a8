package main

import (
	"os"
	"path/filepath"
)

// ScanResult is the transient outcome of one scan pass. UsedPackages is a
// set; the path lists preserve discovery order and are deduplicated by
// normalized path.
type ScanResult struct {
	UsedPackages  map[string]bool
	ExploredFiles []string
	IgnoredPaths  []string
}

type fileScanner struct {
	cwd         string
	matchers    []ReferenceMatcher
	extraIgnore []GlobMatcher
	spinner     *Spinner

	seenPaths       map[string]bool
	usedPackages    map[string]bool
	exploredFiles   []string
	ignoredPaths    []string
	typescriptFiles []string
}

// ScanFiles walks the project tree under cwd and reports which of the
// declared dependencies are referenced from source files. TypeScript files
// are deferred and matched after consulting the type checker, so imports that
// are textually present but statically dead do not mask unused dependencies.
func ScanFiles(cwd string, dependencies map[string]bool, spinner *Spinner, extraIgnore []GlobMatcher) ScanResult {
	scanner := &fileScanner{
		cwd:          cwd,
		matchers:     NewReferenceMatchers(dependencies, DefaultImportForms),
		extraIgnore:  extraIgnore,
		spinner:      spinner,
		seenPaths:    map[string]bool{},
		usedPackages: map[string]bool{},
	}

	scanner.walk(cwd)
	scanner.processTypescriptFiles()

	return ScanResult{
		UsedPackages:  scanner.usedPackages,
		ExploredFiles: scanner.exploredFiles,
		IgnoredPaths:  scanner.ignoredPaths,
	}
}

func (s *fileScanner) walk(directory string) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return
	}

	for _, entry := range entries {
		entryPath := filepath.Join(directory, entry.Name())
		s.spinner.Tick()

		// Ignore-folder names exclude both directories and files; the check
		// is on the exact segment name, not a prefix.
		if IsIgnoredFolderName(entry.Name()) || MatchesAnyGlobMatcher(filepath.ToSlash(entryPath), s.extraIgnore) {
			s.recordIgnored(entryPath)
			continue
		}

		if entry.IsDir() {
			s.walk(entryPath)
			continue
		}

		if !HasSourceExtension(entry.Name()) {
			continue
		}

		normalized := NormalizePath(entryPath)
		if s.seenPaths[normalized] {
			continue
		}
		s.seenPaths[normalized] = true
		s.exploredFiles = append(s.exploredFiles, normalized)

		if IsTypeScriptFile(entry.Name()) {
			s.typescriptFiles = append(s.typescriptFiles, normalized)
			continue
		}

		s.matchFile(normalized, nil)
	}
}

func (s *fileScanner) recordIgnored(path string) {
	normalized := NormalizePath(path)
	if s.seenPaths[normalized] {
		return
	}
	s.seenPaths[normalized] = true
	s.ignoredPaths = append(s.ignoredPaths, normalized)
}

// matchFile reads a single file and accumulates referenced dependencies.
// Unreadable files are skipped; one bad file must not fail the scan.
func (s *fileScanner) matchFile(path string, skip map[string]bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		return
	}

	content = RemoveCommentsFromCode(content)

	for dependency := range FindDependenciesInContent(content, s.matchers) {
		if skip[dependency] {
			continue
		}
		s.usedPackages[dependency] = true
	}
}

// processTypescriptFiles matches the deferred TypeScript files, excluding
// dependencies the type checker reports as declared but never read.
func (s *fileScanner) processTypescriptFiles() {
	if len(s.typescriptFiles) == 0 {
		return
	}

	unusedImports := GetTypeScriptUnusedImports(s.cwd)

	for _, path := range s.typescriptFiles {
		s.matchFile(path, unusedImports)
	}
}

// ComputeUnusedDependencies returns declared − used − required − ignored,
// sorted.
func ComputeUnusedDependencies(declared, used, required, ignored map[string]bool) []string {
	unused := map[string]bool{}
	for dependency := range declared {
		if used[dependency] || required[dependency] || ignored[dependency] {
			continue
		}
		unused[dependency] = true
	}
	return SortedSetKeys(unused)
}
