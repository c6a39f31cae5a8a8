package main

import (
	"os"
	"path/filepath"
)

const PackageJsonFileName = "package.json"
const CnpIgnoreFileName = ".cnpignore"
const TsConfigFileName = "tsconfig.json"
const NodeModulesDirName = "node_modules"

// Source extensions considered by the scanner, without the leading dot.
var Extensions = []string{"js", "ts", "jsx", "tsx", "mdx", "cjs", "mjs"}

var TypeScriptExtensions = []string{"ts", "tsx"}

// Folders excluded from scanning. Matching is on exact path segments, so
// "node_modules" does not exclude "node_modules_backup".
var IgnoreFolders = []string{
	"node_modules",
	"dist",
	"build",
	"public",
	".next",
	".git",
	"coverage",
	"cypress",
	"test",
	"output",
}

var sourceExts = buildExtSet(Extensions)
var typeScriptExts = buildExtSet(TypeScriptExtensions)

var ignoreFolderSet = func() map[string]bool {
	set := make(map[string]bool, len(IgnoreFolders))
	for _, folder := range IgnoreFolders {
		set[folder] = true
	}
	return set
}()

func buildExtSet(extensions []string) map[string]bool {
	set := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		set["."+ext] = true
	}
	return set
}

func HasSourceExtension(name string) bool {
	return sourceExts[filepath.Ext(name)]
}

func IsTypeScriptFile(name string) bool {
	return typeScriptExts[filepath.Ext(name)]
}

func IsIgnoredFolderName(name string) bool {
	return ignoreFolderSet[name]
}

// IsTypeScriptProject reports whether cwd holds a tsconfig.json, which is the
// marker for running the type checker during the scan.
func IsTypeScriptProject(cwd string) bool {
	info, err := os.Stat(filepath.Join(cwd, TsConfigFileName))
	return err == nil && !info.IsDir()
}
