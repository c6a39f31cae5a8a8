package main

import (
	"strings"

	"github.com/gobwas/glob"
)

// GlobMatcher wraps a compiled glob pattern rooted at a directory. Used for
// the user-supplied --ignore patterns, which follow .gitignore conventions:
// a plain name without `/` or `*` matches any file or directory with that
// exact name at any depth.
type GlobMatcher struct {
	globPattern                        glob.Glob
	inputString                        string
	shouldMatchAnyFileOrDirWithPattern bool
	patternRoot                        string
}

func CreateGlobMatchers(patterns []string, patternsRoot string) []GlobMatcher {
	globMatchers := []GlobMatcher{}

	patternRoot := patternsRoot
	if patternRoot != "" && !strings.HasSuffix(patternRoot, "/") {
		patternRoot = patternRoot + "/"
	}

	for _, excludePattern := range patterns {
		excludePattern = strings.TrimSpace(excludePattern)
		if excludePattern == "" || strings.HasPrefix(excludePattern, "#") {
			continue
		}

		shouldMatchAnyFileOrDirWithPattern := !strings.Contains(excludePattern, "/") && !strings.Contains(excludePattern, "*")

		if strings.HasSuffix(excludePattern, "/") && !strings.Contains(excludePattern, "*") {
			// a trailing `/` matches the whole directory recursively
			excludePattern = "**" + excludePattern + "**"
		}

		globMatchers = append(globMatchers, GlobMatcher{
			globPattern:                        glob.MustCompile(excludePattern),
			inputString:                        excludePattern,
			patternRoot:                        patternRoot,
			shouldMatchAnyFileOrDirWithPattern: shouldMatchAnyFileOrDirWithPattern,
		})

		// The glob library does not match root-level files through a `**/`
		// prefix: `**/*.log` misses `file.log` but matches `dir/file.log`.
		// Register a second pattern without the prefix to cover the root.
		if strings.HasPrefix(excludePattern, "**/") {
			additionalPattern := strings.Replace(excludePattern, "**/", "", 1)
			globMatchers = append(globMatchers, GlobMatcher{
				globPattern: glob.MustCompile(additionalPattern),
				inputString: additionalPattern,
				patternRoot: patternRoot,
			})
		}
	}

	return globMatchers
}

func MatchesAnyGlobMatcher(filePath string, matchers []GlobMatcher) bool {
	for _, matcher := range matchers {
		fileWithoutPrefix := strings.TrimPrefix(filePath, matcher.patternRoot)
		if matcher.globPattern.Match(fileWithoutPrefix) {
			return true
		}
		if matcher.shouldMatchAnyFileOrDirWithPattern {
			if strings.HasSuffix(fileWithoutPrefix, "/"+matcher.inputString) {
				return true
			}
			if strings.Contains(fileWithoutPrefix, "/"+matcher.inputString+"/") || strings.HasPrefix(fileWithoutPrefix, matcher.inputString+"/") {
				return true
			}
		}
	}
	return false
}
