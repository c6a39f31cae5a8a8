package main

import (
	"fmt"
	"regexp"
)

// ImportForm enumerates the syntactic forms a dependency reference can take
// in source code. Matchers are parameterized by the forms they recognize so
// there is exactly one place that knows how "is this dependency referenced"
// is decided.
type ImportForm uint8

const (
	// FromClauseImport covers `import ... from 'dep'` including named,
	// default, namespace and combined bindings.
	FromClauseImport ImportForm = iota
	// RequireCall covers `require('dep')`.
	RequireCall
	// SideEffectImport covers `import 'dep'`.
	SideEffectImport
)

var DefaultImportForms = []ImportForm{FromClauseImport, RequireCall, SideEffectImport}

// ReferenceMatcher decides whether file content references one dependency.
// The dependency token must appear exactly between quote characters,
// optionally followed by a sub-path, so `lodash` never matches inside
// `lodash-es`.
type ReferenceMatcher struct {
	Dependency string
	patterns   []*regexp.Regexp
}

func NewReferenceMatcher(dependency string, forms []ImportForm) ReferenceMatcher {
	// The quoted token is the dependency name, optionally followed by a
	// sub-path: 'dep' and 'dep/sub/path' both count as usage of dep.
	token := regexp.QuoteMeta(dependency) + `(?:/[^'"]+)?`

	patterns := make([]*regexp.Regexp, 0, len(forms))
	for _, form := range forms {
		var pattern string
		switch form {
		case FromClauseImport:
			pattern = fmt.Sprintf(`\bimport\b[^'";]*?from\s*['"]%s['"]`, token)
		case RequireCall:
			pattern = fmt.Sprintf(`\brequire\s*\(\s*['"]%s['"]\s*\)`, token)
		case SideEffectImport:
			pattern = fmt.Sprintf(`\bimport\s*['"]%s['"]`, token)
		}
		patterns = append(patterns, regexp.MustCompile(pattern))
	}

	return ReferenceMatcher{Dependency: dependency, patterns: patterns}
}

func (m ReferenceMatcher) Matches(content []byte) bool {
	for _, pattern := range m.patterns {
		if pattern.Match(content) {
			return true
		}
	}
	return false
}

func NewReferenceMatchers(dependencies map[string]bool, forms []ImportForm) []ReferenceMatcher {
	matchers := make([]ReferenceMatcher, 0, len(dependencies))
	for dependency := range dependencies {
		matchers = append(matchers, NewReferenceMatcher(dependency, forms))
	}
	return matchers
}

// FindDependenciesInContent returns the names of all dependencies referenced
// in the given content.
func FindDependenciesInContent(content []byte, matchers []ReferenceMatcher) map[string]bool {
	found := map[string]bool{}
	for _, matcher := range matchers {
		if matcher.Matches(content) {
			found[matcher.Dependency] = true
		}
	}
	return found
}
