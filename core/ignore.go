package core

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// LoadIgnorePatterns reads .kondoignore from root and returns its patterns,
// combined with any extra patterns (e.g. from .kondo.yaml's exclude list).
// A missing .kondoignore is not an error — it simply contributes no
// patterns.
func LoadIgnorePatterns(root string, extra []string) ([]string, error) {
	patterns, err := loadIgnoreFile(filepath.Join(root, ".kondoignore"))
	if err != nil {
		return nil, err
	}
	return append(patterns, extra...), nil
}

func loadIgnoreFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var patterns []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return patterns, nil
}

// IsIgnored reports whether a path, relative to the discovery root, matches
// any of the given .kondoignore-style patterns. It supports gitignore's
// basic subset: exact and wildcard name matches, directory-only patterns
// (trailing "/"), root-anchored patterns (leading "/"), and "!"-prefixed
// negation.
func IsIgnored(path string, patterns []string) bool {
	ignored := false
	for _, pattern := range patterns {
		neg := false
		p := pattern
		if strings.HasPrefix(p, "!") {
			neg = true
			p = strings.TrimPrefix(p, "!")
		}
		if matchIgnorePattern(path, p) {
			ignored = !neg
		}
	}
	return ignored
}

// matchIgnorePattern checks whether a relative path matches a single
// .kondoignore pattern.
func matchIgnorePattern(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	dirOnly := strings.HasSuffix(pattern, "/")
	if dirOnly {
		pattern = strings.TrimSuffix(pattern, "/")
	}

	if strings.HasPrefix(pattern, "/") {
		pattern = strings.TrimPrefix(pattern, "/")
		if dirOnly {
			return strings.HasPrefix(path, pattern+"/") || path == pattern
		}
		matched, _ := filepath.Match(pattern, path)
		return matched
	}

	if strings.Contains(pattern, "/") {
		if dirOnly {
			return strings.HasPrefix(path, pattern+"/") || path == pattern
		}
		matched, _ := filepath.Match(pattern, path)
		return matched
	}

	for _, part := range strings.Split(path, "/") {
		if matched, _ := filepath.Match(pattern, part); matched {
			return true
		}
	}

	return false
}
