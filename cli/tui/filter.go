package tui

import "strings"

// filterState tracks the active filter configuration.
type filterState struct {
	kind      string // "" = all kinds
	search    string // free-text search query
	searching bool   // true when search input is active
}

func newFilterState() filterState {
	return filterState{}
}

// cycleKind advances the kind filter to the next distinct kind present in
// projects, wrapping back to "all" after the last one.
func (f *filterState) cycleKind(projects []Project) {
	kinds := distinctKinds(projects)
	if len(kinds) == 0 {
		f.kind = ""
		return
	}

	if f.kind == "" {
		f.kind = kinds[0]
		return
	}
	for i, k := range kinds {
		if k == f.kind {
			if i+1 < len(kinds) {
				f.kind = kinds[i+1]
			} else {
				f.kind = ""
			}
			return
		}
	}
	f.kind = ""
}

func distinctKinds(projects []Project) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range projects {
		if !seen[p.Kind] {
			seen[p.Kind] = true
			out = append(out, p.Kind)
		}
	}
	return out
}

// activeKind returns the current kind filter, or "all" when unset.
func (f *filterState) activeKind() string {
	if f.kind == "" {
		return "all"
	}
	return f.kind
}

// matchesProject returns true if the project passes all active filters.
func (f *filterState) matchesProject(p Project) bool {
	if f.kind != "" && p.Kind != f.kind {
		return false
	}

	if f.search != "" {
		q := strings.ToLower(f.search)
		if !strings.Contains(strings.ToLower(p.Path), q) &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Focus), q) &&
			!strings.Contains(strings.ToLower(p.Kind), q) {
			return false
		}
	}

	return true
}

// filterProjects returns projects that pass the active filters.
func (f *filterState) filterProjects(all []Project) []Project {
	var result []Project
	for _, p := range all {
		if f.matchesProject(p) {
			result = append(result, p)
		}
	}
	return result
}
