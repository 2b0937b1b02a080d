package templates

import (
	"fmt"
	"sort"
	"strings"
)

// ImportManager resolves the package qualifiers generated signatures reference
// against the imports available in the scanned source files, and renders the
// import block for the generated file.
type ImportManager struct {
	available map[string]string // qualifier -> import path
	used      map[string]bool   // qualifiers referenced by generated code
}

// NewImportManager creates a new import manager
func NewImportManager(available map[string]string) *ImportManager {
	return &ImportManager{
		available: available,
		used:      make(map[string]bool),
	}
}

// Use marks package qualifiers as referenced by generated code
func (im *ImportManager) Use(qualifiers ...string) {
	for _, qualifier := range qualifiers {
		if qualifier != "" {
			im.used[qualifier] = true
		}
	}
}

// Unresolved returns the used qualifiers that no scanned file imports.
// These indicate a signature referencing a package the source never named,
// which should be impossible for well-formed input.
func (im *ImportManager) Unresolved() []string {
	var missing []string
	for qualifier := range im.used {
		if _, ok := im.available[qualifier]; !ok {
			missing = append(missing, qualifier)
		}
	}
	sort.Strings(missing)
	return missing
}

// ImportLines renders the resolved imports as source lines, sorted by path.
// An alias is emitted only when the qualifier differs from the path's last
// element.
func (im *ImportManager) ImportLines() []string {
	type importEntry struct {
		qualifier string
		path      string
	}

	var entries []importEntry
	for qualifier := range im.used {
		path, ok := im.available[qualifier]
		if !ok {
			continue
		}
		entries = append(entries, importEntry{qualifier: qualifier, path: path})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].path < entries[j].path })

	var lines []string
	for _, entry := range entries {
		lastSegment := entry.path
		if idx := strings.LastIndex(entry.path, "/"); idx >= 0 {
			lastSegment = entry.path[idx+1:]
		}
		if entry.qualifier == lastSegment {
			lines = append(lines, fmt.Sprintf("%q", entry.path))
		} else {
			lines = append(lines, fmt.Sprintf("%s %q", entry.qualifier, entry.path))
		}
	}

	return lines
}
