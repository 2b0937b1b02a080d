package templates

import (
	"reflect"
	"testing"
)

func TestImportManagerResolvesUsedQualifiers(t *testing.T) {
	manager := NewImportManager(map[string]string{
		"context": "context",
		"time":    "time",
		"xt":      "golang.org/x/text/language",
	})

	manager.Use("time", "xt")
	manager.Use("time") // duplicates collapse

	lines := manager.ImportLines()
	want := []string{
		`xt "golang.org/x/text/language"`,
		`"time"`,
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("ImportLines = %v, want %v", lines, want)
	}
}

func TestImportManagerSortsByPath(t *testing.T) {
	manager := NewImportManager(map[string]string{
		"zx":    "example.com/zebra",
		"apple": "example.com/apple",
	})
	manager.Use("zx", "apple")

	// Sorted by path; only the renamed qualifier carries an alias
	lines := manager.ImportLines()
	want := []string{
		`"example.com/apple"`,
		`zx "example.com/zebra"`,
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("ImportLines = %v, want %v", lines, want)
	}
}

func TestImportManagerAliasOnlyWhenNeeded(t *testing.T) {
	manager := NewImportManager(map[string]string{
		"language": "golang.org/x/text/language",
	})
	manager.Use("language")

	lines := manager.ImportLines()
	want := []string{`"golang.org/x/text/language"`}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("ImportLines = %v, want %v", lines, want)
	}
}

func TestImportManagerUnresolved(t *testing.T) {
	manager := NewImportManager(map[string]string{"time": "time"})
	manager.Use("time", "context", "bytes")

	missing := manager.Unresolved()
	want := []string{"bytes", "context"}
	if !reflect.DeepEqual(missing, want) {
		t.Errorf("Unresolved = %v, want %v", missing, want)
	}
}

func TestImportManagerIgnoresEmptyQualifier(t *testing.T) {
	manager := NewImportManager(nil)
	manager.Use("")

	if missing := manager.Unresolved(); len(missing) != 0 {
		t.Errorf("empty qualifier should be ignored, got %v", missing)
	}
	if lines := manager.ImportLines(); len(lines) != 0 {
		t.Errorf("expected no import lines, got %v", lines)
	}
}
