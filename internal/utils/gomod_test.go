package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseModuleName(t *testing.T) {
	tmpDir := t.TempDir()
	goModPath := filepath.Join(tmpDir, "go.mod")

	content := `module github.com/example/project

go 1.25

require github.com/fatih/color v1.18.0
`
	if err := os.WriteFile(goModPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write go.mod: %v", err)
	}

	parser := NewGoModParser()
	name, err := parser.ParseModuleName(goModPath)
	if err != nil {
		t.Fatalf("ParseModuleName failed: %v", err)
	}
	if name != "github.com/example/project" {
		t.Errorf("module name = %q, want github.com/example/project", name)
	}
}

func TestParseModuleNameErrors(t *testing.T) {
	parser := NewGoModParser()

	if _, err := parser.ParseModuleName("/some/other/file.txt"); err == nil {
		t.Error("expected error for non-go.mod path")
	}

	if _, err := parser.ParseModuleName(filepath.Join(t.TempDir(), "go.mod")); err == nil {
		t.Error("expected error for missing go.mod")
	}

	goModPath := filepath.Join(t.TempDir(), "go.mod")
	if err := os.WriteFile(goModPath, []byte("go 1.25\n"), 0644); err != nil {
		t.Fatalf("failed to write go.mod: %v", err)
	}
	if _, err := parser.ParseModuleName(goModPath); err == nil {
		t.Error("expected error for go.mod without module declaration")
	}
}

func TestFindGoModFile(t *testing.T) {
	tmpDir := t.TempDir()
	goModPath := filepath.Join(tmpDir, "go.mod")
	if err := os.WriteFile(goModPath, []byte("module example.com/m\n"), 0644); err != nil {
		t.Fatalf("failed to write go.mod: %v", err)
	}

	nested := filepath.Join(tmpDir, "a", "b", "c")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("failed to create nested dirs: %v", err)
	}

	parser := NewGoModParser()
	found, err := parser.FindGoModFile(nested)
	if err != nil {
		t.Fatalf("FindGoModFile failed: %v", err)
	}
	if found != goModPath {
		t.Errorf("found %q, want %q", found, goModPath)
	}
}
