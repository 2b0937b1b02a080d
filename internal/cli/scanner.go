package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/toyz/overgen/internal/errors"
	"github.com/toyz/overgen/internal/parser"
)

// DirectoryScanner finds package directories worth parsing
type DirectoryScanner struct{}

// NewDirectoryScanner creates a new directory scanner
func NewDirectoryScanner() *DirectoryScanner {
	return &DirectoryScanner{}
}

// ScanDirectories resolves the provided directory arguments into package
// directories containing Go files. Arguments ending in "/..." are expanded
// recursively; plain paths name exactly one package directory.
func (s *DirectoryScanner) ScanDirectories(rootDirs []string) ([]string, error) {
	var packageDirs []string
	visited := make(map[string]bool)

	for _, rootDir := range rootDirs {
		if strings.HasSuffix(rootDir, "/...") {
			baseDir := strings.TrimSuffix(rootDir, "/...")
			if baseDir == "" {
				baseDir = "."
			}

			cleanPath, err := filepath.Abs(baseDir)
			if err != nil {
				return nil, errors.WrapWithOperation("process", fmt.Sprintf("path resolution %s", baseDir), err)
			}

			dirs, err := s.scanRecursive(cleanPath, visited)
			if err != nil {
				return nil, err
			}
			packageDirs = append(packageDirs, dirs...)
			continue
		}

		cleanPath, err := filepath.Abs(rootDir)
		if err != nil {
			return nil, errors.WrapWithOperation("process", fmt.Sprintf("path resolution %s", rootDir), err)
		}

		hasGo, err := s.hasGoFiles(cleanPath)
		if err != nil {
			return nil, err
		}
		if hasGo && !visited[cleanPath] {
			visited[cleanPath] = true
			packageDirs = append(packageDirs, cleanPath)
		}
	}

	return packageDirs, nil
}

// scanRecursive walks a directory tree collecting package directories
func (s *DirectoryScanner) scanRecursive(dir string, visited map[string]bool) ([]string, error) {
	var packageDirs []string

	err := filepath.WalkDir(dir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return errors.WrapWithOperation("read", fmt.Sprintf("directory %s", path), err)
		}

		if !entry.IsDir() {
			return nil
		}

		if skipDirectory(entry.Name()) && path != dir {
			return filepath.SkipDir
		}

		hasGo, err := s.hasGoFiles(path)
		if err != nil {
			return err
		}
		if hasGo && !visited[path] {
			visited[path] = true
			packageDirs = append(packageDirs, path)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return packageDirs, nil
}

// hasGoFiles reports whether a directory contains parseable Go source,
// ignoring test files and previously generated output.
func (s *DirectoryScanner) hasGoFiles(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, errors.WrapWithOperation("read", fmt.Sprintf("directory %s", dir), err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".go") {
			continue
		}
		if strings.HasSuffix(name, "_test.go") || name == parser.GeneratedFileName {
			continue
		}
		return true, nil
	}

	return false, nil
}

// skipDirectory filters out directory names the Go toolchain itself ignores
func skipDirectory(name string) bool {
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
		return true
	}
	return name == "vendor" || name == "testdata" || name == "node_modules"
}
