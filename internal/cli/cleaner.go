package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/toyz/overgen/internal/parser"
)

// Cleaner handles cleaning up generated files
type Cleaner struct{}

// NewCleaner creates a new cleaner
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// CleanGeneratedFiles removes every generated output file from the
// specified directories. Returns the paths that were removed.
func (c *Cleaner) CleanGeneratedFiles(directories []string) ([]string, error) {
	var removedFiles []string

	for _, dir := range directories {
		if err := c.cleanDirectory(dir, &removedFiles); err != nil {
			return removedFiles, fmt.Errorf("failed to clean directory %s: %w", dir, err)
		}
	}

	return removedFiles, nil
}

// cleanDirectory cleans one directory argument, expanding "/..." patterns
func (c *Cleaner) cleanDirectory(dir string, removedFiles *[]string) error {
	if strings.HasSuffix(dir, "/...") {
		baseDir := strings.TrimSuffix(dir, "/...")
		if baseDir == "" {
			baseDir = "."
		}
		return c.cleanRecursively(baseDir, removedFiles)
	}

	return c.cleanSingleDirectory(dir, removedFiles)
}

// cleanRecursively cleans directories recursively
func (c *Cleaner) cleanRecursively(baseDir string, removedFiles *[]string) error {
	return filepath.Walk(baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Skip directories that don't exist or can't be accessed
			return nil
		}

		if info.IsDir() {
			if skipDirectory(info.Name()) && path != baseDir {
				return filepath.SkipDir
			}
			// Errors here are deliberately ignored so one unreadable
			// directory does not abort the whole cleanup
			_ = c.cleanSingleDirectory(path, removedFiles)
		}

		return nil
	})
}

// cleanSingleDirectory removes the generated file from one directory
func (c *Cleaner) cleanSingleDirectory(dir string, removedFiles *[]string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}

	generatedFile := filepath.Join(dir, parser.GeneratedFileName)

	if _, err := os.Stat(generatedFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to check file %s: %w", generatedFile, err)
	}

	if err := os.Remove(generatedFile); err != nil {
		return fmt.Errorf("failed to remove file %s: %w", generatedFile, err)
	}

	*removedFiles = append(*removedFiles, generatedFile)
	return nil
}
