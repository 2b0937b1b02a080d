package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/toyz/overgen/internal/errors"
	"github.com/toyz/overgen/internal/generator"
	"github.com/toyz/overgen/internal/models"
	"github.com/toyz/overgen/internal/parser"
	"github.com/toyz/overgen/internal/utils"
)

// GenerationSummary collects statistics about a generation run
type GenerationSummary struct {
	PackagesProcessed int
	TargetsFound      int
	MethodsIncluded   int
	GeneratedFiles    []string
	ImportPaths       []string // import paths of the packages that received output
}

// Generator coordinates the CLI generation process
type Generator struct {
	scanner        *DirectoryScanner
	moduleResolver *ModuleResolver
	parser         *parser.Parser
	codeGenerator  *generator.Generator
	diagnostics    *utils.DiagnosticSystem
	customModule   string
	summary        GenerationSummary
}

// NewGenerator creates a new CLI generator
func NewGenerator() *Generator {
	return NewGeneratorWithDiagnostics(utils.NewQuietDiagnostics())
}

// NewGeneratorWithDiagnostics creates a new CLI generator with diagnostic output
func NewGeneratorWithDiagnostics(diagnostics *utils.DiagnosticSystem) *Generator {
	return &Generator{
		scanner:        NewDirectoryScanner(),
		moduleResolver: NewModuleResolver(),
		parser:         parser.NewParser(),
		codeGenerator:  generator.NewGenerator(),
		diagnostics:    diagnostics,
		summary:        GenerationSummary{GeneratedFiles: make([]string, 0)},
	}
}

// GetSummary returns the generation summary
func (g *Generator) GetSummary() GenerationSummary {
	return g.summary
}

// SetCustomModule sets a custom module name for diagnostics
func (g *Generator) SetCustomModule(moduleName string) {
	g.customModule = moduleName
}

// Generate executes the generation process for the given directories
func (g *Generator) Generate(directories []string) error {
	return g.Run(Config{Directories: directories, ModuleName: g.customModule})
}

// Run executes the complete generation process
func (g *Generator) Run(config Config) error {
	startTime := time.Now()
	g.summary = GenerationSummary{GeneratedFiles: make([]string, 0)}

	g.diagnostics.Verbose("Starting code generation at %s", startTime.Format("15:04:05"))
	g.diagnostics.Debug("Scanning directories: %v", config.Directories)

	// The module name only feeds reporting; generated code lives in the
	// same package as its source and never imports by module path.
	moduleName, err := g.moduleResolver.ResolveModuleName(config.ModuleName)
	if err != nil {
		g.diagnostics.Verbose("No enclosing module found: %v", err)
	} else {
		g.diagnostics.Verbose("Module: %s", moduleName)
	}

	g.diagnostics.StartProgress("Scanning directories for Go packages")
	packageDirs, err := g.scanner.ScanDirectories(config.Directories)
	if err != nil {
		g.diagnostics.EndProgress(false, "")
		return errors.Wrap(errors.FileSystemErrorCode, "failed to scan directories", err).
			WithSuggestion("check that the specified directories exist and are readable")
	}

	if len(packageDirs) == 0 {
		g.diagnostics.EndProgress(false, "")
		return errors.New(errors.ConfigurationErrorCode, "no Go packages found in specified directories").
			WithSuggestions(
				"ensure the directories contain Go files",
				"try the './...' pattern to scan recursively",
			)
	}

	g.diagnostics.EndProgress(true, "")
	g.diagnostics.Info("Found %d packages to process", len(packageDirs))
	g.summary.PackagesProcessed = len(packageDirs)

	// Every package's problems are collected before failing, so one bad
	// annotation does not hide errors elsewhere in the tree.
	var collected *errors.MultipleErrors

	for _, packageDir := range packageDirs {
		if err := g.generatePackage(packageDir, moduleName); err != nil {
			g.collect(&collected, err)
		}
	}

	if collected != nil && !collected.IsEmpty() {
		return collected
	}

	g.diagnostics.Verbose("Generation finished in %s", time.Since(startTime).Round(time.Millisecond))
	return nil
}

// generatePackage parses one package directory and writes its generated file
func (g *Generator) generatePackage(packageDir, moduleName string) error {
	g.diagnostics.Debug("Parsing package: %s", packageDir)

	metadata, err := g.parser.ParseDirectory(packageDir)
	if err != nil {
		return err
	}

	if !metadata.HasTargets() {
		g.diagnostics.Verbose("No annotated types in %s, skipping", packageDir)
		return nil
	}

	g.collectSummaryInfo(metadata)

	content, err := g.codeGenerator.GenerateFile(metadata)
	if err != nil {
		return err
	}

	outputPath := filepath.Join(packageDir, parser.GeneratedFileName)
	if err := g.writeFile(outputPath, content); err != nil {
		return err
	}

	g.summary.GeneratedFiles = append(g.summary.GeneratedFiles, outputPath)
	g.diagnostics.Progress("Generated %s (%d targets)", outputPath, len(metadata.Targets))

	if moduleName != "" {
		if importPath, err := g.moduleResolver.BuildPackagePath(moduleName, packageDir); err == nil {
			g.summary.ImportPaths = append(g.summary.ImportPaths, importPath)
			g.diagnostics.Verbose("Generated into package %s", importPath)
		}
	}

	return nil
}

// writeFile writes generated content to disk
func (g *Generator) writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.WrapFileSystemError("write", path, err)
	}
	return nil
}

// collectSummaryInfo updates summary statistics from package metadata
func (g *Generator) collectSummaryInfo(metadata *models.PackageMetadata) {
	g.summary.TargetsFound += len(metadata.Targets)
	for i := range metadata.Targets {
		g.summary.MethodsIncluded += len(metadata.Targets[i].IncludedMethods())
	}
}

// collect merges a package's errors into the run-wide collection
func (g *Generator) collect(collected **errors.MultipleErrors, err error) {
	if multiple, ok := err.(*errors.MultipleErrors); ok {
		for _, inner := range multiple.Errors {
			errors.AddToMultiple(collected, inner)
		}
		return
	}
	if overgenErr, ok := err.(errors.OvergenError); ok {
		errors.AddToMultiple(collected, overgenErr)
		return
	}
	errors.AddToMultiple(collected, errors.Wrap(errors.UnknownErrorCode, err.Error(), err))
}
