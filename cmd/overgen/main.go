package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/toyz/overgen/internal/cli"
	"github.com/toyz/overgen/internal/utils"
)

func main() {
	// Define command-line flags
	var (
		moduleFlag  = flag.String("module", "", "Custom module name for diagnostics (defaults to go.mod module)")
		verboseFlag = flag.Bool("verbose", false, "Enable verbose output and detailed error reporting")
		quietFlag   = flag.Bool("quiet", false, "Only show errors and final results")
		cleanFlag   = flag.Bool("clean", false, "Delete all autogen_overrides.go files from the specified directories")
		helpFlag    = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <directory-paths...>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Overgen Code Generator\n")
		fmt.Fprintf(os.Stderr, "Recursively scans directories for Go types with overgen:: annotations and derives\n")
		fmt.Fprintf(os.Stderr, "an overridable interface plus a forwarding implementation for each.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nArguments:\n")
		fmt.Fprintf(os.Stderr, "  directory-paths    One or more directories to scan for annotated Go files\n")
		fmt.Fprintf(os.Stderr, "                     Supports Go-style patterns like './...' for recursive scanning\n")
		fmt.Fprintf(os.Stderr, "\nDirectory Patterns:\n")
		fmt.Fprintf(os.Stderr, "  ./...              Scan current directory and all subdirectories recursively\n")
		fmt.Fprintf(os.Stderr, "  ./internal/...     Scan internal directory and all its subdirectories\n")
		fmt.Fprintf(os.Stderr, "  ./pkg/store        Scan only the specific directory (no recursion)\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s ./...                      # Scan everything recursively\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s ./internal/...             # Scan internal directory recursively\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --verbose ./internal/...   # Enable detailed output\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --quiet ./...              # Minimal output\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --clean ./...              # Delete all autogen_overrides.go files\n", os.Args[0])
	}

	flag.Parse()

	// Show help if requested
	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	// Validate arguments
	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Error: At least one directory path is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	// Create diagnostic system based on flags
	var diagnostics *utils.DiagnosticSystem
	if *quietFlag {
		diagnostics = utils.NewQuietDiagnostics()
	} else if *verboseFlag {
		diagnostics = utils.NewVerboseDiagnostics()
	} else {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}

	// Show startup banner
	diagnostics.Section("Overgen Code Generator")

	// Handle clean operation
	if *cleanFlag {
		diagnostics.Info("Starting cleanup operation...")

		cleaner := cli.NewCleaner()
		removed, err := cleaner.CleanGeneratedFiles(args)
		if err != nil {
			diagnostics.Error("Clean operation failed: %v", err)
			os.Exit(1)
		}

		for _, file := range removed {
			diagnostics.List("%s", file)
		}
		diagnostics.Success("Removed %d generated files", len(removed))
		return
	}

	// Show configuration
	if *verboseFlag {
		diagnostics.Subsection("Configuration")
		diagnostics.List("Target directories: %s", strings.Join(args, ", "))
		if *moduleFlag != "" {
			diagnostics.List("Custom module: %s", *moduleFlag)
		}
		diagnostics.List("Verbose mode: enabled")
	}

	// Run the generation process
	diagnostics.Subsection("Code Generation")
	gen := cli.NewGeneratorWithDiagnostics(diagnostics)
	if *moduleFlag != "" {
		gen.SetCustomModule(*moduleFlag)
	}

	if err := gen.Generate(args); err != nil {
		diagnostics.Error("Generation failed: %v", err)
		os.Exit(1)
	}

	// Show final summary
	summary := gen.GetSummary()
	stats := map[string]interface{}{
		"Packages processed": summary.PackagesProcessed,
		"Targets found":      summary.TargetsFound,
		"Methods included":   summary.MethodsIncluded,
		"Files generated":    len(summary.GeneratedFiles),
	}

	diagnostics.Summary("Generation Complete!", stats)

	// Show generated files in verbose mode
	if *verboseFlag && len(summary.GeneratedFiles) > 0 {
		diagnostics.Subsection("Generated Files")
		for _, file := range summary.GeneratedFiles {
			diagnostics.List("%s", file)
		}
	}

	diagnostics.Success("Override interfaces are ready to use!")
}
