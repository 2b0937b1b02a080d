package cli

// Config holds the configuration for the CLI generator
type Config struct {
	// Directories is the list of directories to scan for annotated Go files
	Directories []string

	// ModuleName is the custom module name to report in diagnostics.
	// If empty, it is determined from the nearest go.mod file.
	ModuleName string
}
