package utils

import (
	"go/format"

	"golang.org/x/tools/imports"
)

// FormatSource formats generated Go source and prunes its import block.
// gofmt runs first so syntax problems surface with the raw source intact,
// then goimports drops any import the generated code ended up not needing.
func FormatSource(filename string, src []byte) ([]byte, error) {
	formatted, err := format.Source(src)
	if err != nil {
		return nil, err
	}

	return imports.Process(filename, formatted, &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
		// The source files already name every import the signatures use,
		// so unresolvable identifiers are a bug, not something to guess.
		FormatOnly: false,
	})
}
