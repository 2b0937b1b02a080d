package parser

// DefaultInterfaceSuffix is appended to the target type name to derive the
// generated interface name when no -Name parameter is given.
const DefaultInterfaceSuffix = "Overrides"

// GeneratedFileName is the per-package output file overgen writes.
// The parser skips it when scanning so re-runs see only hand-written source.
const GeneratedFileName = "autogen_overrides.go"
