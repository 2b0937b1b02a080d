package models

import "github.com/toyz/overgen/internal/errors"

// PackageMetadata holds all generation targets discovered in one package
type PackageMetadata struct {
	PackageName string            // name of the Go package
	PackagePath string            // directory the package was parsed from
	Targets     []TargetMetadata  // all overrides-annotated types, sorted by name
	Imports     map[string]string // package qualifier -> import path, from the scanned files
}

// HasTargets returns true if the package contains anything to generate
func (p *PackageMetadata) HasTargets() bool {
	return len(p.Targets) > 0
}

// TargetMetadata represents one overrides-annotated type and its method set
type TargetMetadata struct {
	StructName    string         // the annotated type's name
	InterfaceName string         // derived interface name (StructName + "Overrides" unless -Name is set)
	Mode          Mode           // inclusion polarity for this target
	TypeParams    []TypeParam    // generic type parameters, if any
	Methods       []MethodMetadata // exported methods in source order, inclusion resolved
	UsedPackages  []string       // package qualifiers the type parameter constraints reference
	FileName      string         // file the type declaration lives in
	Location      errors.SourceLocation
}

// IncludedMethods returns the subset of methods that enter the generated interface
func (t *TargetMetadata) IncludedMethods() []MethodMetadata {
	var included []MethodMetadata
	for _, m := range t.Methods {
		if m.Included {
			included = append(included, m)
		}
	}
	return included
}

// TypeParam represents a generic type parameter on the target type
type TypeParam struct {
	Name       string // parameter name, e.g. "T"
	Constraint string // constraint expression, e.g. "any" or "comparable"
}

// MethodMetadata represents one exported method on a target type
type MethodMetadata struct {
	Name            string      // method name
	Doc             []string    // doc comment lines with markers stripped
	PointerReceiver bool        // receiver declared as *T
	Params          []Parameter // parameters in declaration order
	Results         []string    // result types in declaration order
	Marker          Marker      // per-method marker found in the doc comment
	Included        bool        // resolved inclusion decision
	UsedPackages    []string    // package qualifiers the signature references
	Location        errors.SourceLocation
}

// Variadic returns true if the method's last parameter is variadic
func (m *MethodMetadata) Variadic() bool {
	if len(m.Params) == 0 {
		return false
	}
	return m.Params[len(m.Params)-1].Variadic
}

// Parameter represents a method parameter
type Parameter struct {
	Name     string // parameter name; synthesized when the source omits it
	Type     string // rendered type expression
	Variadic bool   // declared as ...T
}
