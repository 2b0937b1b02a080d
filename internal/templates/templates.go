package templates

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/toyz/overgen/internal/errors"
	"github.com/toyz/overgen/internal/models"
)

// PassthroughSuffix is appended to the target type name to derive the
// forwarding implementation's name.
const PassthroughSuffix = "Passthrough"

// defaultRegistry holds all templates used for code generation
var defaultRegistry = NewTemplateRegistry()

// InterfaceData represents data needed for interface generation
type InterfaceData struct {
	Name           string
	StructName     string
	TypeParamsDecl string // "[T any]" for generic targets, empty otherwise
	TypeArgs       string // "[T]" for generic targets, empty otherwise
	Methods        []MethodData
}

// PassthroughData represents data needed for forwarding implementation generation
type PassthroughData struct {
	Name           string
	InterfaceName  string
	StructName     string
	TypeParamsDecl string
	TypeArgs       string
	Methods        []MethodData
}

// ConformanceData represents data needed for a compile-time conformance check
type ConformanceData struct {
	Interface      string
	Implementation string
	TypeParamsDecl string
	TypeArgs       string
	CheckName      string // name of the generic check function
}

// FileHeaderData represents data needed for the generated file preamble
type FileHeaderData struct {
	PackageName string
	Imports     []string // fully rendered import lines, already sorted
}

// MethodData represents one method in generated output
type MethodData struct {
	Name       string
	Doc        []string
	Signature  string // rendered parameter and result lists
	CallArgs   string // rendered argument pass-through list
	HasResults bool
}

// BuildMethodData converts method metadata into template data
func BuildMethodData(method models.MethodMetadata) MethodData {
	return MethodData{
		Name:       method.Name,
		Doc:        method.Doc,
		Signature:  formatSignature(method),
		CallArgs:   formatCallArgs(method),
		HasResults: len(method.Results) > 0,
	}
}

// FormatTypeParamsDecl renders a generic declaration list, e.g. "[K comparable, V any]"
func FormatTypeParamsDecl(params []models.TypeParam) string {
	if len(params) == 0 {
		return ""
	}
	var parts []string
	for _, p := range params {
		parts = append(parts, p.Name+" "+p.Constraint)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FormatTypeArgs renders a generic argument list, e.g. "[K, V]"
func FormatTypeArgs(params []models.TypeParam) string {
	if len(params) == 0 {
		return ""
	}
	var parts []string
	for _, p := range params {
		parts = append(parts, p.Name)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// formatSignature renders a method's parameter and result lists
func formatSignature(method models.MethodMetadata) string {
	var params []string
	for _, p := range method.Params {
		if p.Variadic {
			params = append(params, fmt.Sprintf("%s ...%s", p.Name, p.Type))
		} else {
			params = append(params, fmt.Sprintf("%s %s", p.Name, p.Type))
		}
	}

	signature := "(" + strings.Join(params, ", ") + ")"

	switch len(method.Results) {
	case 0:
		return signature
	case 1:
		return signature + " " + method.Results[0]
	default:
		return signature + " (" + strings.Join(method.Results, ", ") + ")"
	}
}

// formatCallArgs renders the argument list forwarding every parameter unchanged
func formatCallArgs(method models.MethodMetadata) string {
	var args []string
	for _, p := range method.Params {
		if p.Variadic {
			args = append(args, p.Name+"...")
		} else {
			args = append(args, p.Name)
		}
	}
	return strings.Join(args, ", ")
}

// GenerateFileHeader generates the preamble of a generated file
func GenerateFileHeader(data FileHeaderData) (string, error) {
	return executeTemplate("file-header", data)
}

// GenerateInterface generates the overrides interface declaration
func GenerateInterface(data InterfaceData) (string, error) {
	return executeTemplate("interface", data)
}

// GeneratePassthrough generates the forwarding implementation
func GeneratePassthrough(data PassthroughData) (string, error) {
	return executeTemplate("passthrough", data)
}

// GenerateConformance generates a compile-time check that an implementation
// satisfies the generated interface. Generic targets use a check function
// since a package-level var cannot name a bare type parameter.
func GenerateConformance(data ConformanceData) (string, error) {
	if data.TypeParamsDecl != "" {
		return executeTemplate("conformance-generic", data)
	}
	return executeTemplate("conformance", data)
}

// CheckName derives the name of a generic conformance check function
func CheckName(implementation, interfaceName string) string {
	return "_assert" + implementation + "Is" + interfaceName
}

// executeTemplate executes a registered template with the given data
func executeTemplate(name string, data interface{}) (string, error) {
	templateStr := defaultRegistry.MustGet(name)

	tmpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return "", errors.WrapTemplateError(name, "parse", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.WrapTemplateError(name, "execute", err)
	}

	return buf.String(), nil
}
