package templates

// TemplateRegistry provides a centralized way to access all templates
type TemplateRegistry struct {
	templates map[string]string
}

// NewTemplateRegistry creates a new template registry with all templates
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{
		templates: make(map[string]string),
	}

	registry.registerFileTemplates()
	registry.registerInterfaceTemplates()
	registry.registerPassthroughTemplates()

	return registry
}

// Get retrieves a template by name
func (tr *TemplateRegistry) Get(name string) (string, bool) {
	template, exists := tr.templates[name]
	return template, exists
}

// MustGet retrieves a template by name, panics if not found
func (tr *TemplateRegistry) MustGet(name string) string {
	template, exists := tr.templates[name]
	if !exists {
		panic("template not found: " + name)
	}
	return template
}

// registerFileTemplates registers the output file scaffolding templates
func (tr *TemplateRegistry) registerFileTemplates() {
	tr.templates["file-header"] = `// Code generated by overgen. DO NOT EDIT.

package {{.PackageName}}
{{if .Imports}}
import (
{{range .Imports}}	{{.}}
{{end}})
{{end}}`
}

// registerInterfaceTemplates registers the overrides interface templates
func (tr *TemplateRegistry) registerInterfaceTemplates() {
	tr.templates["interface"] = `// {{.Name}} is the overridable surface of {{.StructName}}.
type {{.Name}}{{.TypeParamsDecl}} interface {
{{range .Methods}}{{range .Doc}}	// {{.}}
{{end}}	{{.Name}}{{.Signature}}
{{end}}}`

	// Conformance assertion for non-generic targets
	tr.templates["conformance"] = `var _ {{.Interface}} = (*{{.Implementation}})(nil)`

	// Generic targets cannot be asserted with a package-level var; a throwaway
	// generic function performs the same compile-time check.
	tr.templates["conformance-generic"] = `func {{.CheckName}}{{.TypeParamsDecl}}(v *{{.Implementation}}{{.TypeArgs}}) {{.Interface}}{{.TypeArgs}} { return v }`
}

// registerPassthroughTemplates registers the forwarding implementation templates
func (tr *TemplateRegistry) registerPassthroughTemplates() {
	tr.templates["passthrough"] = `// {{.Name}} forwards {{.InterfaceName}} calls to a wrapped *{{.StructName}}.
// Embed it in a wrapper type and redeclare individual methods to override them.
type {{.Name}}{{.TypeParamsDecl}} struct {
	Inner *{{.StructName}}{{.TypeArgs}}
}
{{range .Methods}}
func (p *{{$.Name}}{{$.TypeArgs}}) {{.Name}}{{.Signature}} {
	{{if .HasResults}}return {{end}}p.Inner.{{.Name}}({{.CallArgs}})
}
{{end}}`
}
