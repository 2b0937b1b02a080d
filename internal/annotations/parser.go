package annotations

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/toyz/overgen/internal/errors"
)

// AnnotationPrefix is the marker every overgen annotation carries
const AnnotationPrefix = "overgen::"

// Parser parses overgen annotation comments using a participle grammar
type Parser struct {
	parser   *participle.Parser[annotationAST]
	registry AnnotationRegistry
}

// annotationAST is the root of the annotation grammar
type annotationAST struct {
	Kind string   `parser:"Prefix @Ident"`
	Args []argAST `parser:"@@*"`
}

// argAST is a single -Param or -Param=value argument
type argAST struct {
	Name  string    `parser:"Dash @Ident"`
	Value *valueAST `parser:"(Equals @@)?"`
}

// valueAST is a parameter value, either quoted or a bare identifier
type valueAST struct {
	Str   *string `parser:"@String"`
	Ident *string `parser:"| @Ident"`
}

// raw returns the unquoted textual value
func (v *valueAST) raw() string {
	if v.Str != nil {
		s := *v.Str
		if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
			return s[1 : len(s)-1]
		}
		return s
	}
	if v.Ident != nil {
		return *v.Ident
	}
	return ""
}

// annotationLexer tokenizes the content of an annotation comment
var annotationLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Prefix", Pattern: `overgen::`},
	{Name: "String", Pattern: `"(\\"|[^"])*"`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Dash", Pattern: `-`},
	{Name: "Equals", Pattern: `=`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// NewParser creates an annotation parser with the builtin overgen schemas
func NewParser() *Parser {
	return NewParserWithRegistry(NewBuiltinRegistry())
}

// NewParserWithRegistry creates an annotation parser with a custom schema registry
func NewParserWithRegistry(registry AnnotationRegistry) *Parser {
	parser := participle.MustBuild[annotationAST](
		participle.Lexer(annotationLexer),
		participle.Elide("Whitespace"),
	)

	return &Parser{
		parser:   parser,
		registry: registry,
	}
}

// IsAnnotationComment reports whether a comment line carries an overgen annotation
func IsAnnotationComment(comment string) bool {
	text := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(comment), "//"))
	return strings.HasPrefix(text, AnnotationPrefix)
}

// ParseComment parses a single annotation comment attached to the named target.
// Malformed annotation text is a syntax error; unknown kinds, unknown
// parameters, and parameter validation failures are configuration errors.
// All errors carry the comment's source location.
func (p *Parser) ParseComment(comment, target string, loc errors.SourceLocation) (*ParsedAnnotation, error) {
	text := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(comment), "//"))
	if !strings.HasPrefix(text, AnnotationPrefix) {
		return nil, errors.SyntaxError(loc, "annotation must contain the '%s' prefix", AnnotationPrefix)
	}

	ast, err := p.parser.ParseString(loc.File, text)
	if err != nil {
		return nil, errors.SyntaxError(loc, "malformed annotation '%s': %v", text, err).
			WithSuggestion("expected form: //overgen::<kind> [-Param=value ...]")
	}

	annotationType, err := ParseAnnotationType(ast.Kind)
	if err != nil {
		return nil, errors.ConfigurationError(loc, "unknown annotation 'overgen::%s'", ast.Kind).
			WithSuggestion("valid annotations: overrides, skip, overwrite")
	}

	parsed := &ParsedAnnotation{
		Type:       annotationType,
		Target:     target,
		Parameters: make(map[string]interface{}),
		Location:   loc,
		Raw:        comment,
	}

	schema, err := p.registry.GetSchema(annotationType)
	if err != nil {
		return nil, errors.ConfigurationError(loc, "annotation 'overgen::%s' is not registered", ast.Kind)
	}

	for _, arg := range ast.Args {
		spec, exists := schema.Parameters[arg.Name]
		if !exists {
			return nil, errors.ConfigurationError(loc, "unknown parameter '-%s' for overgen::%s", arg.Name, ast.Kind).
				WithSuggestions(knownParameters(schema)...)
		}

		value, err := convertArgument(arg, spec)
		if err != nil {
			return nil, errors.ConfigurationError(loc, "parameter '-%s': %v", arg.Name, err)
		}

		if spec.Validator != nil {
			if err := spec.Validator(value); err != nil {
				return nil, errors.ConfigurationError(loc, "parameter '-%s': %v", arg.Name, err)
			}
		}

		parsed.Parameters[arg.Name] = value
	}

	for paramName, spec := range schema.Parameters {
		if spec.Required {
			if _, exists := parsed.Parameters[paramName]; !exists {
				return nil, errors.ConfigurationError(loc, "missing required parameter '-%s' for overgen::%s", paramName, ast.Kind)
			}
		}
	}

	return parsed, nil
}

// convertArgument converts a parsed argument to the type its spec demands
func convertArgument(arg argAST, spec ParameterSpec) (interface{}, error) {
	switch spec.Type {
	case BoolType:
		if arg.Value == nil {
			// Bare flag form, -Param means true
			return true, nil
		}
		boolValue, err := strconv.ParseBool(arg.Value.raw())
		if err != nil {
			return nil, fmt.Errorf("expected 'true' or 'false', got '%s'", arg.Value.raw())
		}
		return boolValue, nil
	case StringType:
		if arg.Value == nil {
			return nil, fmt.Errorf("expected a value, e.g. -%s=value", arg.Name)
		}
		return arg.Value.raw(), nil
	default:
		return nil, fmt.Errorf("unsupported parameter type %s", spec.Type)
	}
}

// knownParameters renders suggestion lines listing a schema's parameters
func knownParameters(schema AnnotationSchema) []string {
	if len(schema.Parameters) == 0 {
		return []string{fmt.Sprintf("overgen::%s takes no parameters", schema.Type)}
	}
	var suggestions []string
	for name, spec := range schema.Parameters {
		suggestions = append(suggestions, fmt.Sprintf("-%s (%s): %s", name, spec.Type, spec.Description))
	}
	return suggestions
}
