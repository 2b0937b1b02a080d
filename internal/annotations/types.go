package annotations

import (
	"fmt"

	"github.com/toyz/overgen/internal/errors"
)

// AnnotationType represents the type of annotation
type AnnotationType int

const (
	// OverridesAnnotation marks a type declaration as a generation target
	OverridesAnnotation AnnotationType = iota
	// SkipAnnotation excludes a method under include-all mode
	SkipAnnotation
	// OverwriteAnnotation includes a method under exclude-all mode
	OverwriteAnnotation
)

// String returns the string representation of the annotation type
func (a AnnotationType) String() string {
	switch a {
	case OverridesAnnotation:
		return "overrides"
	case SkipAnnotation:
		return "skip"
	case OverwriteAnnotation:
		return "overwrite"
	default:
		return "unknown"
	}
}

// ParseAnnotationType converts string to AnnotationType
func ParseAnnotationType(s string) (AnnotationType, error) {
	switch s {
	case "overrides":
		return OverridesAnnotation, nil
	case "skip":
		return SkipAnnotation, nil
	case "overwrite":
		return OverwriteAnnotation, nil
	default:
		return 0, fmt.Errorf("unknown annotation type: %s", s)
	}
}

// ParsedAnnotation represents a fully parsed annotation with type-safe parameters
type ParsedAnnotation struct {
	Type       AnnotationType         // annotation type enum
	Target     string                 // name of the declaration the annotation is attached to
	Parameters map[string]interface{} // typed parameters
	Location   errors.SourceLocation  // source location of the comment
	Raw        string                 // original annotation text
}

// GetString returns a string parameter value with optional default
func (p *ParsedAnnotation) GetString(paramName string, defaultValue ...string) string {
	if value, exists := p.Parameters[paramName]; exists {
		if strValue, ok := value.(string); ok {
			return strValue
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// GetBool returns a boolean parameter value with optional default
func (p *ParsedAnnotation) GetBool(paramName string, defaultValue ...bool) bool {
	if value, exists := p.Parameters[paramName]; exists {
		if boolValue, ok := value.(bool); ok {
			return boolValue
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// HasParameter checks if a parameter exists
func (p *ParsedAnnotation) HasParameter(paramName string) bool {
	_, exists := p.Parameters[paramName]
	return exists
}

// ParameterType represents the type of a parameter
type ParameterType int

const (
	StringType ParameterType = iota
	BoolType
)

// String returns the string representation of the parameter type
func (p ParameterType) String() string {
	switch p {
	case StringType:
		return "string"
	case BoolType:
		return "bool"
	default:
		return "unknown"
	}
}

// ParameterSpec defines the specification for an annotation parameter
type ParameterSpec struct {
	Type         ParameterType           // parameter type
	Required     bool                    // whether parameter is required
	DefaultValue interface{}             // default value if not provided
	Description  string                  // parameter description
	Validator    func(interface{}) error // custom validator function
}

// AnnotationSchema defines the schema for an annotation type
type AnnotationSchema struct {
	Type        AnnotationType           // annotation type enum
	Description string                   // human-readable description
	Parameters  map[string]ParameterSpec // parameter specifications
	Examples    []string                 // usage examples
}
