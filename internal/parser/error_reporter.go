package parser

import (
	"fmt"

	"github.com/toyz/overgen/internal/errors"
	"github.com/toyz/overgen/internal/models"
)

// ErrorReporter builds detailed diagnostics for the configuration mistakes
// the scanner can run into. Every error carries the offending annotation's
// source location plus suggestions for fixing it.
type ErrorReporter struct{}

// NewErrorReporter creates a new error reporter
func NewErrorReporter() *ErrorReporter {
	return &ErrorReporter{}
}

// ReportMarkerMismatch reports a per-method marker whose polarity matches the
// active mode's default, which would make it a silent no-op.
func (r *ErrorReporter) ReportMarkerMismatch(target, method string, mode models.Mode, marker models.Marker, loc errors.SourceLocation) *errors.BaseError {
	err := errors.ConfigurationError(loc,
		"method %s.%s carries overgen::%s but %s uses %s mode, where the marker has no effect",
		target, method, marker, target, mode)

	switch mode {
	case models.ModeIncludeAll:
		err.WithSuggestions(
			"methods are already included by default; remove the overgen::overwrite marker",
			"or switch the target to -All=false to opt methods in individually",
		)
	case models.ModeExcludeAll:
		err.WithSuggestions(
			"methods are already excluded by default; remove the overgen::skip marker",
			"or drop -All=false to include methods unless skipped",
		)
	}

	return err.
		WithContext("target", target).
		WithContext("method", method).
		WithContext("mode", mode.String()).
		WithContext("marker", marker.String())
}

// ReportConflictingMarkers reports a method carrying both skip and overwrite
func (r *ErrorReporter) ReportConflictingMarkers(target, method string, loc errors.SourceLocation) *errors.BaseError {
	return errors.ConfigurationError(loc,
		"method %s.%s carries both overgen::skip and overgen::overwrite", target, method).
		WithSuggestion("keep at most one marker per method").
		WithContext("target", target).
		WithContext("method", method)
}

// ReportMarkerOnUnexported reports a marker on a method that can never be part
// of the generated interface because it is unexported.
func (r *ErrorReporter) ReportMarkerOnUnexported(target, method string, marker models.Marker, loc errors.SourceLocation) *errors.BaseError {
	return errors.ConfigurationError(loc,
		"method %s.%s is unexported and never enters the overrides interface; the overgen::%s marker has no effect",
		target, method, marker).
		WithSuggestion("export the method or remove the marker").
		WithContext("target", target).
		WithContext("method", method)
}

// ReportMarkerWithoutTarget reports a marker on a method whose receiver type
// has no overrides annotation.
func (r *ErrorReporter) ReportMarkerWithoutTarget(typeName, method string, marker models.Marker, loc errors.SourceLocation) *errors.BaseError {
	return errors.ConfigurationError(loc,
		"method %s.%s carries overgen::%s but type %s has no overgen::overrides annotation",
		typeName, method, marker, typeName).
		WithSuggestion(fmt.Sprintf("add //overgen::overrides to the %s type declaration", typeName)).
		WithContext("type", typeName).
		WithContext("method", method)
}

// ReportEmptyInterface reports a target whose included method set came out empty
func (r *ErrorReporter) ReportEmptyInterface(target *models.TargetMetadata) *errors.BaseError {
	err := errors.ConfigurationError(target.Location,
		"type %s produces an empty %s interface: no exported method is included", target.StructName, target.InterfaceName)

	if target.Mode == models.ModeExcludeAll {
		err.WithSuggestion("mark at least one method with //overgen::overwrite")
	} else {
		err.WithSuggestions(
			"declare at least one exported method on the type",
			"or remove the overgen::overrides annotation",
		)
	}

	return err.WithContext("target", target.StructName)
}

// ReportAnnotationOnGroup reports an annotation on a grouped type declaration,
// where it has no single target type.
func (r *ErrorReporter) ReportAnnotationOnGroup(loc errors.SourceLocation) *errors.BaseError {
	return errors.ConfigurationError(loc,
		"overgen annotation on a grouped type declaration has no single target").
		WithSuggestion("move the annotation onto the individual type inside the group")
}

// ReportDuplicateTarget reports a type annotated with overrides more than once
func (r *ErrorReporter) ReportDuplicateTarget(typeName string, loc errors.SourceLocation) *errors.BaseError {
	return errors.ConfigurationError(loc,
		"type %s has more than one overgen::overrides annotation", typeName).
		WithSuggestion("keep a single overrides annotation per type").
		WithContext("type", typeName)
}

// ReportTypeParamMismatch reports a generic method whose receiver renames the
// declaration's type parameters, which would desynchronize generated signatures.
func (r *ErrorReporter) ReportTypeParamMismatch(target, method, declared, used string, loc errors.SourceLocation) *errors.BaseError {
	return errors.ConfigurationError(loc,
		"method %s.%s names its receiver type parameter '%s' but the type declaration names it '%s'",
		target, method, used, declared).
		WithSuggestion("use the same type parameter names as the type declaration").
		WithContext("target", target).
		WithContext("method", method)
}
