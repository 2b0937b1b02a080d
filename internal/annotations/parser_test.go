package annotations

import (
	"reflect"
	"strings"
	"testing"

	"github.com/toyz/overgen/internal/errors"
)

func TestIsAnnotationComment(t *testing.T) {
	tests := []struct {
		comment string
		want    bool
	}{
		{"//overgen::overrides", true},
		{"// overgen::skip", true},
		{"//  overgen::overwrite", true},
		{"// Counter tracks things", false},
		{"//overgen", false},
		{"// other::overrides", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsAnnotationComment(tt.comment); got != tt.want {
			t.Errorf("IsAnnotationComment(%q) = %v, want %v", tt.comment, got, tt.want)
		}
	}
}

func TestParseCommentBasic(t *testing.T) {
	parser := NewParser()
	location := errors.SourceLocation{File: "test.go", Line: 1, Column: 1}

	tests := []struct {
		name       string
		input      string
		target     string
		wantType   AnnotationType
		wantParams map[string]interface{}
	}{
		{
			name:       "plain overrides",
			input:      "//overgen::overrides",
			target:     "Counter",
			wantType:   OverridesAnnotation,
			wantParams: map[string]interface{}{},
		},
		{
			name:       "overrides with All=false",
			input:      "//overgen::overrides -All=false",
			target:     "Counter",
			wantType:   OverridesAnnotation,
			wantParams: map[string]interface{}{"All": false},
		},
		{
			name:       "overrides with bare All flag",
			input:      "//overgen::overrides -All",
			target:     "Counter",
			wantType:   OverridesAnnotation,
			wantParams: map[string]interface{}{"All": true},
		},
		{
			name:       "overrides with custom name",
			input:      "//overgen::overrides -Name=CounterSurface",
			target:     "Counter",
			wantType:   OverridesAnnotation,
			wantParams: map[string]interface{}{"Name": "CounterSurface"},
		},
		{
			name:       "overrides with quoted name",
			input:      `//overgen::overrides -Name="CounterSurface"`,
			target:     "Counter",
			wantType:   OverridesAnnotation,
			wantParams: map[string]interface{}{"Name": "CounterSurface"},
		},
		{
			name:       "overrides with both parameters",
			input:      "//overgen::overrides -All=false -Name=Surface",
			target:     "Counter",
			wantType:   OverridesAnnotation,
			wantParams: map[string]interface{}{"All": false, "Name": "Surface"},
		},
		{
			name:       "skip marker",
			input:      "//overgen::skip",
			target:     "Counter.Reset",
			wantType:   SkipAnnotation,
			wantParams: map[string]interface{}{},
		},
		{
			name:       "overwrite marker",
			input:      "//overgen::overwrite",
			target:     "Counter.Add",
			wantType:   OverwriteAnnotation,
			wantParams: map[string]interface{}{},
		},
		{
			name:       "leading comment whitespace",
			input:      "//   overgen::skip",
			target:     "Counter.Reset",
			wantType:   SkipAnnotation,
			wantParams: map[string]interface{}{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := parser.ParseComment(tt.input, tt.target, location)
			if err != nil {
				t.Fatalf("ParseComment(%q) failed: %v", tt.input, err)
			}
			if parsed.Type != tt.wantType {
				t.Errorf("Type = %s, want %s", parsed.Type, tt.wantType)
			}
			if parsed.Target != tt.target {
				t.Errorf("Target = %q, want %q", parsed.Target, tt.target)
			}
			if !reflect.DeepEqual(parsed.Parameters, tt.wantParams) {
				t.Errorf("Parameters = %v, want %v", parsed.Parameters, tt.wantParams)
			}
			if parsed.Raw != tt.input {
				t.Errorf("Raw = %q, want %q", parsed.Raw, tt.input)
			}
		})
	}
}

func TestParseCommentErrors(t *testing.T) {
	parser := NewParser()
	location := errors.SourceLocation{File: "test.go", Line: 5, Column: 1}

	tests := []struct {
		name     string
		input    string
		wantCode errors.ErrorCode
		contains string
	}{
		{
			name:     "missing prefix",
			input:    "// just a comment",
			wantCode: errors.SyntaxErrorCode,
			contains: "prefix",
		},
		{
			name:     "malformed arguments",
			input:    "//overgen::overrides -=true",
			wantCode: errors.SyntaxErrorCode,
			contains: "malformed",
		},
		{
			name:     "unknown annotation kind",
			input:    "//overgen::derive",
			wantCode: errors.ConfigurationErrorCode,
			contains: "unknown annotation",
		},
		{
			name:     "unknown parameter",
			input:    "//overgen::overrides -Rename=Foo",
			wantCode: errors.ConfigurationErrorCode,
			contains: "unknown parameter",
		},
		{
			name:     "parameter on skip",
			input:    "//overgen::skip -All",
			wantCode: errors.ConfigurationErrorCode,
			contains: "unknown parameter",
		},
		{
			name:     "non-boolean All value",
			input:    "//overgen::overrides -All=maybe",
			wantCode: errors.ConfigurationErrorCode,
			contains: "expected 'true' or 'false'",
		},
		{
			name:     "Name without value",
			input:    "//overgen::overrides -Name",
			wantCode: errors.ConfigurationErrorCode,
			contains: "expected a value",
		},
		{
			name:     "Name not an exported identifier",
			input:    "//overgen::overrides -Name=lowerCase",
			wantCode: errors.ConfigurationErrorCode,
			contains: "exported",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.ParseComment(tt.input, "Counter", location)
			if err == nil {
				t.Fatalf("ParseComment(%q) expected error", tt.input)
			}

			overgenErr, ok := err.(errors.OvergenError)
			if !ok {
				t.Fatalf("expected OvergenError, got %T", err)
			}
			if overgenErr.ErrorCode() != tt.wantCode {
				t.Errorf("ErrorCode = %s, want %s", overgenErr.ErrorCode(), tt.wantCode)
			}
			if overgenErr.Location() != location {
				t.Errorf("Location = %v, want %v", overgenErr.Location(), location)
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.contains)
			}
		})
	}
}
