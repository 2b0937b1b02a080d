package templates

import (
	"strings"
	"testing"

	"github.com/toyz/overgen/internal/models"
)

func TestFormatTypeParamsDecl(t *testing.T) {
	tests := []struct {
		name   string
		params []models.TypeParam
		want   string
	}{
		{name: "no parameters", params: nil, want: ""},
		{
			name:   "single parameter",
			params: []models.TypeParam{{Name: "T", Constraint: "any"}},
			want:   "[T any]",
		},
		{
			name: "multiple parameters",
			params: []models.TypeParam{
				{Name: "K", Constraint: "comparable"},
				{Name: "V", Constraint: "any"},
			},
			want: "[K comparable, V any]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTypeParamsDecl(tt.params); got != tt.want {
				t.Errorf("FormatTypeParamsDecl = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatTypeArgs(t *testing.T) {
	params := []models.TypeParam{
		{Name: "K", Constraint: "comparable"},
		{Name: "V", Constraint: "any"},
	}
	if got := FormatTypeArgs(params); got != "[K, V]" {
		t.Errorf("FormatTypeArgs = %q, want [K, V]", got)
	}
	if got := FormatTypeArgs(nil); got != "" {
		t.Errorf("FormatTypeArgs(nil) = %q, want empty", got)
	}
}

func TestBuildMethodData(t *testing.T) {
	tests := []struct {
		name          string
		method        models.MethodMetadata
		wantSignature string
		wantCallArgs  string
		wantResults   bool
	}{
		{
			name: "no parameters no results",
			method: models.MethodMetadata{
				Name: "Reset",
			},
			wantSignature: "()",
			wantCallArgs:  "",
		},
		{
			name: "single result",
			method: models.MethodMetadata{
				Name:    "Get",
				Params:  []models.Parameter{{Name: "key", Type: "string"}},
				Results: []string{"int"},
			},
			wantSignature: "(key string) int",
			wantCallArgs:  "key",
			wantResults:   true,
		},
		{
			name: "multiple results are parenthesized",
			method: models.MethodMetadata{
				Name:    "Lookup",
				Params:  []models.Parameter{{Name: "key", Type: "string"}},
				Results: []string{"string", "bool"},
			},
			wantSignature: "(key string) (string, bool)",
			wantCallArgs:  "key",
			wantResults:   true,
		},
		{
			name: "variadic forwarding",
			method: models.MethodMetadata{
				Name: "Sum",
				Params: []models.Parameter{
					{Name: "base", Type: "int"},
					{Name: "values", Type: "int", Variadic: true},
				},
				Results: []string{"int"},
			},
			wantSignature: "(base int, values ...int) int",
			wantCallArgs:  "base, values...",
			wantResults:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := BuildMethodData(tt.method)
			if data.Signature != tt.wantSignature {
				t.Errorf("Signature = %q, want %q", data.Signature, tt.wantSignature)
			}
			if data.CallArgs != tt.wantCallArgs {
				t.Errorf("CallArgs = %q, want %q", data.CallArgs, tt.wantCallArgs)
			}
			if data.HasResults != tt.wantResults {
				t.Errorf("HasResults = %v, want %v", data.HasResults, tt.wantResults)
			}
		})
	}
}

func TestGenerateInterface(t *testing.T) {
	output, err := GenerateInterface(InterfaceData{
		Name:       "CacheOverrides",
		StructName: "Cache",
		Methods: []MethodData{
			{Name: "Get", Doc: []string{"Get looks up a key."}, Signature: "(key string) (string, bool)"},
			{Name: "Put", Signature: "(key, value string)"},
		},
	})
	if err != nil {
		t.Fatalf("GenerateInterface failed: %v", err)
	}

	for _, fragment := range []string{
		"type CacheOverrides interface {",
		"// Get looks up a key.",
		"Get(key string) (string, bool)",
		"Put(key, value string)",
	} {
		if !strings.Contains(output, fragment) {
			t.Errorf("output missing %q:\n%s", fragment, output)
		}
	}
}

func TestGenerateGenericInterface(t *testing.T) {
	output, err := GenerateInterface(InterfaceData{
		Name:           "BoxOverrides",
		StructName:     "Box",
		TypeParamsDecl: "[T any]",
		TypeArgs:       "[T]",
		Methods: []MethodData{
			{Name: "Get", Signature: "() T", HasResults: true},
		},
	})
	if err != nil {
		t.Fatalf("GenerateInterface failed: %v", err)
	}

	if !strings.Contains(output, "type BoxOverrides[T any] interface {") {
		t.Errorf("generic interface declaration missing:\n%s", output)
	}
}

func TestGeneratePassthrough(t *testing.T) {
	output, err := GeneratePassthrough(PassthroughData{
		Name:          "CachePassthrough",
		InterfaceName: "CacheOverrides",
		StructName:    "Cache",
		Methods: []MethodData{
			{Name: "Get", Signature: "(key string) (string, bool)", CallArgs: "key", HasResults: true},
			{Name: "Reset", Signature: "()", CallArgs: ""},
		},
	})
	if err != nil {
		t.Fatalf("GeneratePassthrough failed: %v", err)
	}

	for _, fragment := range []string{
		"type CachePassthrough struct {",
		"Inner *Cache",
		"func (p *CachePassthrough) Get(key string) (string, bool) {",
		"return p.Inner.Get(key)",
		"func (p *CachePassthrough) Reset() {",
		"p.Inner.Reset()",
	} {
		if !strings.Contains(output, fragment) {
			t.Errorf("output missing %q:\n%s", fragment, output)
		}
	}

	// Reset has no results, so its body must not contain a return
	if strings.Contains(output, "return p.Inner.Reset()") {
		t.Error("void method body must not return")
	}
}

func TestGenerateConformance(t *testing.T) {
	output, err := GenerateConformance(ConformanceData{
		Interface:      "CacheOverrides",
		Implementation: "Cache",
	})
	if err != nil {
		t.Fatalf("GenerateConformance failed: %v", err)
	}
	want := "var _ CacheOverrides = (*Cache)(nil)"
	if output != want {
		t.Errorf("output = %q, want %q", output, want)
	}
}

func TestGenerateGenericConformance(t *testing.T) {
	output, err := GenerateConformance(ConformanceData{
		Interface:      "BoxOverrides",
		Implementation: "Box",
		TypeParamsDecl: "[T any]",
		TypeArgs:       "[T]",
		CheckName:      CheckName("Box", "BoxOverrides"),
	})
	if err != nil {
		t.Fatalf("GenerateConformance failed: %v", err)
	}

	want := "func _assertBoxIsBoxOverrides[T any](v *Box[T]) BoxOverrides[T] { return v }"
	if output != want {
		t.Errorf("output = %q, want %q", output, want)
	}
}

func TestGenerateFileHeader(t *testing.T) {
	output, err := GenerateFileHeader(FileHeaderData{
		PackageName: "store",
		Imports:     []string{`"context"`, `xt "golang.org/x/text/language"`},
	})
	if err != nil {
		t.Fatalf("GenerateFileHeader failed: %v", err)
	}

	for _, fragment := range []string{
		"// Code generated by overgen. DO NOT EDIT.",
		"package store",
		`"context"`,
		`xt "golang.org/x/text/language"`,
	} {
		if !strings.Contains(output, fragment) {
			t.Errorf("output missing %q:\n%s", fragment, output)
		}
	}
}

func TestGenerateFileHeaderNoImports(t *testing.T) {
	output, err := GenerateFileHeader(FileHeaderData{PackageName: "store"})
	if err != nil {
		t.Fatalf("GenerateFileHeader failed: %v", err)
	}
	if strings.Contains(output, "import") {
		t.Errorf("header without imports must omit the import block:\n%s", output)
	}
}
