package generator

import (
	goparser "go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/toyz/overgen/internal/models"
	"github.com/toyz/overgen/internal/parser"
)

func generate(t *testing.T, source string) string {
	t.Helper()

	metadata, err := parser.NewParser().ParseSource("test.go", source)
	if err != nil {
		t.Fatalf("ParseSource failed: %v", err)
	}

	content, err := NewGenerator().GenerateFile(metadata)
	if err != nil {
		t.Fatalf("GenerateFile failed: %v", err)
	}
	return content
}

// assertValidGo parses generated output to prove it is syntactically valid
func assertValidGo(t *testing.T, content string) {
	t.Helper()
	fset := token.NewFileSet()
	if _, err := goparser.ParseFile(fset, parser.GeneratedFileName, content, goparser.ParseComments); err != nil {
		t.Fatalf("generated output is not valid Go: %v\n%s", err, content)
	}
}

func TestGenerateFileBasic(t *testing.T) {
	content := generate(t, `
package store

//overgen::overrides
type Cache struct{}

// Get looks up a key.
func (c *Cache) Get(key string) (string, bool) { return "", false }

// Put stores a value.
func (c *Cache) Put(key, value string) {}
`)

	assertValidGo(t, content)

	for _, fragment := range []string{
		"// Code generated by overgen. DO NOT EDIT.",
		"package store",
		"type CacheOverrides interface {",
		"Get(key string) (string, bool)",
		"Put(key string, value string)",
		"var _ CacheOverrides = (*Cache)(nil)",
		"type CachePassthrough struct {",
		"Inner *Cache",
		"return p.Inner.Get(key)",
		"p.Inner.Put(key, value)",
		"var _ CacheOverrides = (*CachePassthrough)(nil)",
	} {
		if !strings.Contains(content, fragment) {
			t.Errorf("output missing %q:\n%s", fragment, content)
		}
	}
}

func TestGenerateFileSkipsExcludedMethods(t *testing.T) {
	content := generate(t, `
package store

//overgen::overrides
type Cache struct{}

func (c *Cache) Get(key string) string { return "" }

//overgen::skip
func (c *Cache) Reset() {}
`)

	assertValidGo(t, content)

	if strings.Contains(content, "Reset") {
		t.Errorf("skipped method leaked into output:\n%s", content)
	}
}

func TestGenerateFileCarriesImports(t *testing.T) {
	content := generate(t, `
package store

import (
	"context"
	"time"
)

//overgen::overrides
type Clock struct{}

func (c *Clock) Now(ctx context.Context) time.Time { return time.Time{} }
`)

	assertValidGo(t, content)

	for _, fragment := range []string{`"context"`, `"time"`} {
		if !strings.Contains(content, fragment) {
			t.Errorf("output missing import %q:\n%s", fragment, content)
		}
	}
}

func TestGenerateFilePrunesUnusedImports(t *testing.T) {
	// The source imports both packages but only time appears in an
	// included signature; context is used by a skipped method only.
	content := generate(t, `
package store

import (
	"context"
	"time"
)

//overgen::overrides
type Clock struct{}

func (c *Clock) Now() time.Time { return time.Time{} }

//overgen::skip
func (c *Clock) Wait(ctx context.Context) error { return nil }
`)

	assertValidGo(t, content)

	if strings.Contains(content, `"context"`) {
		t.Errorf("unused import survived:\n%s", content)
	}
	if !strings.Contains(content, `"time"`) {
		t.Errorf("needed import missing:\n%s", content)
	}
}

func TestGenerateFileVariadic(t *testing.T) {
	content := generate(t, `
package store

//overgen::overrides
type Logger struct{}

func (l *Logger) Logf(format string, args ...interface{}) {}
`)

	assertValidGo(t, content)

	if !strings.Contains(content, "Logf(format string, args ...interface{})") {
		t.Errorf("variadic signature missing:\n%s", content)
	}
	if !strings.Contains(content, "p.Inner.Logf(format, args...)") {
		t.Errorf("variadic forwarding missing:\n%s", content)
	}
}

func TestGenerateFileGenericTarget(t *testing.T) {
	content := generate(t, `
package store

//overgen::overrides
type Box[T any] struct{ value T }

func (b *Box[T]) Get() T { var zero T; return zero }

func (b *Box[T]) Set(value T) {}
`)

	assertValidGo(t, content)

	for _, fragment := range []string{
		"type BoxOverrides[T any] interface {",
		"type BoxPassthrough[T any] struct {",
		"Inner *Box[T]",
		"func (p *BoxPassthrough[T]) Get() T {",
		"func _assertBoxIsBoxOverrides[T any](v *Box[T]) BoxOverrides[T]",
		"func _assertBoxPassthroughIsBoxOverrides[T any](v *BoxPassthrough[T]) BoxOverrides[T]",
	} {
		if !strings.Contains(content, fragment) {
			t.Errorf("output missing %q:\n%s", fragment, content)
		}
	}

	// Generic targets cannot use package-level var assertions
	if strings.Contains(content, "var _ BoxOverrides") {
		t.Errorf("generic target must not use a var conformance check:\n%s", content)
	}
}

func TestGenerateFileDeterministic(t *testing.T) {
	source := `
package store

//overgen::overrides
type Zebra struct{}

func (z *Zebra) Run(distance int) int { return distance }

//overgen::overrides
type Apple struct{}

func (a *Apple) Fall() {}
`

	first := generate(t, source)
	second := generate(t, source)
	if first != second {
		t.Error("repeated generation produced different output")
	}

	// Targets appear in name order regardless of declaration order
	if strings.Index(first, "AppleOverrides") > strings.Index(first, "ZebraOverrides") {
		t.Errorf("targets not sorted by name:\n%s", first)
	}
}

func TestGenerateFileEmptyPackage(t *testing.T) {
	metadata := &models.PackageMetadata{PackageName: "store"}

	content, err := NewGenerator().GenerateFile(metadata)
	if err != nil {
		t.Fatalf("GenerateFile failed: %v", err)
	}
	if content != "" {
		t.Errorf("expected empty output for package without targets, got:\n%s", content)
	}
}

func TestGenerateFileCustomInterfaceName(t *testing.T) {
	content := generate(t, `
package store

//overgen::overrides -Name=CacheSurface
type Cache struct{}

func (c *Cache) Get(key string) string { return "" }
`)

	assertValidGo(t, content)

	if !strings.Contains(content, "type CacheSurface interface {") {
		t.Errorf("custom interface name missing:\n%s", content)
	}
	if !strings.Contains(content, "var _ CacheSurface = (*CachePassthrough)(nil)") {
		t.Errorf("passthrough conformance must use the custom name:\n%s", content)
	}
}
