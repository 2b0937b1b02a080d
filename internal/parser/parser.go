package parser

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"sort"
	"strings"

	"github.com/toyz/overgen/internal/annotations"
	"github.com/toyz/overgen/internal/errors"
	"github.com/toyz/overgen/internal/models"
)

// Parser scans Go source for overgen annotations and builds the package
// metadata the generator consumes. Each invocation is independent; the
// parser carries no state between packages beyond its token.FileSet.
type Parser struct {
	fileSet     *token.FileSet
	annotations *annotations.Parser
	reporter    *ErrorReporter
}

// NewParser creates a new source parser with the builtin annotation schemas
func NewParser() *Parser {
	return &Parser{
		fileSet:     token.NewFileSet(),
		annotations: annotations.NewParser(),
		reporter:    NewErrorReporter(),
	}
}

// ParseSource parses source code from a string, mainly for tests
func (p *Parser) ParseSource(filename, source string) (*models.PackageMetadata, error) {
	file, err := parser.ParseFile(p.fileSet, filename, source, parser.ParseComments)
	if err != nil {
		return nil, errors.WrapParseError(filename, err)
	}

	metadata := &models.PackageMetadata{
		PackageName: file.Name.Name,
		PackagePath: "./",
	}

	fileMap := map[string]*ast.File{filename: file}
	if err := p.buildMetadata(metadata, fileMap); err != nil {
		return nil, err
	}

	return metadata, nil
}

// ParseDirectory scans one package directory for annotated types.
// Test files and previously generated output are excluded so repeated runs
// see exactly the hand-written source.
func (p *Parser) ParseDirectory(path string) (*models.PackageMetadata, error) {
	pkgs, err := parser.ParseDir(p.fileSet, path, func(info os.FileInfo) bool {
		name := info.Name()
		return !strings.HasSuffix(name, "_test.go") && name != GeneratedFileName
	}, parser.ParseComments)
	if err != nil {
		return nil, errors.WrapParseError(path, err)
	}

	if len(pkgs) == 0 {
		return nil, errors.Newf(errors.SyntaxErrorCode, "no Go packages found in directory %s", path)
	}
	if len(pkgs) > 1 {
		return nil, errors.Newf(errors.SyntaxErrorCode, "multiple packages found in directory %s", path)
	}

	var pkg *ast.Package
	var packageName string
	for name, astPkg := range pkgs {
		pkg = astPkg
		packageName = name
		break
	}

	metadata := &models.PackageMetadata{
		PackageName: packageName,
		PackagePath: path,
	}

	if err := p.buildMetadata(metadata, pkg.Files); err != nil {
		return nil, err
	}

	return metadata, nil
}

// buildMetadata runs the two discovery passes over the package's files and
// resolves every method's inclusion decision. All configuration errors in the
// package are collected and reported together.
func (p *Parser) buildMetadata(metadata *models.PackageMetadata, fileMap map[string]*ast.File) error {
	var collected *errors.MultipleErrors

	// Deterministic file order keeps method ordering and error ordering stable
	fileNames := make([]string, 0, len(fileMap))
	for name := range fileMap {
		fileNames = append(fileNames, name)
	}
	sort.Strings(fileNames)

	// First pass: find overrides-annotated type declarations
	targets := make(map[string]*models.TargetMetadata)
	metadata.Imports = make(map[string]string)
	for _, fileName := range fileNames {
		p.collectFileImports(fileMap[fileName], metadata.Imports)
		p.collectTargets(fileMap[fileName], fileName, targets, &collected)
	}

	// Second pass: collect exported methods and per-method markers
	for _, fileName := range fileNames {
		p.collectMethods(fileMap[fileName], fileName, targets, &collected)
	}

	// Resolve inclusion and reject empty interfaces
	targetNames := make([]string, 0, len(targets))
	for name := range targets {
		targetNames = append(targetNames, name)
	}
	sort.Strings(targetNames)

	for _, name := range targetNames {
		target := targets[name]
		p.resolveInclusion(target, &collected)

		if collected == nil || collected.IsEmpty() {
			if len(target.IncludedMethods()) == 0 {
				errors.AddToMultiple(&collected, p.reporter.ReportEmptyInterface(target))
			}
		}

		metadata.Targets = append(metadata.Targets, *target)
	}

	if collected != nil && !collected.IsEmpty() {
		return collected
	}

	return nil
}

// collectFileImports records the package qualifiers a file's import block
// provides, so generated signatures can carry the right imports along.
func (p *Parser) collectFileImports(file *ast.File, imports map[string]string) {
	for _, imp := range file.Imports {
		path := strings.Trim(imp.Path.Value, `"`)

		qualifier := path
		if idx := strings.LastIndex(path, "/"); idx >= 0 {
			qualifier = path[idx+1:]
		}
		if imp.Name != nil {
			if imp.Name.Name == "_" || imp.Name.Name == "." {
				continue
			}
			qualifier = imp.Name.Name
		}

		imports[qualifier] = path
	}
}

// collectTargets finds type declarations annotated with overgen::overrides
func (p *Parser) collectTargets(file *ast.File, fileName string, targets map[string]*models.TargetMetadata, collected **errors.MultipleErrors) {
	ast.Inspect(file, func(n ast.Node) bool {
		genDecl, ok := n.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			return true
		}

		// A declaration-level annotation names exactly one type. On a grouped
		// declaration it has no single target, so it is rejected rather than
		// silently fanned out over every type in the group.
		if genDecl.Doc != nil {
			for _, comment := range genDecl.Doc.List {
				if !annotations.IsAnnotationComment(comment.Text) {
					continue
				}
				if len(genDecl.Specs) != 1 {
					errors.AddToMultiple(collected, p.reporter.ReportAnnotationOnGroup(p.location(comment.Pos())))
					continue
				}
				if typeSpec, ok := genDecl.Specs[0].(*ast.TypeSpec); ok {
					p.registerTarget(comment, typeSpec, fileName, targets, collected)
				}
			}
		}

		// Inside a group the annotation sits on the individual type spec
		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok || typeSpec.Doc == nil {
				continue
			}
			for _, comment := range typeSpec.Doc.List {
				if !annotations.IsAnnotationComment(comment.Text) {
					continue
				}
				p.registerTarget(comment, typeSpec, fileName, targets, collected)
			}
		}

		return true
	})
}

// registerTarget parses one annotation comment attached to a type spec and
// records the target it declares.
func (p *Parser) registerTarget(comment *ast.Comment, typeSpec *ast.TypeSpec, fileName string, targets map[string]*models.TargetMetadata, collected **errors.MultipleErrors) {
	loc := p.location(comment.Pos())
	parsed, err := p.annotations.ParseComment(comment.Text, typeSpec.Name.Name, loc)
	if err != nil {
		p.collect(collected, err)
		return
	}

	if parsed.Type != annotations.OverridesAnnotation {
		p.collect(collected, errors.ConfigurationError(loc,
			"overgen::%s applies to methods, not type declarations", parsed.Type).
			WithSuggestion("use //overgen::overrides on types"))
		return
	}

	if _, exists := targets[typeSpec.Name.Name]; exists {
		errors.AddToMultiple(collected, p.reporter.ReportDuplicateTarget(typeSpec.Name.Name, loc))
		return
	}

	targets[typeSpec.Name.Name] = p.buildTarget(typeSpec, parsed, fileName)
}

// buildTarget constructs target metadata from a parsed overrides annotation
func (p *Parser) buildTarget(typeSpec *ast.TypeSpec, parsed *annotations.ParsedAnnotation, fileName string) *models.TargetMetadata {
	mode := models.ModeIncludeAll
	if !parsed.GetBool(annotations.ParamAll, true) {
		mode = models.ModeExcludeAll
	}

	structName := typeSpec.Name.Name
	interfaceName := parsed.GetString(annotations.ParamName, structName+DefaultInterfaceSuffix)
	typeParams, usedPackages := extractTypeParams(p.fileSet, typeSpec)

	return &models.TargetMetadata{
		StructName:    structName,
		InterfaceName: interfaceName,
		Mode:          mode,
		TypeParams:    typeParams,
		UsedPackages:  usedPackages,
		FileName:      fileName,
		Location:      parsed.Location,
	}
}

// collectMethods gathers exported methods of target types along with their
// markers. Methods of non-target types and unexported methods pass through
// untouched; markers on either are configuration errors because they could
// never take effect.
func (p *Parser) collectMethods(file *ast.File, fileName string, targets map[string]*models.TargetMetadata, collected **errors.MultipleErrors) {
	ast.Inspect(file, func(n ast.Node) bool {
		funcDecl, ok := n.(*ast.FuncDecl)
		if !ok {
			return true
		}

		recv, isMethod := parseReceiver(funcDecl)
		if !isMethod {
			return true
		}

		target, isTarget := targets[recv.TypeName]
		marker, markerLoc, err := p.extractMarker(funcDecl, recv.TypeName)
		if err != nil {
			p.collect(collected, err)
			return true
		}

		if !isTarget {
			if marker != models.MarkerNone {
				errors.AddToMultiple(collected, p.reporter.ReportMarkerWithoutTarget(
					recv.TypeName, funcDecl.Name.Name, marker, markerLoc))
			}
			return true
		}

		if !funcDecl.Name.IsExported() {
			if marker != models.MarkerNone {
				errors.AddToMultiple(collected, p.reporter.ReportMarkerOnUnexported(
					recv.TypeName, funcDecl.Name.Name, marker, markerLoc))
			}
			return true
		}

		if ok := p.checkTypeParams(target, funcDecl, recv, collected); !ok {
			return true
		}

		params, results, usedPackages := extractSignature(p.fileSet, funcDecl)
		target.Methods = append(target.Methods, models.MethodMetadata{
			Name:            funcDecl.Name.Name,
			Doc:             cleanDoc(funcDecl.Doc),
			PointerReceiver: recv.Pointer,
			Params:          params,
			Results:         results,
			Marker:          marker,
			UsedPackages:    usedPackages,
			Location:        p.location(funcDecl.Pos()),
		})

		return true
	})
}

// extractMarker reads the skip/overwrite marker from a method's doc comment.
// A method carrying both markers is rejected.
func (p *Parser) extractMarker(funcDecl *ast.FuncDecl, typeName string) (models.Marker, errors.SourceLocation, error) {
	marker := models.MarkerNone
	var markerLoc errors.SourceLocation

	if funcDecl.Doc == nil {
		return marker, markerLoc, nil
	}

	methodName := funcDecl.Name.Name
	for _, comment := range funcDecl.Doc.List {
		if !annotations.IsAnnotationComment(comment.Text) {
			continue
		}

		loc := p.location(comment.Pos())
		parsed, err := p.annotations.ParseComment(comment.Text, typeName+"."+methodName, loc)
		if err != nil {
			return models.MarkerNone, loc, err
		}

		var found models.Marker
		switch parsed.Type {
		case annotations.SkipAnnotation:
			found = models.MarkerSkip
		case annotations.OverwriteAnnotation:
			found = models.MarkerOverwrite
		default:
			return models.MarkerNone, loc, errors.ConfigurationError(loc,
				"overgen::%s applies to type declarations, not methods", parsed.Type).
				WithSuggestion("use //overgen::skip or //overgen::overwrite on methods")
		}

		if marker != models.MarkerNone && marker != found {
			return models.MarkerNone, loc, p.reporter.ReportConflictingMarkers(typeName, methodName, loc)
		}

		marker = found
		markerLoc = loc
	}

	return marker, markerLoc, nil
}

// checkTypeParams verifies that a generic method's receiver uses the same
// type parameter names as the type declaration, so generated signatures
// reference the right parameters.
func (p *Parser) checkTypeParams(target *models.TargetMetadata, funcDecl *ast.FuncDecl, recv receiverInfo, collected **errors.MultipleErrors) bool {
	if len(recv.TypeArgs) == 0 && len(target.TypeParams) == 0 {
		return true
	}

	for i, arg := range recv.TypeArgs {
		if i >= len(target.TypeParams) {
			break
		}
		if declared := target.TypeParams[i].Name; declared != arg {
			errors.AddToMultiple(collected, p.reporter.ReportTypeParamMismatch(
				target.StructName, funcDecl.Name.Name, declared, arg, p.location(funcDecl.Pos())))
			return false
		}
	}

	return true
}

// resolveInclusion applies the mode/marker decision to every collected method
func (p *Parser) resolveInclusion(target *models.TargetMetadata, collected **errors.MultipleErrors) {
	for i := range target.Methods {
		method := &target.Methods[i]

		included, err := models.ResolveInclusion(target.Mode, method.Marker)
		if err != nil {
			errors.AddToMultiple(collected, p.reporter.ReportMarkerMismatch(
				target.StructName, method.Name, target.Mode, method.Marker, method.Location))
			continue
		}

		method.Included = included
	}
}

// cleanDoc returns a method's doc comment lines with annotation lines stripped
func cleanDoc(doc *ast.CommentGroup) []string {
	if doc == nil {
		return nil
	}

	var lines []string
	for _, comment := range doc.List {
		if annotations.IsAnnotationComment(comment.Text) {
			continue
		}
		text := strings.TrimPrefix(comment.Text, "//")
		lines = append(lines, strings.TrimPrefix(text, " "))
	}
	return lines
}

// collect adds any error to the collection, wrapping non-overgen errors
func (p *Parser) collect(collected **errors.MultipleErrors, err error) {
	if overgenErr, ok := err.(errors.OvergenError); ok {
		errors.AddToMultiple(collected, overgenErr)
		return
	}
	errors.AddToMultiple(collected, errors.Wrap(errors.UnknownErrorCode, err.Error(), err))
}

// location converts a token position to a source location
func (p *Parser) location(pos token.Pos) errors.SourceLocation {
	position := p.fileSet.Position(pos)
	return errors.SourceLocation{
		File:   position.Filename,
		Line:   position.Line,
		Column: position.Column,
	}
}
