package generator

import (
	"strings"

	"github.com/toyz/overgen/internal/errors"
	"github.com/toyz/overgen/internal/models"
	"github.com/toyz/overgen/internal/parser"
	"github.com/toyz/overgen/internal/templates"
	"github.com/toyz/overgen/internal/utils"
)

// Generator renders the derived interfaces and forwarding implementations
// for one scanned package into a single generated source file.
type Generator struct{}

// NewGenerator creates a new code generator
func NewGenerator() *Generator {
	return &Generator{}
}

// GenerateFile renders the complete generated file for a package.
// Returns empty content when the package declares no targets, so callers
// can skip writing a file at all.
//
// The output is fully assembled and formatted in memory before anything is
// returned; a failing target never produces partial output.
func (g *Generator) GenerateFile(metadata *models.PackageMetadata) (string, error) {
	if len(metadata.Targets) == 0 {
		return "", nil
	}

	importMgr := templates.NewImportManager(metadata.Imports)

	var sections []string
	for i := range metadata.Targets {
		target := &metadata.Targets[i]

		targetSections, err := g.generateTarget(target, importMgr)
		if err != nil {
			return "", errors.WrapGenerateError(target.StructName, err)
		}
		sections = append(sections, targetSections...)
	}

	if missing := importMgr.Unresolved(); len(missing) > 0 {
		return "", errors.Newf(errors.GenerationErrorCode,
			"generated signatures reference packages the source never imports: %s",
			strings.Join(missing, ", "))
	}

	header, err := templates.GenerateFileHeader(templates.FileHeaderData{
		PackageName: metadata.PackageName,
		Imports:     importMgr.ImportLines(),
	})
	if err != nil {
		return "", err
	}

	content := header + "\n" + strings.Join(sections, "\n\n") + "\n"

	formatted, err := utils.FormatSource(parser.GeneratedFileName, []byte(content))
	if err != nil {
		return "", errors.Wrap(errors.GenerationErrorCode,
			"generated code failed to format", err).
			WithContext("package", metadata.PackageName)
	}

	return string(formatted), nil
}

// generateTarget renders one target's interface, its conformance checks,
// and the forwarding implementation.
func (g *Generator) generateTarget(target *models.TargetMetadata, importMgr *templates.ImportManager) ([]string, error) {
	importMgr.Use(target.UsedPackages...)

	included := target.IncludedMethods()
	methods := make([]templates.MethodData, 0, len(included))
	for _, method := range included {
		importMgr.Use(method.UsedPackages...)
		methods = append(methods, templates.BuildMethodData(method))
	}

	typeParamsDecl := templates.FormatTypeParamsDecl(target.TypeParams)
	typeArgs := templates.FormatTypeArgs(target.TypeParams)
	passthroughName := target.StructName + templates.PassthroughSuffix

	iface, err := templates.GenerateInterface(templates.InterfaceData{
		Name:           target.InterfaceName,
		StructName:     target.StructName,
		TypeParamsDecl: typeParamsDecl,
		TypeArgs:       typeArgs,
		Methods:        methods,
	})
	if err != nil {
		return nil, err
	}

	// *T satisfies the derived interface whether the methods use value or
	// pointer receivers, so the original type's check always uses *T.
	originalCheck, err := templates.GenerateConformance(templates.ConformanceData{
		Interface:      target.InterfaceName,
		Implementation: target.StructName,
		TypeParamsDecl: typeParamsDecl,
		TypeArgs:       typeArgs,
		CheckName:      templates.CheckName(target.StructName, target.InterfaceName),
	})
	if err != nil {
		return nil, err
	}

	passthrough, err := templates.GeneratePassthrough(templates.PassthroughData{
		Name:           passthroughName,
		InterfaceName:  target.InterfaceName,
		StructName:     target.StructName,
		TypeParamsDecl: typeParamsDecl,
		TypeArgs:       typeArgs,
		Methods:        methods,
	})
	if err != nil {
		return nil, err
	}

	passthroughCheck, err := templates.GenerateConformance(templates.ConformanceData{
		Interface:      target.InterfaceName,
		Implementation: passthroughName,
		TypeParamsDecl: typeParamsDecl,
		TypeArgs:       typeArgs,
		CheckName:      templates.CheckName(passthroughName, target.InterfaceName),
	})
	if err != nil {
		return nil, err
	}

	return []string{iface, originalCheck, passthrough, passthroughCheck}, nil
}
