package parser

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/printer"
	"go/token"

	"github.com/toyz/overgen/internal/models"
)

// typeString renders a type expression exactly as the AST describes it.
// Rendering goes through go/printer rather than hand-walking the expression
// so qualified types, function types, channels, and generic instantiations
// all survive with full fidelity.
func typeString(fset *token.FileSet, expr ast.Expr) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, expr); err != nil {
		return "<unprintable>"
	}
	return buf.String()
}

// receiverInfo describes the receiver of a method declaration
type receiverInfo struct {
	TypeName string   // base type name without star or type arguments
	Pointer  bool     // receiver declared as *T
	TypeArgs []string // type argument names for generic receivers
}

// parseReceiver extracts receiver information from a method declaration.
// Returns false for plain functions and receivers that do not name a local type.
func parseReceiver(funcDecl *ast.FuncDecl) (receiverInfo, bool) {
	if funcDecl.Recv == nil || len(funcDecl.Recv.List) == 0 {
		return receiverInfo{}, false
	}

	expr := funcDecl.Recv.List[0].Type
	info := receiverInfo{}

	if star, ok := expr.(*ast.StarExpr); ok {
		info.Pointer = true
		expr = star.X
	}

	switch t := expr.(type) {
	case *ast.Ident:
		info.TypeName = t.Name
		return info, true
	case *ast.IndexExpr:
		// Generic receiver with one type parameter, e.g. Box[T]
		ident, ok := t.X.(*ast.Ident)
		if !ok {
			return receiverInfo{}, false
		}
		info.TypeName = ident.Name
		if arg, ok := t.Index.(*ast.Ident); ok {
			info.TypeArgs = append(info.TypeArgs, arg.Name)
		}
		return info, true
	case *ast.IndexListExpr:
		// Generic receiver with multiple type parameters, e.g. Pair[K, V]
		ident, ok := t.X.(*ast.Ident)
		if !ok {
			return receiverInfo{}, false
		}
		info.TypeName = ident.Name
		for _, index := range t.Indices {
			if arg, ok := index.(*ast.Ident); ok {
				info.TypeArgs = append(info.TypeArgs, arg.Name)
			}
		}
		return info, true
	default:
		return receiverInfo{}, false
	}
}

// extractTypeParams extracts generic type parameters from a type declaration
func extractTypeParams(fset *token.FileSet, typeSpec *ast.TypeSpec) ([]models.TypeParam, []string) {
	if typeSpec.TypeParams == nil {
		return nil, nil
	}

	var params []models.TypeParam
	var used []string
	for _, field := range typeSpec.TypeParams.List {
		constraint := typeString(fset, field.Type)
		used = appendQualifiers(used, field.Type)
		for _, name := range field.Names {
			params = append(params, models.TypeParam{
				Name:       name.Name,
				Constraint: constraint,
			})
		}
	}
	return params, used
}

// appendQualifiers records the package qualifiers a type expression references,
// so the generator can carry the right imports into the output file.
func appendQualifiers(used []string, expr ast.Expr) []string {
	ast.Inspect(expr, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}
		ident, ok := sel.X.(*ast.Ident)
		if !ok {
			return true
		}
		for _, existing := range used {
			if existing == ident.Name {
				return false
			}
		}
		used = append(used, ident.Name)
		return false
	})
	return used
}

// extractSignature converts a method declaration's parameter and result lists
// into metadata. Anonymous and blank parameters get synthesized names so the
// generated forwarding body can pass them through.
func extractSignature(fset *token.FileSet, funcDecl *ast.FuncDecl) ([]models.Parameter, []string, []string) {
	var params []models.Parameter
	var used []string

	if funcDecl.Type.Params != nil {
		for _, field := range funcDecl.Type.Params.List {
			variadic := false
			fieldType := field.Type
			if ellipsis, ok := fieldType.(*ast.Ellipsis); ok {
				variadic = true
				fieldType = ellipsis.Elt
			}
			rendered := typeString(fset, fieldType)
			used = appendQualifiers(used, fieldType)

			if len(field.Names) == 0 {
				params = append(params, models.Parameter{
					Name:     fmt.Sprintf("arg%d", len(params)),
					Type:     rendered,
					Variadic: variadic,
				})
				continue
			}

			for _, name := range field.Names {
				paramName := name.Name
				if paramName == "_" {
					paramName = fmt.Sprintf("arg%d", len(params))
				}
				params = append(params, models.Parameter{
					Name:     paramName,
					Type:     rendered,
					Variadic: variadic,
				})
			}
		}
	}

	var results []string
	if funcDecl.Type.Results != nil {
		for _, field := range funcDecl.Type.Results.List {
			rendered := typeString(fset, field.Type)
			used = appendQualifiers(used, field.Type)
			// Named results collapse to their types; result names are
			// implementation detail, not part of the derived signature.
			count := len(field.Names)
			if count == 0 {
				count = 1
			}
			for i := 0; i < count; i++ {
				results = append(results, rendered)
			}
		}
	}

	return params, results, used
}
