package internalcheck

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const libraryPath = "github.com/hsiuhsiu/ffibench-go/pkg/benchlib"

func loadLibrary(t *testing.T) []*packages.Package {
	t.Helper()
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedFiles | packages.NeedName,
	}
	pkgs, err := packages.Load(cfg, libraryPath)
	if err != nil {
		t.Fatalf("load package: %v", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		t.Fatalf("package %s has errors", libraryPath)
	}
	return pkgs
}

// Package-level variables are allowed only when they hold error sentinels.
func TestNoPackageLevelState(t *testing.T) {
	errorType := types.Universe.Lookup("error").Type()
	var findings []string

	for _, pkg := range loadLibrary(t) {
		for _, file := range pkg.Syntax {
			for _, decl := range file.Decls {
				gd, ok := decl.(*ast.GenDecl)
				if !ok || gd.Tok != token.VAR {
					continue
				}
				for _, spec := range gd.Specs {
					vs := spec.(*ast.ValueSpec)
					for _, name := range vs.Names {
						obj := pkg.TypesInfo.Defs[name]
						if obj == nil || types.Identical(obj.Type(), errorType) {
							continue
						}
						pos := pkg.Fset.Position(name.Pos())
						findings = append(findings, fmt.Sprintf("%s: package-level var %s of type %s", pos, name.Name, obj.Type()))
					}
				}
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("reentrancy policy violation:\n%s", strings.Join(findings, "\n"))
	}
}

func TestNoConcurrencyPrimitives(t *testing.T) {
	forbidden := map[string]bool{
		"sync":        true,
		"sync/atomic": true,
		"unsafe":      true,
	}
	var findings []string

	for _, pkg := range loadLibrary(t) {
		for _, file := range pkg.Syntax {
			for _, imp := range file.Imports {
				path, err := strconv.Unquote(imp.Path.Value)
				if err != nil {
					t.Fatalf("unquote import: %v", err)
				}
				if forbidden[path] {
					pos := pkg.Fset.Position(imp.Pos())
					findings = append(findings, fmt.Sprintf("%s: import of %q", pos, path))
				}
			}

			ast.Inspect(file, func(n ast.Node) bool {
				switch n.(type) {
				case *ast.GoStmt:
					findings = append(findings, fmt.Sprintf("%s: go statement", pkg.Fset.Position(n.Pos())))
				case *ast.SendStmt:
					findings = append(findings, fmt.Sprintf("%s: channel send", pkg.Fset.Position(n.Pos())))
				}
				return true
			})
		}
	}

	if len(findings) > 0 {
		t.Fatalf("reentrancy policy violation:\n%s", strings.Join(findings, "\n"))
	}
}
