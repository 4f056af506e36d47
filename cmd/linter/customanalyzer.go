package main

import (
	"go/ast"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// CustomAnalyzer keeps library code from aborting the process: failures
// must travel back to the caller as values.
var CustomAnalyzer = &analysis.Analyzer{
	Name: "nopanic",
	Doc:  "check for panic, log.Fatal* and os.Exit usage outside main",
	Run:  run,
}

var fatalFuncs = map[string]bool{
	"Fatal":   true,
	"Fatalf":  true,
	"Fatalln": true,
}

func run(p *analysis.Pass) (any, error) {
	for _, file := range p.Files {
		filename := p.Fset.Position(file.Pos()).Filename
		if strings.HasSuffix(filename, "_test.go") {
			continue
		}

		var currentFunc *ast.FuncDecl

		ast.Inspect(file, func(n ast.Node) bool {
			switch x := n.(type) {
			case *ast.FuncDecl:
				currentFunc = x

			case *ast.CallExpr:
				if ident, ok := x.Fun.(*ast.Ident); ok {
					if ident.Name == "panic" {
						p.Reportf(
							x.Pos(),
							"usage of panic function is forbidden",
						)
					}
				}

				if sel, ok := x.Fun.(*ast.SelectorExpr); ok {
					if ident, ok := sel.X.(*ast.Ident); ok {
						pkgName := ident.Name
						funcName := sel.Sel.Name

						isMainFunc := currentFunc != nil &&
							currentFunc.Name.Name == "main"
						isMainPkg := p.Pkg.Name() == "main"

						if pkgName == "log" && fatalFuncs[funcName] {
							if !isMainFunc || !isMainPkg {
								p.Reportf(
									x.Pos(),
									"log.%s outside main",
									funcName,
								)
							}
						}

						if pkgName == "os" && funcName == "Exit" {
							if !isMainFunc || !isMainPkg {
								p.Reportf(
									x.Pos(),
									"os.Exit outside main",
								)
							}
						}
					}
				}
			}
			return true
		})
	}

	return nil, nil
}
