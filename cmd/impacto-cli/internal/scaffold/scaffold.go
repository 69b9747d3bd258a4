// Package scaffold generates new application modules and registers them in
// internal/app by rewriting its Go sources.
package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/go/ast/astutil"
)

// ModulePath is the import path prefix of the site module.
const ModulePath = "github.com/impacto/site"

const (
	modulesFile      = "internal/app/modules.go"
	dependenciesFile = "internal/app/dependencies.go"
)

var (
	// ErrInvalidName is returned for names that are not a plain lowercase
	// Go package name.
	ErrInvalidName = errors.New("module name must be lowercase letters and digits, starting with a letter")
	// ErrExists is returned when the module directory is already present.
	ErrExists = errors.New("module already exists")
	// ErrNoModuleList is returned when NewModules has no module list to extend.
	ErrNoModuleList = errors.New("no module list found in NewModules")
)

var validName = regexp.MustCompile(`^[a-z][a-z0-9]*$`)

// Data feeds the file templates.
type Data struct {
	Name       string
	PascalName string
	ModulePath string
}

// NewData validates name and derives the template data.
func NewData(name string) (Data, error) {
	if !validName.MatchString(name) {
		return Data{}, fmt.Errorf("%q: %w", name, ErrInvalidName)
	}
	return Data{
		Name:       name,
		PascalName: cases.Title(language.English).String(name),
		ModulePath: ModulePath,
	}, nil
}

// ImportPath is the import path of the generated package.
func (d Data) ImportPath() string {
	return ModulePath + "/internal/modules/" + d.Name
}

// DepsFunc is the name of the dependency helper added to internal/app.
func (d Data) DepsFunc() string {
	return d.Name + "Deps"
}

// Generate writes module.go and handler.go under root/internal/modules/<name>.
func Generate(root string, d Data) error {
	dir := filepath.Join(root, "internal", "modules", d.Name)
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("%s: %w", dir, ErrExists)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create module directory: %w", err)
	}

	files := map[string]string{
		"module.go":  moduleTemplate,
		"handler.go": handlerTemplate,
	}
	for name, tmpl := range files {
		if err := generateFile(filepath.Join(dir, name), tmpl, d); err != nil {
			return err
		}
	}
	return nil
}

func generateFile(path, tmpl string, d Data) error {
	t, err := template.New(filepath.Base(path)).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, d); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("generated %s does not parse: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, src, 0o644)
}

// RegisterModule adds "<name>.New(<name>Deps(deps))" to the module list
// built in NewModules and imports the new package.
func RegisterModule(root string, d Data) error {
	path := filepath.Join(root, modulesFile)
	fset := token.NewFileSet()
	node, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", modulesFile, err)
	}

	var list *ast.CompositeLit
	ast.Inspect(node, func(n ast.Node) bool {
		fn, ok := n.(*ast.FuncDecl)
		if !ok || fn.Name.Name != "NewModules" {
			return true
		}
		list = firstModuleList(fn.Body)
		return false
	})
	if list == nil {
		return fmt.Errorf("%s: %w", modulesFile, ErrNoModuleList)
	}

	astutil.AddImport(fset, node, d.ImportPath())
	list.Elts = append(list.Elts, &ast.CallExpr{
		Fun: &ast.SelectorExpr{X: ast.NewIdent(d.Name), Sel: ast.NewIdent("New")},
		Args: []ast.Expr{
			&ast.CallExpr{Fun: ast.NewIdent(d.DepsFunc()), Args: []ast.Expr{ast.NewIdent("deps")}},
		},
	})

	return writeAST(fset, node, path)
}

// firstModuleList finds the first composite literal that is either assigned
// or returned in body.
func firstModuleList(body *ast.BlockStmt) *ast.CompositeLit {
	var found *ast.CompositeLit
	ast.Inspect(body, func(n ast.Node) bool {
		if found != nil {
			return false
		}
		var exprs []ast.Expr
		switch s := n.(type) {
		case *ast.AssignStmt:
			exprs = s.Rhs
		case *ast.ReturnStmt:
			exprs = s.Results
		default:
			return true
		}
		for _, e := range exprs {
			if lit, ok := e.(*ast.CompositeLit); ok {
				if _, isSlice := lit.Type.(*ast.ArrayType); isSlice {
					found = lit
					return false
				}
			}
		}
		return true
	})
	return found
}

// AddDependencies appends a "<name>Deps" helper mapping the shared
// Dependencies onto the new module's Dependencies.
func AddDependencies(root string, d Data) error {
	path := filepath.Join(root, dependenciesFile)
	fset := token.NewFileSet()
	node, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", dependenciesFile, err)
	}

	for _, decl := range node.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok && fn.Name.Name == d.DepsFunc() {
			return fmt.Errorf("%s already declares %s: %w", dependenciesFile, d.DepsFunc(), ErrExists)
		}
	}

	astutil.AddImport(fset, node, d.ImportPath())

	depsType := &ast.SelectorExpr{X: ast.NewIdent(d.Name), Sel: ast.NewIdent("Dependencies")}
	node.Decls = append(node.Decls, &ast.FuncDecl{
		Name: ast.NewIdent(d.DepsFunc()),
		Type: &ast.FuncType{
			Params:  &ast.FieldList{List: []*ast.Field{{Names: []*ast.Ident{ast.NewIdent("deps")}, Type: ast.NewIdent("Dependencies")}}},
			Results: &ast.FieldList{List: []*ast.Field{{Type: depsType}}},
		},
		Body: &ast.BlockStmt{
			List: []ast.Stmt{
				&ast.ReturnStmt{
					Results: []ast.Expr{
						&ast.CompositeLit{
							Type: depsType,
							Elts: []ast.Expr{
								&ast.KeyValueExpr{
									Key:   ast.NewIdent("Config"),
									Value: &ast.SelectorExpr{X: ast.NewIdent("deps"), Sel: ast.NewIdent("Config")},
								},
							},
						},
					},
				},
			},
		},
	})

	return writeAST(fset, node, path)
}

func writeAST(fset *token.FileSet, node *ast.File, path string) error {
	var buf bytes.Buffer
	if err := format.Node(&buf, fset, node); err != nil {
		return fmt.Errorf("failed to format AST: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write to file %s: %w", path, err)
	}
	return nil
}
