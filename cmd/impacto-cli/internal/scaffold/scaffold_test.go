package scaffold

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modulesFixture = `package app

import (
	"github.com/impacto/site/internal/module"
	"github.com/impacto/site/internal/modules/site"
)

func NewModules(deps Dependencies) []module.Module {
	mods := []module.Module{
		site.New(siteDeps(deps)),
	}
	return mods
}
`

const returnFixture = `package app

import "github.com/impacto/site/internal/module"

func NewModules(deps Dependencies) []module.Module {
	return []module.Module{}
}
`

const depsFixture = `package app

import "github.com/impacto/site/internal/config"

type Dependencies struct {
	Config config.Provider
}
`

func writeFixture(t *testing.T, root, rel, src string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
}

func readParsed(t *testing.T, path string) string {
	t.Helper()
	src, err := os.ReadFile(path)
	require.NoError(t, err)
	_, err = parser.ParseFile(token.NewFileSet(), path, src, 0)
	require.NoError(t, err, "rewritten file must still parse")
	return string(src)
}

func TestNewData(t *testing.T) {
	d, err := NewData("casos")
	require.NoError(t, err)
	assert.Equal(t, "Casos", d.PascalName)
	assert.Equal(t, "github.com/impacto/site/internal/modules/casos", d.ImportPath())
	assert.Equal(t, "casosDeps", d.DepsFunc())

	for _, bad := range []string{"", "Casos", "1casos", "mis-casos", "mis_casos"} {
		_, err := NewData(bad)
		assert.ErrorIs(t, err, ErrInvalidName, bad)
	}
}

func TestGenerate(t *testing.T) {
	root := t.TempDir()
	d, err := NewData("casos")
	require.NoError(t, err)

	require.NoError(t, Generate(root, d))

	mod := readParsed(t, filepath.Join(root, "internal/modules/casos/module.go"))
	assert.Contains(t, mod, "package casos")
	assert.Contains(t, mod, `g.GET("/casos", h.Get)`)
	assert.Contains(t, mod, "github.com/impacto/site/internal/module")

	handler := readParsed(t, filepath.Join(root, "internal/modules/casos/handler.go"))
	assert.Contains(t, handler, `layouts.Page{Title: "Casos"`)

	assert.ErrorIs(t, Generate(root, d), ErrExists)
}

func TestRegisterModule(t *testing.T) {
	d, err := NewData("casos")
	require.NoError(t, err)

	t.Run("assigned list", func(t *testing.T) {
		root := t.TempDir()
		writeFixture(t, root, modulesFile, modulesFixture)

		require.NoError(t, RegisterModule(root, d))

		out := readParsed(t, filepath.Join(root, modulesFile))
		assert.Contains(t, out, `"github.com/impacto/site/internal/modules/casos"`)
		assert.Contains(t, out, "site.New(siteDeps(deps))")
		assert.Contains(t, out, "casos.New(casosDeps(deps))")
	})

	t.Run("returned list", func(t *testing.T) {
		root := t.TempDir()
		writeFixture(t, root, modulesFile, returnFixture)

		require.NoError(t, RegisterModule(root, d))
		assert.Contains(t, readParsed(t, filepath.Join(root, modulesFile)), "casos.New(casosDeps(deps))")
	})

	t.Run("no list", func(t *testing.T) {
		root := t.TempDir()
		writeFixture(t, root, modulesFile, "package app\n\nfunc NewModules() {}\n")

		assert.ErrorIs(t, RegisterModule(root, d), ErrNoModuleList)
	})
}

func TestAddDependencies(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, dependenciesFile, depsFixture)
	d, err := NewData("casos")
	require.NoError(t, err)

	require.NoError(t, AddDependencies(root, d))

	out := readParsed(t, filepath.Join(root, dependenciesFile))
	assert.Contains(t, out, `"github.com/impacto/site/internal/modules/casos"`)
	assert.Contains(t, out, "func casosDeps(deps Dependencies) casos.Dependencies")
	assert.Contains(t, out, "Config: deps.Config")

	assert.ErrorIs(t, AddDependencies(root, d), ErrExists, "a second run must not duplicate the helper")
}
