package main

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const modulePath = "github.com/iburimskiy/lissajous-table"

// desktopOnly are imports that need a display or a sound device to build.
var desktopOnly = []string{
	"github.com/hajimehoshi/ebiten",
	"github.com/ncruces/zenity",
	"github.com/faiface/beep",
	modulePath + "/internal/audio",
	modulePath + "/internal/game/desktop",
}

// moduleImports records in seen every non-test import reachable from dir,
// following imports that point back into this module.
func moduleImports(t *testing.T, root, dir string, seen map[string]bool) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	fset := token.NewFileSet()
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ImportsOnly)
		require.NoError(t, err)
		for _, imp := range f.Imports {
			path, err := strconv.Unquote(imp.Path.Value)
			require.NoError(t, err)
			if seen[path] {
				continue
			}
			seen[path] = true
			if rel, ok := strings.CutPrefix(path, modulePath+"/"); ok {
				moduleImports(t, root, filepath.Join(root, filepath.FromSlash(rel)), seen)
			}
		}
	}
}

func TestTermAvoidsDesktopStack(t *testing.T) {
	seen := map[string]bool{}
	moduleImports(t, filepath.Join("..", ".."), ".", seen)

	require.Contains(t, seen, modulePath+"/internal/game")
	require.Contains(t, seen, "github.com/gdamore/tcell/v2")
	for path := range seen {
		for _, banned := range desktopOnly {
			require.False(t, strings.HasPrefix(path, banned), "terminal build imports %s", path)
		}
	}
}
