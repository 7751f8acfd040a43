package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFixtures loads every testdata/*.sgml file and checks it parses
// successfully (round-tripping through Display) unless its name is
// prefixed bad_, in which case it must fail, the way sqltest/fixture.go
// drove one DB fixture through many named test inputs.
func TestFixtures(t *testing.T) {
	paths, err := filepath.Glob("testdata/*.sgml")
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		path := path
		name := filepath.Base(path)
		t.Run(name, func(t *testing.T) {
			raw, err := os.ReadFile(path)
			require.NoError(t, err)
			source := string(raw)

			builder := NewBuilder()
			if strings.Contains(name, "ignore") {
				builder = builder.MarkedSectionHandling(ExpandAll)
			}

			f, err := builder.Parse(source)
			if strings.HasPrefix(name, "bad_") {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Greater(t, f.Len(), 0)

			if _, err := builder.Parse(f.Display()); err != nil {
				t.Errorf("re-parsing Display() output failed: %s", err)
			}
		})
	}
}
