package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aeojs/aeo"
	"github.com/stretchr/testify/require"
)

// writeFiles creates files below root from a map of slash-separated paths
// to contents.
func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0644))
	}
}

func pathnames(pages []*aeo.Page) []string {
	out := make([]string, len(pages))
	for i, p := range pages {
		out[i] = p.Pathname
	}
	return out
}
