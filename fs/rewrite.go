package fs

import (
	"context"
	"os"
	"path/filepath"
)

// RewriteHTML applies fn to every page HTML file below dir, using the same
// skip rules as BuildScanner, and writes back files whose content changed.
// It returns the number of files rewritten.
func RewriteHTML(ctx context.Context, dir string, fn func(html string) string) (int, error) {
	s := &BuildScanner{Dir: dir}
	files, err := s.htmlFiles()
	if err != nil {
		return 0, err
	}

	var n int
	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		full := filepath.Join(dir, filepath.FromSlash(rel))
		info, err := os.Stat(full)
		if err != nil {
			return n, err
		}
		data, err := os.ReadFile(full)
		if err != nil {
			return n, err
		}
		out := fn(string(data))
		if out == string(data) {
			continue
		}
		if err := os.WriteFile(full, []byte(out), info.Mode().Perm()); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
