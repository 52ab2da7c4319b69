// Package fs discovers pages from the local file system and stores
// generated artifacts.
package fs

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/aeojs/aeo"
	"github.com/gofrs/flock"
)

// Ensure ArtifactStore implements aeo.ArtifactStore at compile time.
var _ aeo.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore implements aeo.ArtifactStore with staged update semantics.
// Artifacts are saved to a sibling staging directory, then moved into the
// output directory on Commit. The output directory usually holds the site
// build, so it is never replaced wholesale; only artifact files are moved.
//
// The first Save takes an exclusive file lock next to the output directory,
// held until Commit or Abort, so concurrent runs cannot interleave artifacts.
type ArtifactStore struct {
	outDir string

	mu   sync.Mutex
	lock *flock.Flock
}

// NewArtifactStore creates a new ArtifactStore writing into outDir.
// Files are staged in outDir.aeo.tmp until Commit.
func NewArtifactStore(outDir string) *ArtifactStore {
	return &ArtifactStore{outDir: filepath.Clean(outDir)}
}

func (s *ArtifactStore) stagingDir() string {
	return s.outDir + ".aeo.tmp"
}

func (s *ArtifactStore) lockPath() string {
	return s.outDir + ".aeo.lock"
}

// acquire takes the output directory lock unless this store already holds it.
func (s *ArtifactStore) acquire() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lock != nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.outDir), 0755); err != nil {
		return err
	}

	l := flock.New(s.lockPath())
	locked, err := l.TryLock()
	if err != nil {
		return fmt.Errorf("cannot lock output directory: %w", err)
	}
	if !locked {
		return aeo.Errorf(aeo.EINVALID, "another process is writing artifacts to %s", s.outDir)
	}
	s.lock = l
	return nil
}

func (s *ArtifactStore) release() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lock == nil {
		return nil
	}
	err := s.lock.Unlock()
	_ = os.Remove(s.lockPath())
	s.lock = nil
	return err
}

func (s *ArtifactStore) Save(ctx context.Context, artifact *aeo.Artifact) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := artifact.Validate(); err != nil {
		return err
	}
	if err := s.acquire(); err != nil {
		return err
	}

	fullPath := filepath.Join(s.stagingDir(), filepath.FromSlash(artifact.Path))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, artifact.Content, 0644)
}

func (s *ArtifactStore) Commit() (err error) {
	defer func() {
		if rerr := s.release(); err == nil {
			err = rerr
		}
	}()

	staging := s.stagingDir()
	if _, err := os.Stat(staging); os.IsNotExist(err) {
		return nil
	}

	err = filepath.WalkDir(staging, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(staging, path)
		if err != nil {
			return err
		}
		target := filepath.Join(s.outDir, rel)
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return err
		}
		return os.Rename(path, target)
	})
	if err != nil {
		return err
	}

	return os.RemoveAll(staging)
}

func (s *ArtifactStore) Abort() error {
	err := os.RemoveAll(s.stagingDir())
	if rerr := s.release(); err == nil {
		err = rerr
	}
	return err
}
