package fileutil

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"
)

// ErrNotDirectory is returned when a directory operation gets a file path.
var ErrNotDirectory = errors.New("not a directory")

// WriteResult reports what WriteIfChanged did.
type WriteResult int

const (
	Written WriteResult = iota
	Unchanged
)

// String returns "written" or "unchanged".
func (r WriteResult) String() string {
	if r == Unchanged {
		return "unchanged"
	}
	return "written"
}

// Digest returns the hex BLAKE3 sum of data.
func Digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// fileDigest hashes the file at path without loading it whole.
func fileDigest(path string) (string, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from the output tree
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := blake3.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// WriteIfChanged writes data to path, creating parent directories, unless the
// file already holds the same bytes. Unchanged files keep their mtime.
func WriteIfChanged(path string, data []byte) (WriteResult, error) {
	if FileExists(path) {
		existing, err := fileDigest(path)
		if err == nil && existing == Digest(data) {
			return Unchanged, nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return Written, fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 -- site output is world-readable
		return Written, fmt.Errorf("writing %s: %w", path, err)
	}
	return Written, nil
}

// CopyStats summarizes a CopyDir run.
type CopyStats struct {
	Files     int
	Unchanged int
	Bytes     int64
	Copied    []string // paths relative to dst
}

// CopyDir copies every regular file under src into dst, keeping relative
// paths. Identical files are left untouched. Symlinks are skipped. Files
// already in dst are kept; use Prune to drop the ones nothing produced.
func CopyDir(src, dst string) (CopyStats, error) {
	var stats CopyStats

	info, err := os.Stat(src)
	if err != nil {
		return stats, fmt.Errorf("reading %s: %w", src, err)
	}
	if !info.IsDir() {
		return stats, fmt.Errorf("%w: %s", ErrNotDirectory, src)
	}

	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path) // #nosec G304 -- walking a user-chosen static dir
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		res, err := WriteIfChanged(filepath.Join(dst, rel), data)
		if err != nil {
			return err
		}
		stats.Copied = append(stats.Copied, rel)
		stats.Files++
		stats.Bytes += int64(len(data))
		if res == Unchanged {
			stats.Unchanged++
		}
		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	return stats, nil
}

// Prune deletes files under dir whose path relative to dir is not in keep,
// and returns how many were removed. A missing dir is not an error.
func Prune(dir string, keep map[string]bool) (int, error) {
	if !DirExists(dir) {
		return 0, nil
	}

	var stale []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if !keep[rel] {
			stale = append(stale, path)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	for i, path := range stale {
		if err := os.Remove(path); err != nil {
			return i, fmt.Errorf("pruning %s: %w", dir, err)
		}
	}
	return len(stale), nil
}
