package contract

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LocalSourceEnumerator walks a directory tree on the local filesystem and
// collects Rust source files for analysis.
type LocalSourceEnumerator struct{}

// NewLocalSourceEnumerator creates a filesystem-backed source enumerator.
func NewLocalSourceEnumerator() *LocalSourceEnumerator {
	return &LocalSourceEnumerator{}
}

// Enumerate walks root and returns the readable .rs files that pass the
// allow-list and exclude filters, plus the count of files skipped because
// they could not be read. Paths in the result are relative to root with
// forward slashes, so output and file rankings are stable across platforms.
func (e *LocalSourceEnumerator) Enumerate(ctx context.Context, root string, allowList, excludes []string) ([]SourceFile, int, error) {
	var files []SourceFile
	skipped := 0

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			// Unreadable directory entries are skipped, not fatal.
			if d != nil && d.IsDir() {
				skipped++
				return filepath.SkipDir
			}
			skipped++
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel != "." && ShouldIgnore(rel+"/", excludes) {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(d.Name(), ".rs") {
			return nil
		}
		if ShouldIgnore(rel, excludes) {
			return nil
		}
		if !MatchesAllowList(rel, allowList) {
			return nil
		}

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			LogWarn("skipping unreadable file "+rel, readErr)
			skipped++
			return nil
		}

		files = append(files, SourceFile{Path: rel, Text: string(data)})
		return nil
	})
	if err != nil {
		return nil, skipped, err
	}

	return files, skipped, nil
}
