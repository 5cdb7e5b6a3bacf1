// Package store persists the list of candidate directories shared by the
// picker and the management subcommands. The backing file holds one absolute
// path per line; insertion order is the tie-break order for ranking and is
// preserved across load/save cycles.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/atomicstack/tmux-fzy/internal/logging/events"
)

// ErrNotDirectory reports an add argument that exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// Store is the ordered, duplicate-free candidate list bound to a cache file.
type Store struct {
	path  string
	paths []string
}

// Load reads the cache file at path. A missing file yields an empty store;
// blank and duplicate lines are dropped, keeping the first occurrence.
func Load(path string) (*Store, error) {
	s := &Store{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			events.Store.Loaded(path, 0)
			return s, nil
		}
		return nil, fmt.Errorf("reading cache %s: %w", path, err)
	}
	seen := make(map[string]struct{})
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}
		s.paths = append(s.paths, line)
	}
	events.Store.Loaded(path, len(s.paths))
	return s, nil
}

// Paths returns a copy of the candidate list in insertion order.
func (s *Store) Paths() []string {
	out := make([]string, len(s.paths))
	copy(out, s.paths)
	return out
}

// Len reports the number of candidates.
func (s *Store) Len() int {
	return len(s.paths)
}

// Add resolves each argument, expands it into the directories found between
// minDepth and maxDepth (inclusive, 0/0 meaning the argument itself), and
// appends the results to the list, dropping anything already present. Every
// argument is validated before the list is touched, so a failing invocation
// adds nothing. The newly added paths are returned in list order.
func (s *Store) Add(args []string, minDepth, maxDepth int) ([]string, error) {
	if minDepth < 0 || maxDepth < minDepth {
		return nil, fmt.Errorf("invalid depth bounds %d..%d", minDepth, maxDepth)
	}
	roots := make([]string, 0, len(args))
	for _, arg := range args {
		root, err := resolveDir(arg)
		if err != nil {
			return nil, err
		}
		roots = append(roots, root)
	}

	seen := make(map[string]struct{}, len(s.paths))
	for _, p := range s.paths {
		seen[p] = struct{}{}
	}
	var added []string
	for _, root := range roots {
		for _, dir := range expand(root, minDepth, maxDepth) {
			if _, dup := seen[dir]; dup {
				continue
			}
			seen[dir] = struct{}{}
			s.paths = append(s.paths, dir)
			added = append(added, dir)
		}
	}
	events.Store.Added(added)
	return added, nil
}

// Remove drops each argument's resolved form from the list. Arguments that
// resolve to nothing in the list are ignored, so removal is idempotent. The
// paths actually removed are returned.
func (s *Store) Remove(args []string) []string {
	targets := make(map[string]struct{}, len(args))
	for _, arg := range args {
		if resolved, err := resolveDir(arg); err == nil {
			targets[resolved] = struct{}{}
			continue
		}
		// The directory may be gone from disk while its entry lingers in
		// the cache; fall back to lexical resolution so it can still be
		// dropped.
		if abs, err := filepath.Abs(arg); err == nil {
			targets[filepath.Clean(abs)] = struct{}{}
		}
	}

	var removed []string
	kept := s.paths[:0]
	for _, p := range s.paths {
		if _, hit := targets[p]; hit {
			removed = append(removed, p)
			continue
		}
		kept = append(kept, p)
	}
	s.paths = kept
	events.Store.Removed(removed)
	return removed
}

// Save writes the list back to the cache file, creating parent directories as
// needed. The write goes through a temp file in the same directory followed
// by a rename, so a crash never leaves a half-written cache.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating cache directory %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".paths-*")
	if err != nil {
		return fmt.Errorf("creating cache temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	var b strings.Builder
	for _, p := range s.paths {
		b.WriteString(p)
		b.WriteByte('\n')
	}
	if _, err := tmp.WriteString(b.String()); err != nil {
		tmp.Close()
		return fmt.Errorf("writing cache: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("writing cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing cache %s: %w", s.path, err)
	}
	events.Store.Saved(s.path, len(s.paths))
	return nil
}

// resolveDir turns an argument into the canonical absolute path of an
// existing directory.
func resolveDir(arg string) (string, error) {
	abs, err := filepath.Abs(arg)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", arg, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", arg, err)
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", arg, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s: %w", arg, ErrNotDirectory)
	}
	return resolved, nil
}

// expand walks root and collects the directories whose depth relative to it
// falls within [minDepth, maxDepth]. Unreadable subtrees are skipped rather
// than failing the whole walk.
func expand(root string, minDepth, maxDepth int) []string {
	var dirs []string
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		depth := 0
		if rel, err := filepath.Rel(root, path); err == nil && rel != "." {
			depth = strings.Count(rel, string(os.PathSeparator)) + 1
		}
		if depth >= minDepth && depth <= maxDepth {
			dirs = append(dirs, path)
		}
		if depth >= maxDepth {
			return fs.SkipDir
		}
		return nil
	})
	return dirs
}
