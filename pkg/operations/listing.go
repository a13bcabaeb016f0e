package operations

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/habedi/gols/pkg/clierr"
	"github.com/habedi/gols/pkg/fsys"
	"github.com/habedi/gols/pkg/pool"
	"github.com/rs/zerolog/log"
)

// NoFilesMessage is the Custom message ListFiles returns for a directory
// without any listable file.
const NoFilesMessage = "No files found"

// ListOptions controls which files ListFiles reports.
type ListOptions struct {
	Recursive  bool     // descend into subdirectories; names become slash-separated relative paths
	Exclusions []string // glob patterns matched against the base name
}

// Listing is the outcome of listing one directory.
type Listing struct {
	Dir    string
	Result clierr.Result[[]string]
}

// ListFiles returns the names of the regular files in dir, sorted by name.
// A symlinked dir is resolved, but symlinks inside it are not followed and
// names that are not valid UTF-8 are skipped.
// Every returned error is a *clierr.Error: Fs when dir is missing, forbidden
// or not a directory, Io when reading fails, and Custom when nothing is left
// to report.
func ListFiles(dir string, opts ListOptions) ([]string, error) {
	if err := fsys.CheckDir("list", dir); err != nil {
		return nil, clierr.From(err)
	}

	var files []string
	var err error
	if opts.Recursive {
		files, err = walkFiles(dir, opts.Exclusions)
	} else {
		files, err = readFiles(dir, opts.Exclusions)
	}
	if err != nil {
		return nil, clierr.From(err)
	}

	if len(files) == 0 {
		return nil, clierr.FromString(NoFilesMessage)
	}

	log.Debug().Str("dir", dir).Int("files", len(files)).Msg("Listed directory")
	return files, nil
}

// ListDirs lists several directories concurrently. The listings come back
// in the order of dirs.
func ListDirs(ctx context.Context, dirs []string, opts ListOptions, numWorkers int) []Listing {
	results := pool.Run(ctx, dirs, numWorkers, func(_ context.Context, dir string) ([]string, error) {
		return ListFiles(dir, opts)
	})

	listings := make([]Listing, len(dirs))
	for i, dir := range dirs {
		listings[i] = Listing{Dir: dir, Result: results[i]}
	}
	return listings
}

func readFiles(dir string, exclusions []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !keep(entry.Name(), exclusions) {
			continue
		}
		files = append(files, entry.Name())
	}
	return files, nil
}

func walkFiles(dir string, exclusions []string) ([]string, error) {
	root, err := walkRoot(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() || !keep(d.Name(), exclusions) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if !utf8.ValidString(rel) {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	return files, err
}

// walkRoot resolves a symlinked dir, which filepath.WalkDir would not enter.
func walkRoot(dir string) (string, error) {
	return filepath.EvalSymlinks(dir)
}

func keep(name string, exclusions []string) bool {
	return utf8.ValidString(name) && !excluded(name, exclusions)
}

func excluded(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
