package operations

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/habedi/gols/pkg/clierr"
	"github.com/habedi/gols/pkg/fsys"
	"github.com/habedi/gols/pkg/hasher"
	"github.com/rs/zerolog/log"
)

// HashResult represents the result of a single file hashing operation.
type HashResult struct {
	File string
	clierr.Result[string]
}

// DefaultHashExclusions is the list of patterns to exclude from hashing.
var DefaultHashExclusions = []string{
	".git", ".gitignore", ".DS_Store", "Thumbs.db", "desktop.ini",
	"*.json", "*.xml", "*.csv", "*.log", "*.txt", "*.md", "*.html", "*.htm",
	"*.md5", "*.sha1", "*.sha256", "*.sha512", "*.cksum", "*.sum", "*.sig", "*.asc", "*.gpg",
}

// FindFilesToHash walks a directory and returns the regular files to be processed.
func FindFilesToHash(dir string, recursive bool, exclusions []string) ([]string, error) {
	if err := fsys.CheckDir("hash", dir); err != nil {
		return nil, clierr.From(err)
	}

	root, err := walkRoot(dir)
	if err != nil {
		return nil, clierr.From(err)
	}

	// Paths are reported under dir even when it is a symlink.
	var filesToProcess []string
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if excluded(d.Name(), exclusions) && path != root {
				return filepath.SkipDir
			}
			if !recursive && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || excluded(d.Name(), exclusions) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		filesToProcess = append(filesToProcess, filepath.Join(dir, rel))
		return nil
	})
	if walkErr != nil {
		return filesToProcess, clierr.From(walkErr)
	}
	return filesToProcess, nil
}

// GenerateHashes concurrently generates hashes for a list of files.
// Every file gets exactly one result; files skipped after ctx is done carry
// a Custom error with the context error text. The channel is closed once
// all results are sent.
func GenerateHashes(ctx context.Context, files []string, algo string, numThreads int) <-chan HashResult {
	if numThreads < 1 {
		numThreads = 1
	}

	tasks := make(chan string, len(files))
	results := make(chan HashResult, len(files))

	var wg sync.WaitGroup

	for i := 0; i < numThreads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for filePath := range tasks {
				if ctx.Err() != nil {
					results <- HashResult{File: filePath, Result: clierr.Fail[string](clierr.FromString(ctx.Err().Error()))}
					continue
				}

				hash, err := hasher.GenerateHash(filePath, algo)
				if err != nil {
					results <- HashResult{File: filePath, Result: clierr.Fail[string](clierr.From(err))}
					continue
				}
				results <- HashResult{File: filePath, Result: clierr.Ok(hash)}
			}
		}()
	}

	for _, f := range files {
		tasks <- f
	}
	close(tasks)

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// CleanHashes walks a directory and removes files with extensions matching known hash algorithms.
func CleanHashes(dir string, recursive bool) error {
	if err := fsys.CheckDir("clean", dir); err != nil {
		return clierr.From(err)
	}

	root, err := walkRoot(dir)
	if err != nil {
		return clierr.From(err)
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if !recursive && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		for _, algo := range hasher.HashAlgorithms {
			if strings.HasSuffix(d.Name(), "."+algo) {
				if err := os.Remove(path); err != nil {
					log.Warn().Err(err).Str("path", path).Msg("Failed to remove old hash file")
				}
				break
			}
		}
		return nil
	})
	if err != nil {
		return clierr.From(err)
	}
	return nil
}
