package cmd

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"

	"github.com/habedi/gols/pkg/clierr"
	"github.com/habedi/gols/pkg/hasher"
	"github.com/habedi/gols/pkg/operations"
	"github.com/habedi/gols/pkg/validation"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// hashCmd generates hash values for the files in a directory.
func hashCmd() *cobra.Command {
	var saveToFileFlag bool
	var cleanFlag bool
	var algo string
	var recursiveFlag bool
	var numThreads int

	cmd := &cobra.Command{
		Use:   "hash [fileDir]",
		Short: "Generate hash values for the files in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			if err := validation.ValidateNonEmptyString("directory", dir); err != nil {
				return err
			}
			if !hasher.IsValidHashAlgo(algo) {
				return clierr.Customf("unsupported hash algorithm: %s", algo)
			}
			if err := validation.ValidateThreadCount(numThreads); err != nil {
				return err
			}

			return generateHashFiles(cmd, dir, strings.ToLower(algo), recursiveFlag, saveToFileFlag, cleanFlag, numThreads)
		},
	}

	cmd.Flags().StringVarP(&algo, "algo", "a", "sha256", "Hash algorithm to use [md5, sha1, sha256, sha512]")
	cmd.Flags().BoolVarP(&recursiveFlag, "recursive", "r", true, "Process files in subdirectories? [true, false]")
	cmd.Flags().BoolVarP(&saveToFileFlag, "save", "s", false, "Save hash to files? [true, false]")
	cmd.Flags().BoolVarP(&cleanFlag, "clean", "c", false, "Remove old hash files before generating new ones? [true, false]")
	cmd.Flags().IntVarP(&numThreads, "threads", "t", defaultThreads(), "Number of worker threads to use for hashing")

	return cmd
}

func defaultThreads() int {
	n := runtime.NumCPU() - 2
	if n < 2 {
		n = 2
	}
	return min(n, validation.MaxThreads)
}

// generateHashFiles hashes every file found under dir, prints or saves the
// hashes and returns the first failure.
func generateHashFiles(cmd *cobra.Command, dir, algo string, recursive, saveToFile, clean bool, numThreads int) error {
	if clean {
		log.Info().Msgf("Cleaning old hash files from %s", dir)
		if err := operations.CleanHashes(dir, recursive); err != nil {
			return err
		}
	}

	files, err := operations.FindFilesToHash(dir, recursive, operations.DefaultHashExclusions)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return clierr.FromString(operations.NoFilesMessage)
	}

	bar := newProgressBar(len(files), "Hashing files...")
	results := make([]operations.HashResult, 0, len(files))
	for r := range operations.GenerateHashes(cmd.Context(), files, algo, numThreads) {
		results = append(results, r)
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	sort.Slice(results, func(i, j int) bool { return results[i].File < results[j].File })

	out := cmd.OutOrStdout()
	var firstErr error
	var hashFiles []string
	for _, r := range results {
		hash, err := r.Get()
		if err == nil && saveToFile {
			hashFilePath := r.File + "." + algo
			if werr := os.WriteFile(hashFilePath, []byte(hash), 0644); werr != nil {
				err = clierr.FromIo(werr)
			} else {
				hashFiles = append(hashFiles, hashFilePath)
			}
		}
		if err != nil {
			log.Error().Err(err).Str("file", r.File).Msg("Failed to hash file.")
			cmd.PrintErrf("%s: %v\n", r.File, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if !saveToFile {
			fmt.Fprintf(out, "%s hash for \"%s\": %s\n", algo, r.File, hash)
		}
	}

	if len(hashFiles) > 0 {
		fmt.Fprintln(out, "Generated hash files:")
		for _, file := range hashFiles {
			fmt.Fprintln(out, file)
		}
	}

	log.Info().Int("files", len(results)).Str("algo", algo).Msg("Hashing finished.")
	return firstErr
}
