package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/habedi/gols/pkg/operations"
	"github.com/habedi/gols/pkg/validation"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var listFormats = []string{"plain", "table", "debug"}

// listCmd lists the regular files of one or more directories.
func listCmd() *cobra.Command {
	var recursiveFlag bool
	var exclusions []string
	var format string
	var numThreads int

	cmd := &cobra.Command{
		Use:   "list [dir...]",
		Short: "List the regular files in one or more directories",
		Long:  "List the regular files in the given directories (the current directory by default). Symlinks and directories are not listed.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validation.ValidateFormat(format, listFormats); err != nil {
				return err
			}
			if err := validation.ValidateThreadCount(numThreads); err != nil {
				return err
			}
			if err := validation.ValidatePatterns(exclusions); err != nil {
				return err
			}

			dirs := args
			if len(dirs) == 0 {
				dirs = []string{"."}
			}
			opts := operations.ListOptions{Recursive: recursiveFlag, Exclusions: exclusions}
			return listDirs(cmd, dirs, opts, format, numThreads)
		},
	}

	cmd.Flags().BoolVarP(&recursiveFlag, "recursive", "r", false, "List files in subdirectories too? [true, false]")
	cmd.Flags().StringSliceVarP(&exclusions, "exclude", "e", nil, "Glob pattern of file names to leave out (repeatable)")
	cmd.Flags().StringVarP(&format, "format", "f", "plain", "Output format [plain, table, debug]")
	cmd.Flags().IntVarP(&numThreads, "threads", "t", 4, "Number of directories listed concurrently")

	return cmd
}

// listDirs prints the listing of every directory and returns the first failure.
func listDirs(cmd *cobra.Command, dirs []string, opts operations.ListOptions, format string, numThreads int) error {
	log.Info().Strs("dirs", dirs).Msg("Listing files...")

	listings := operations.ListDirs(cmd.Context(), dirs, opts, numThreads)
	multi := len(listings) > 1
	out := cmd.OutOrStdout()

	var firstErr error
	for i, l := range listings {
		files, err := l.Result.Get()
		if err != nil {
			log.Error().Err(err).Str("dir", l.Dir).Msg("Failed to list directory.")
			if firstErr == nil {
				firstErr = err
			}
			if multi {
				cmd.PrintErrf("%s: %v\n", l.Dir, err)
			}
			continue
		}

		if multi {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%s:\n", l.Dir)
		}
		writeFiles(out, files, format)
	}

	return firstErr
}

func writeFiles(w io.Writer, files []string, format string) {
	switch format {
	case "table":
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Row ID", "File Name"})

		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAutoWrapText(false)
		table.SetRowLine(false)

		for i, file := range files {
			table.Append([]string{strconv.Itoa(i + 1), file})
		}
		table.Render()
	case "debug":
		fmt.Fprintf(w, "%#v\n", files)
	default:
		for _, file := range files {
			fmt.Fprintln(w, file)
		}
	}
}
