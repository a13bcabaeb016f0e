package cmd

import (
	"os"

	"github.com/habedi/gols/pkg/clierr"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Execute runs the root command and exits with the code of its outcome.
func Execute() {
	os.Exit(run(createRootCmd()))
}

// run executes rootCmd and maps its error to an exit code.
// The error is printed with its structural rendering.
func run(rootCmd *cobra.Command) int {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Command execution failed.")
		rootCmd.PrintErrln("Error:", err)
		return clierr.ExitCode(err)
	}
	return clierr.ExitOK
}

func createRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gols",
		Short:         "List and hash the files in a directory",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(
		listCmd(),
		hashCmd(),
		versionCmd(),
	)

	rootCmd.PersistentFlags().BoolP("help", "h", false, "Show help for a command")
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.SetHelpCommand(&cobra.Command{
		Use:    "no-help",
		Hidden: true,
	})

	return rootCmd
}
