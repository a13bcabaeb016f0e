package main

import (
	"os"
	"os/signal"
	"strings"

	"github.com/habedi/gols/cmd"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const debugEnvVar = "DEBUG_GOLS"

// main is the entry point of the application.
// It sets up logging based on the DEBUG_GOLS environment variable,
// starts a goroutine to listen for interrupt signals, and executes the main command.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	configureLogLevelFromEnv()

	stopChan := setupInterruptListener()
	go handleInterrupt(stopChan, func(msg string) { log.Error().Msg(msg) }, os.Exit)

	// Program entry point
	cmd.Execute()
}

// configureLogLevelFromEnv enables debug logging when DEBUG_GOLS is set to
// anything but "", "0" or "false", and disables logging otherwise.
func configureLogLevelFromEnv() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(debugEnvVar))) {
	case "", "0", "false":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	default:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

func setupInterruptListener() chan os.Signal {
	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt)
	return stopChan
}

// handleInterrupt waits for a signal, logs it and exits with code 1.
func handleInterrupt(stopChan chan os.Signal, logMsg func(string), exit func(int)) {
	<-stopChan
	logMsg("Interrupt signal received. Exiting...")
	exit(1)
}
