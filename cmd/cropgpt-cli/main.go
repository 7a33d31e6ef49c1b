// Package main is the entry point for the cropgpt-cli application.
// It initializes the root command and registers the assistant, seed and
// data-pull sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/manavaditya8-pixel/cropGPT/cmd/cropgpt-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "cropgpt-cli",
		Short: "Agricultural assistant CLI tool",
		Long: `cropgpt-cli is a command-line companion for the CropGPT service.
Ask farming questions in English or Hindi against a local database, seed
government scheme reference data, and pull mandi prices and weather
observations from their upstream feeds.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitAskCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize ask commands: %w", err)
	}

	if err := commands.InitSeedCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize seed commands: %w", err)
	}

	if err := commands.InitDataCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize data commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
