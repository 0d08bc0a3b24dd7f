package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgsh-tools/dgshdetect"
)

var (
	// Global flags
	verbose bool
	quiet   bool
)

// Exit codes forming the command's contract.
const (
	exitCompatible    = 0
	exitUsage         = 1
	exitNotCompatible = 2
)

var exitCode = exitCompatible

var rootCmd = &cobra.Command{
	Use:   "dgsh-compat <program>",
	Short: "Check whether a program is dgsh compatible",
	Long: `dgsh-compat inspects a program on disk and reports whether it was built
to participate in dgsh pipelines. The program is never run: compiled tools
are recognized by their ELF identification note, scripts by a marker on
their first two lines.

Exit status:
  0  the program is dgsh compatible
  2  the program is not compatible or could not be read
  1  usage error`,
	Version:       "0.1.0",
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		exitCode = runDetect(args[0])
		return nil
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
}

func runDetect(path string) int {
	printVerbose("Inspecting: %s\n", path)

	ok, err := dgshdetect.Classify(path)
	if err != nil {
		printError("%v\n", err)
		return exitNotCompatible
	}
	if !ok {
		printVerbose("%s is not dgsh compatible\n", path)
		return exitNotCompatible
	}
	printVerbose("%s is dgsh compatible\n", path)
	return exitCompatible
}

func execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}
	return exitCode
}

// Helper functions for output

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
