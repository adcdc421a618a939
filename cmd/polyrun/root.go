// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/polyrun/polyrun/internal/config"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug logging
	verbose bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "polyrun",
		Short: "A polyglot script runner",
		Long: TitleStyle.Render("polyrun") + SubtitleStyle.Render(" - A polyglot script runner") + `

polyrun executes scripts written in JavaScript, TypeScript, Python, Ruby,
Lua, Java, Go, or C# through one uniform lifecycle: the engine matching the
script's language runs it in a chosen working directory and its exit status
becomes polyrun's own.

JavaScript and TypeScript run through the embedded Node.js module runtime;
the other languages run through their interpreters as configured (see
'polyrun config show').

` + SubtitleStyle.Render("Examples:") + `
  polyrun run hello.py                 Run a Python script from its extension
  polyrun run -e ts -w ./app main.ts   Run TypeScript with an explicit workdir
  polyrun engines                      List engines and their availability`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(enginesCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code.Int())
		}
		os.Exit(1)
	}
}

// initRootConfig loads configuration and applies logging settings.
func initRootConfig() {
	cfg := config.Get()

	if verbose || cfg.UI.Verbose {
		log.SetLevel(log.DebugLevel)
	}
}
