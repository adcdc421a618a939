// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/polyrun/polyrun/internal/config"
	"github.com/polyrun/polyrun/internal/engine"
	"github.com/polyrun/polyrun/pkg/types"
)

var (
	// runEngineFlag selects the engine explicitly (--engine/-e)
	runEngineFlag string
	// runWorkdirFlag overrides the working directory (--workdir/-w)
	runWorkdirFlag string

	runCmd = &cobra.Command{
		Use:   "run [flags] <program>",
		Short: "Execute a script through the matching language engine",
		Long: `Execute a script through the matching language engine.

The engine is chosen from --engine when given, otherwise inferred from the
program's file extension, otherwise taken from default_engine in the config.
The working directory defaults to the current directory and is used as the
execution root and module search root for the script.

polyrun exits with the script's own exit status.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProgram(args[0], runEngineFlag, runWorkdirFlag)
		},
	}
)

func init() {
	runCmd.Flags().StringVarP(&runEngineFlag, "engine", "e", "", "engine to use (javascript, typescript, python, ruby, lua, java, go, csharp)")
	runCmd.Flags().StringVarP(&runWorkdirFlag, "workdir", "w", "", "working directory for the script (default: current directory)")
}

// runProgram configures one execution context and runs the program,
// converting a nonzero script status into an ExitError for Execute to
// propagate as the process exit code.
func runProgram(program, engineFlag, workdirFlag string) error {
	engineType, err := selectEngine(engineFlag, program, config.Get().DefaultEngine)
	if err != nil {
		return err
	}

	workdir := workdirFlag
	if workdir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine working directory: %w", err)
		}
		workdir = wd
	}

	ctx := engine.NewContext(engineType)
	ctx.SetProgram(program)
	ctx.SetWorkdir(workdir)

	if code := ctx.Execute(); !code.IsSuccess() {
		return &ExitError{Code: code}
	}
	return nil
}

// selectEngine picks the engine type with precedence: explicit flag, program
// file extension, configured default.
func selectEngine(flagValue, program, configuredDefault string) (types.EngineType, error) {
	if flagValue != "" {
		return types.ParseEngineType(flagValue)
	}
	if engineType, ok := types.EngineTypeForExtension(filepath.Ext(program)); ok {
		return engineType, nil
	}
	if configuredDefault != "" {
		return types.ParseEngineType(configuredDefault)
	}
	return "", fmt.Errorf("cannot determine an engine for %q: pass --engine or set default_engine in the config", program)
}
