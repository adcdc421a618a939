// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/polyrun/polyrun/internal/engine"
	"github.com/polyrun/polyrun/internal/rootpath"
	"github.com/polyrun/polyrun/pkg/types"
)

var enginesCmd = &cobra.Command{
	Use:   "engines",
	Short: "List supported engines and their availability",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, TitleStyle.Render("Engines"))
		for _, engineType := range types.AllEngineTypes() {
			marker := SuccessStyle.Render("✓")
			if !engineAvailable(engineType) {
				marker = ErrorStyle.Render("✗")
			}
			fmt.Fprintf(out, "  %s %s\n", marker, ValueStyle.Render(engineType.String()))
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, SubtitleStyle.Render("runtime root: ")+rootpath.Root())
		return nil
	},
}

// engineAvailable reports whether an engine's runtime can be located on this
// system. Module runtime engines depend on the node binary; adapter engines
// answer for themselves.
func engineAvailable(engineType types.EngineType) bool {
	if engineType.IsModuleRuntime() {
		return engine.ModuleRuntimeAvailable()
	}

	factory, err := engine.DefaultRegistry().Get(engineType)
	if err != nil {
		return false
	}
	return factory(".").Available()
}
