// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/polyrun/polyrun/internal/config"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Inspect polyrun configuration",
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cfg := config.Get()

			fmt.Fprintln(out, TitleStyle.Render("Configuration"))
			if dir, err := config.ConfigDir(); err == nil {
				fmt.Fprintln(out, SubtitleStyle.Render("config dir:     ")+dir)
			}

			defaultEngine := cfg.DefaultEngine
			if defaultEngine == "" {
				defaultEngine = "(none)"
			}
			fmt.Fprintln(out, SubtitleStyle.Render("default engine: ")+ValueStyle.Render(defaultEngine))
			fmt.Fprintln(out, SubtitleStyle.Render("node binary:    ")+ValueStyle.Render(cfg.Node.Binary))

			fmt.Fprintln(out)
			fmt.Fprintln(out, TitleStyle.Render("Interpreter commands"))
			names := make([]string, 0, len(cfg.Engines))
			for name := range cfg.Engines {
				names = append(names, name)
			}
			slices.Sort(names)
			for _, name := range names {
				binary, extra := cfg.EngineCommand(name)
				command := binary
				if len(extra) > 0 {
					command += " " + strings.Join(extra, " ")
				}
				fmt.Fprintf(out, "  %-8s %s\n", name, ValueStyle.Render(command))
			}
			return nil
		},
	}
)

func init() {
	configCmd.AddCommand(configShowCmd)
}
