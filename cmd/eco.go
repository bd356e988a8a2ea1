package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fakeyudi/aura/internal/report"
)

var ecoCmd = &cobra.Command{
	Use:     "eco",
	Aliases: []string{"deps"},
	Short:   "Analyze project dependencies and ecosystem",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		printHeader(out, "🌍", "Aura Eco", "Dependency Ecosystem Analysis Started...", color.FgCyan)

		root, err := rootDir()
		if err != nil {
			return err
		}

		manifests := report.DiscoverManifests(root)
		if len(manifests) == 0 {
			fmt.Fprintln(out, "No dependency manifests found in this workspace.")
			return nil
		}

		for _, m := range manifests {
			fmt.Fprintf(out, "%s %s — %d dependencies\n",
				color.New(color.FgCyan, color.Bold).Sprintf("[%s]", m.Kind), m.Path, len(m.Deps))
			for _, d := range m.Deps {
				fmt.Fprintf(out, "   • %s\n", d)
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ecoCmd)
}
