package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fakeyudi/aura/internal/report"
	"github.com/fakeyudi/aura/internal/workspace"
)

var flyCmd = &cobra.Command{
	Use:     "fly",
	Aliases: []string{"perf"},
	Short:   "Run performance and bloat analysis",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		printHeader(out, "🚀", "Aura Fly", "Performance Analysis Started...", color.FgMagenta)

		root, err := rootDir()
		if err != nil {
			return err
		}

		files, err := workspace.ScanTree(root, GetConfig().ExcludeDirs)
		if err != nil {
			return err
		}
		audit := report.AuditBloat(files)

		gradeColor := color.FgGreen
		if audit.Grade >= "C" {
			gradeColor = color.FgYellow
		}
		if audit.Grade >= "D" {
			gradeColor = color.FgRed
		}

		fmt.Fprintf(out, "Files:       %d\n", audit.Files)
		fmt.Fprintf(out, "Total size:  %s\n", report.HumanBytes(audit.TotalBytes))
		fmt.Fprintf(out, "Large files: %s\n", report.HumanBytes(audit.LargeBytes))
		fmt.Fprintf(out, "Grade:       %s\n\n", color.New(gradeColor, color.Bold).Sprint(audit.Grade))

		if len(audit.Largest) > 0 {
			fmt.Fprintln(out, "Largest files:")
			for _, f := range audit.Largest {
				fmt.Fprintf(out, "   %9s  %s\n", report.HumanBytes(f.Size), f.Path)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(flyCmd)
}
