package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fakeyudi/aura/internal/report"
)

var (
	storyWindowHours int
	storyOutput      string
)

var storyCmd = &cobra.Command{
	Use:     "story",
	Aliases: []string{"journal", "doc"},
	Short:   "Generate a dev-journal entry from recent activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		printHeader(out, "📖", "Aura Story", "Code Story Generation Started...", color.FgBlue)

		root, err := rootDir()
		if err != nil {
			return err
		}

		hours := storyWindowHours
		if hours < 1 {
			cmd.PrintErrf("warning: --window %d below range, using 1\n", hours)
			hours = 1
		}

		author := ""
		if p := GetProfile(); p != nil {
			author = p.Name
		}

		entry, err := report.BuildJournal(root, GetConfig().ExcludeDirs,
			time.Duration(hours)*time.Hour, author, nil, time.Now())
		if err != nil {
			return err
		}

		if storyOutput != "" {
			if err := os.WriteFile(storyOutput, []byte(entry), 0o644); err != nil {
				return fmt.Errorf("writing journal: %w", err)
			}
			fmt.Fprintf(out, "Journal written to %s\n", storyOutput)
			return nil
		}
		fmt.Fprint(out, entry)
		return nil
	},
}

func init() {
	storyCmd.Flags().IntVarP(&storyWindowHours, "window", "w", 24, "activity window in hours")
	storyCmd.Flags().StringVarP(&storyOutput, "output", "o", "", "write the journal to a file instead of stdout")
	rootCmd.AddCommand(storyCmd)
}
