package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fakeyudi/aura/internal/advice"
	"github.com/fakeyudi/aura/internal/secrets"
	"github.com/fakeyudi/aura/internal/ui"
)

var checkNoAI bool

// remediationPrompt is what we ask the advice service when a leak is found.
const remediationPrompt = "How do I remove a leaked secret from git history safely?"

var checkCmd = &cobra.Command{
	Use:     "check",
	Aliases: []string{"sec"},
	Short:   "Run security vulnerability checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		printHeader(out, "🛡 ", "Aura Security", "Security Scan Started...", color.FgRed)

		root, err := rootDir()
		if err != nil {
			return err
		}

		report, err := secrets.ScanTree(cmd.Context(), root, GetConfig().ExcludeDirs)
		if err != nil {
			return err
		}

		if len(report.Findings) > 0 {
			warn := color.New(color.FgRed, color.Bold)
			fmt.Fprintf(out, "⚠  %s\n", warn.Sprintf("Found %d potential secret(s):", len(report.Findings)))
			for _, f := range report.Findings {
				fmt.Fprintf(out, "   • %s: %s (%s)\n", f.Path, f.Kind, secrets.Mask(f.Match))
			}

			if !checkNoAI {
				fmt.Fprintf(out, "\nAsking the advice service for remediation guidance...\n\n")
				gw := advice.NewGateway(newAdvisor(GetConfig()))
				ctx, cancel := context.WithCancel(cmd.Context())
				defer cancel()

				res := gw.Request(ctx, remediationPrompt)
				switch res.Outcome {
				case advice.OutcomeOK:
					fmt.Fprintln(out, ui.AdviceBox(res.Text, 80))
				case advice.OutcomeTimedOut:
					fmt.Fprintln(out, ui.Notice("advice service took too long to respond — try again later"))
				default:
					fmt.Fprintln(out, ui.Notice(fmt.Sprintf("remediation guidance unavailable: %v", res.Err)))
				}
			}
		}

		if len(report.EnvIssues) > 0 {
			warn := color.New(color.FgRed, color.Bold)
			fmt.Fprintf(out, "\n⚠  %s\n", warn.Sprintf("Found %d env file(s) with loose permissions:", len(report.EnvIssues)))
			for _, e := range report.EnvIssues {
				fmt.Fprintf(out, "   • %s: %04o (should be 0600)\n", e.Path, e.Mode)
			}
		}

		if report.Clean() {
			fmt.Fprintln(out, color.New(color.FgGreen, color.Bold).Sprint("✓ No security issues detected!"))
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkNoAI, "no-ai", false, "skip AI remediation guidance")
	rootCmd.AddCommand(checkCmd)
}
