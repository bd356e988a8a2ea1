package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/fakeyudi/aura/internal/advice"
	"github.com/fakeyudi/aura/internal/config"
	"github.com/fakeyudi/aura/internal/pulse"
	"github.com/fakeyudi/aura/internal/termidle"
	"github.com/fakeyudi/aura/internal/ui"
	"github.com/fakeyudi/aura/internal/workspace"
)

const (
	defaultWindowHours = 6
	minWindowHours     = 1
	maxWindowHours     = 24
	defaultIdleMinutes = 15
)

var (
	pulseWindowHours   int
	pulseIdleThreshold int
	pulseZen           bool
	pulseNoAI          bool
	pulseCompact       bool
	pulseLive          bool
)

// newAdvisor builds the advice backend. Package-level so tests can swap in
// a stub and observe that certain paths never reach it.
var newAdvisor = func(cfg config.Config) advice.Advisor {
	return advice.Pick(cfg.AdviceCommand, cfg.AnthropicModel)
}

var pulseCmd = &cobra.Command{
	Use:     "pulse",
	Aliases: []string{"health", "hb"},
	Short:   "Classify recent workspace activity into a flow state",
	RunE: func(cmd *cobra.Command, args []string) error {
		window, threshold := clampPulseFlags(cmd)

		root, err := rootDir()
		if err != nil {
			return err
		}
		cfg := GetConfig()

		if pulseLive {
			if pulseCompact {
				return fmt.Errorf("--live and --compact are mutually exclusive")
			}
			return ui.RunLive(root, cfg.ExcludeDirs, window, float64(threshold))
		}

		// The workspace walk and the terminal-idle probe are independent
		// reads; run them concurrently.
		var (
			files    []workspace.FileStamp
			termIdle termidle.Minutes
		)
		g, _ := errgroup.WithContext(cmd.Context())
		g.Go(func() error {
			fs, err := workspace.ScanTree(root, cfg.ExcludeDirs)
			files = fs
			return err
		})
		g.Go(func() error {
			termIdle = termidle.Probe()
			return nil
		})
		if err := g.Wait(); err != nil {
			return err
		}

		now := time.Now()
		snap := pulse.BuildSnapshot(files, now)
		verdict := pulse.DetectIdle(snap.MinutesSince, termIdle, float64(threshold), pulseZen)

		if pulseCompact {
			// Machine-readable mode: one JSON record, no advice call,
			// completes in AI-independent time.
			return ui.WriteCompact(cmd.OutOrStdout(), snap)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.StatusPanel(snap, verdict))
		fmt.Fprintln(out, ui.Histogram(pulse.BuildHistogram(files, window, now), window))

		if !verdict.Idle {
			return nil
		}
		if pulseNoAI {
			fmt.Fprintln(out, ui.Notice("break suggested — AI advice disabled (--no-ai)"))
			return nil
		}

		gw := advice.NewGateway(newAdvisor(cfg))
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		res, err := ui.WaitForAdvice(func() advice.Result {
			return gw.Request(ctx, breakPrompt(verdict))
		}, cancel, term.IsTerminal(os.Stdout.Fd()))
		if err != nil {
			return err // interrupt → clean non-zero exit
		}

		switch res.Outcome {
		case advice.OutcomeOK:
			fmt.Fprintln(out, ui.AdviceBox(res.Text, 80))
		case advice.OutcomeTimedOut:
			fmt.Fprintln(out, ui.Notice("advice service took too long to respond — try again later"))
		default:
			fmt.Fprintln(out, ui.Notice(fmt.Sprintf("advice unavailable: %v", res.Err)))
		}
		return nil
	},
}

// clampPulseFlags validates the numeric flags, auto-correcting
// out-of-range values with a warning instead of rejecting them.
func clampPulseFlags(cmd *cobra.Command) (window time.Duration, idleThreshold int) {
	hours := pulseWindowHours
	if !cmd.Flags().Changed("window") {
		if p := GetProfile(); p != nil && p.DefaultWindowHours >= minWindowHours && p.DefaultWindowHours <= maxWindowHours {
			hours = p.DefaultWindowHours
		}
	}
	if hours < minWindowHours {
		cmd.PrintErrf("warning: --window %d below range, using %d\n", hours, minWindowHours)
		hours = minWindowHours
	}
	if hours > maxWindowHours {
		cmd.PrintErrf("warning: --window %d above range, using %d\n", hours, maxWindowHours)
		hours = maxWindowHours
	}

	idleThreshold = pulseIdleThreshold
	if idleThreshold < 0 {
		cmd.PrintErrf("warning: --idle-threshold %d is negative, using 0\n", idleThreshold)
		idleThreshold = 0
	}
	return time.Duration(hours) * time.Hour, idleThreshold
}

func breakPrompt(v pulse.Verdict) string {
	return fmt.Sprintf(
		"I have been idle for about %.0f minutes while programming. Suggest one short, concrete wellness break in two sentences or less.",
		v.Minutes)
}

func init() {
	pulseCmd.Flags().IntVarP(&pulseWindowHours, "window", "w", defaultWindowHours, "activity window in hours (1-24)")
	pulseCmd.Flags().IntVar(&pulseIdleThreshold, "idle-threshold", defaultIdleMinutes, "minutes of inactivity before a break is suggested")
	pulseCmd.Flags().BoolVar(&pulseZen, "zen", false, "force a break suggestion regardless of activity")
	pulseCmd.Flags().BoolVar(&pulseNoAI, "no-ai", false, "skip the AI break suggestion")
	pulseCmd.Flags().BoolVarP(&pulseCompact, "compact", "c", false, "machine-readable single-line JSON output")
	pulseCmd.Flags().BoolVar(&pulseLive, "live", false, "continuously updating dashboard")
	rootCmd.AddCommand(pulseCmd)
}
