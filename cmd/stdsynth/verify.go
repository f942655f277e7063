package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"stdsynth/internal/diag"
	"stdsynth/internal/driver"
	"stdsynth/internal/snapshot"
	"stdsynth/internal/symbols"
	"stdsynth/internal/ui"
)

var (
	verifyJobs     int
	verifyUI       string
	verifySnapshot string
)

func init() {
	verifyCmd.Flags().IntVarP(&verifyJobs, "jobs", "j", 0, "parallel workers (default: [verify].jobs or GOMAXPROCS)")
	verifyCmd.Flags().StringVar(&verifyUI, "ui", "auto", "progress view (auto|on|off)")
	verifyCmd.Flags().StringVar(&verifySnapshot, "snapshot", "", "also compare against this snapshot (default: [verify].snapshot)")
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check every builtin for presence, determinism, validity and shape",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := readUIMode(verifyUI)
		if err != nil {
			return err
		}
		syms, err := cfg.Symbols()
		if err != nil {
			return err
		}
		timings, err := cmd.Root().PersistentFlags().GetBool("timings")
		if err != nil {
			return fmt.Errorf("failed to get timings flag: %w", err)
		}
		jobs := verifyJobs
		if jobs == 0 {
			jobs = cfg.Verify.Jobs
		}
		opts := driver.VerifyOptions{
			Jobs:           jobs,
			Symbols:        syms,
			MaxDiagnostics: maxDiagnostics(cmd),
			EnableTimings:  timings,
		}

		var res *driver.VerifyResult
		if shouldUseTUI(mode) {
			res, err = runVerifyWithUI(cmd.Context(), syms, opts)
		} else {
			res, err = driver.Verify(cmd.Context(), opts)
		}
		if err != nil {
			return err
		}

		snapPath := verifySnapshot
		if snapPath == "" {
			snapPath = cfg.Verify.Snapshot
		}
		if snapPath != "" {
			if _, err := snapshot.Check(snapPath, syms, diag.BagReporter{Bag: res.Bag}); err != nil {
				res.Bag.Add(diag.NewError(diag.SnapIOError, snapPath, err.Error()))
			}
			res.Bag.Sort()
		}

		out := cmd.OutOrStdout()
		items := res.Bag.Items()
		if !timings {
			items = withoutTimings(items)
		}
		printDiagnostics(out, items, maxDiagnostics(cmd))
		if timings && res.Timing != nil {
			fmt.Fprintln(out, res.Metrics)
		}

		if res.Bag.HasErrors() {
			dumpRing(cmd)
			return fmt.Errorf("verification failed: %d of %d builtins", len(res.Failed), res.Checked)
		}
		if !quiet(cmd) {
			fmt.Fprintf(out, "%s %d builtins verified\n", sevInfoColor.Sprint("ok:"), res.Checked)
		}
		return nil
	},
}

func withoutTimings(items []diag.Diagnostic) []diag.Diagnostic {
	out := items[:0:0]
	for _, d := range items {
		if d.Code != diag.ObsTimings {
			out = append(out, d)
		}
	}
	return out
}

type verifyOutcome struct {
	result *driver.VerifyResult
	err    error
}

func runVerifyWithUI(ctx context.Context, syms []symbols.Symbol, opts driver.VerifyOptions) (*driver.VerifyResult, error) {
	events := make(chan driver.ProgressEvent, 256)
	outcomeCh := make(chan verifyOutcome, 1)

	go func() {
		opts.Progress = func(ev driver.ProgressEvent) { events <- ev }
		res, err := driver.Verify(ctx, opts)
		outcomeCh <- verifyOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("verify", syms, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
