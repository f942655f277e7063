package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stdsynth/internal/diag"
	"stdsynth/internal/snapshot"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Record or check normalized definitions on disk",
}

var snapshotWriteCmd = &cobra.Command{
	Use:   "write [path]",
	Short: "Write a snapshot of every builtin in scope",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := snapshotPath(args)
		syms, err := cfg.Symbols()
		if err != nil {
			return err
		}
		p, err := snapshot.Build(syms)
		if err != nil {
			return err
		}
		if err := snapshot.Write(path, p); err != nil {
			return err
		}
		if !quiet(cmd) {
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d definitions to %s\n", len(p.Entries), path)
		}
		return nil
	},
}

var snapshotCheckCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Compare fresh synthesis with a snapshot",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := snapshotPath(args)
		syms, err := cfg.Symbols()
		if err != nil {
			return err
		}
		bag := diag.NewBag(maxDiagnostics(cmd))
		n, err := snapshot.Check(path, syms, diag.BagReporter{Bag: bag})
		if err != nil {
			return err
		}
		bag.Sort()
		printDiagnostics(cmd.OutOrStdout(), bag.Items(), 0)
		if bag.HasErrors() {
			return fmt.Errorf("snapshot %s differs in %d definitions", path, n)
		}
		if !quiet(cmd) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s snapshot matches (%d warnings)\n", sevInfoColor.Sprint("ok:"), n)
		}
		return nil
	},
}

func init() {
	snapshotCmd.AddCommand(snapshotWriteCmd)
	snapshotCmd.AddCommand(snapshotCheckCmd)
}

func snapshotPath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	if cfg.Verify.Snapshot != "" {
		return cfg.Verify.Snapshot
	}
	return snapshot.DefaultFile
}
