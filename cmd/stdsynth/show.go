package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stdsynth/internal/builtins"
	"stdsynth/internal/can"
	"stdsynth/internal/diag"
	"stdsynth/internal/dump"
	"stdsynth/internal/env"
)

var (
	showFormat    string
	showVars      bool
	showNormalize bool
	showAll       bool
	showOutput    string
)

func init() {
	showCmd.Flags().StringVar(&showFormat, "format", "", "output format (text|json|yaml|msgpack); defaults to [output].format")
	showCmd.Flags().BoolVar(&showVars, "vars", true, "print type variables in text output")
	showCmd.Flags().BoolVar(&showNormalize, "normalize", true, "renumber variables from the first fresh variable")
	showCmd.Flags().BoolVar(&showAll, "all", false, "show every builtin in scope")
	showCmd.Flags().StringVarP(&showOutput, "output", "o", "", "write to a file instead of stdout")
}

var showCmd = &cobra.Command{
	Use:   "show [Namespace.name ...]",
	Short: "Print synthesized definitions",
	Example: `  stdsynth show List.get Num.addChecked
  stdsynth show --all --format yaml -o builtins.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !showAll && len(args) == 0 {
			return errors.New("name at least one builtin or pass --all")
		}
		formatName := showFormat
		if formatName == "" {
			formatName = cfg.Output.Format
		}
		format, err := dump.ParseFormat(formatName)
		if err != nil {
			return err
		}

		nss, err := cfg.Namespaces()
		if err != nil {
			return err
		}
		e := env.New(env.Options{Namespaces: nss})
		bag := diag.NewBag(maxDiagnostics(cmd))
		defs := collectDefs(cmd, e, args, bag)
		if bag.Len() > 0 {
			bag.Sort()
			printDiagnostics(cmd.ErrOrStderr(), bag.Items(), 0)
		}
		if len(defs) == 0 {
			return errors.New("nothing to show")
		}

		out := cmd.OutOrStdout()
		if showOutput != "" {
			f, err := os.Create(showOutput)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", showOutput, err)
			}
			defer f.Close()
			out = f
		} else if format.Binary() && isTerminal(os.Stdout) {
			return fmt.Errorf("refusing to write %s to a terminal; use -o", format)
		}

		bw := bufio.NewWriter(out)
		if err := dump.Write(bw, defs, dump.Options{
			Format:    format,
			Vars:      showVars,
			Normalize: showNormalize,
			ShapeOf:   func(d *can.Def) string { return builtins.ShapeOf(d.Name()).String() },
		}); err != nil {
			return err
		}
		if err := bw.Flush(); err != nil {
			return err
		}
		if bag.HasErrors() {
			return fmt.Errorf("%d names could not be shown", bag.Len())
		}
		return nil
	},
}

// collectDefs looks up the requested names, or populates the whole scope
// for --all. Lookup failures go to bag.
func collectDefs(cmd *cobra.Command, e *env.Env, names []string, bag *diag.Bag) []*can.Def {
	r := diag.BagReporter{Bag: bag}
	if showAll {
		e.PopulateBuiltins(cmd.Context(), r)
		defs := make([]*can.Def, 0, e.Len())
		for _, sym := range e.Installed() {
			def, _ := e.Lookup(sym)
			defs = append(defs, def)
		}
		return defs
	}
	defs := make([]*can.Def, 0, len(names))
	for _, name := range names {
		def, d := e.LookupName(name)
		if d != nil {
			r.Report(*d)
			continue
		}
		defs = append(defs, def)
	}
	return defs
}

func maxDiagnostics(cmd *cobra.Command) int {
	n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil || n <= 0 {
		return 100
	}
	return n
}
