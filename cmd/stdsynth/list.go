package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"stdsynth/internal/builtins"
	"stdsynth/internal/symbols"
	"stdsynth/internal/types"
)

var (
	listNamespace string
	listShape     string
)

func init() {
	listCmd.Flags().StringVar(&listNamespace, "namespace", "", "only list one namespace (e.g. List)")
	listCmd.Flags().StringVar(&listShape, "shape", "", "only list builtins of one shape (e.g. overflow)")
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List builtins with their shape, arity and variable count",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		syms, err := cfg.Symbols()
		if err != nil {
			return err
		}
		if listNamespace != "" {
			ns, ok := symbols.ParseNamespace(listNamespace)
			if !ok {
				return fmt.Errorf("unknown namespace %q", listNamespace)
			}
			syms = symbols.ByNamespace(ns)
		}
		rows, err := buildListRows(syms, listShape)
		if err != nil {
			return err
		}
		printListTable(cmd.OutOrStdout(), rows)
		if !quiet(cmd) {
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d builtins\n", len(rows))
		}
		return nil
	},
}

type listRow struct {
	name  string
	shape string
	arity int
	vars  int
}

func buildListRows(syms []symbols.Symbol, shapeFilter string) ([]listRow, error) {
	shapeFilter = strings.TrimSpace(strings.ToLower(shapeFilter))
	if shapeFilter != "" && !knownShape(shapeFilter) {
		return nil, fmt.Errorf("unknown shape %q", shapeFilter)
	}
	rows := make([]listRow, 0, len(syms))
	for _, sym := range syms {
		shape := builtins.ShapeOf(sym).String()
		if shapeFilter != "" && shape != shapeFilter {
			continue
		}
		store := types.NewVarStore()
		def, ok := builtins.Synthesize(sym, store)
		if !ok {
			return nil, fmt.Errorf("no definition for %s", sym)
		}
		rows = append(rows, listRow{name: sym.String(), shape: shape, arity: def.Arity(), vars: store.Minted()})
	}
	return rows, nil
}

func knownShape(name string) bool {
	for _, s := range builtins.Shapes() {
		if s.String() == name {
			return true
		}
	}
	return false
}

func printListTable(w io.Writer, rows []listRow) {
	nameWidth := runewidth.StringWidth("builtin")
	shapeWidth := runewidth.StringWidth("shape")
	for _, r := range rows {
		nameWidth = max(nameWidth, runewidth.StringWidth(r.name))
		shapeWidth = max(shapeWidth, runewidth.StringWidth(r.shape))
	}
	fmt.Fprintf(w, "%s  %s  %5s  %4s\n",
		runewidth.FillRight("builtin", nameWidth), runewidth.FillRight("shape", shapeWidth), "arity", "vars")
	for _, r := range rows {
		fmt.Fprintf(w, "%s  %s  %5d  %4d\n",
			runewidth.FillRight(r.name, nameWidth), runewidth.FillRight(r.shape, shapeWidth), r.arity, r.vars)
	}
}
