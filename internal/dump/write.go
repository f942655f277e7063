package dump

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"stdsynth/internal/can"
)

// Options controls Write and Records.
type Options struct {
	Format Format
	// Vars shows variables in text output.
	Vars bool
	// Normalize renumbers variables from FirstFresh before export.
	Normalize bool
	// ShapeOf names the synthesis shape of a definition; optional.
	ShapeOf func(*can.Def) string
}

// Write exports defs to w in opts.Format.
func Write(w io.Writer, defs []*can.Def, opts Options) error {
	if opts.Format == FormatText {
		p := can.NewPrinterWithOptions(w, can.PrintOptions{Vars: opts.Vars, Normalize: opts.Normalize})
		for i, def := range defs {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if err := p.PrintDef(def); err != nil {
				return err
			}
		}
		return nil
	}

	records := Records(defs, opts)
	switch opts.Format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("dump json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("dump yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("dump yaml: %w", err)
		}
	case FormatMsgpack:
		enc := msgpack.NewEncoder(w)
		enc.SetSortMapKeys(true)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("dump msgpack: %w", err)
		}
	default:
		return fmt.Errorf("dump: unsupported format %s", opts.Format)
	}
	return nil
}

// Records converts defs without writing them.
func Records(defs []*can.Def, opts Options) []Record {
	out := make([]Record, 0, len(defs))
	for _, def := range defs {
		if opts.Normalize {
			def = can.Normalize(def)
		}
		shape := ""
		if opts.ShapeOf != nil {
			shape = opts.ShapeOf(def)
		}
		out = append(out, NewRecord(def, shape))
	}
	return out
}
