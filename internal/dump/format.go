package dump

import (
	"fmt"
	"strings"
)

// Format selects the encoding used by Write.
type Format uint8

const (
	FormatText Format = iota
	FormatJSON
	FormatYAML
	FormatMsgpack
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatMsgpack:
		return "msgpack"
	default:
		return "text"
	}
}

// Binary reports whether the format should not be written to a terminal.
func (f Format) Binary() bool { return f == FormatMsgpack }

// ParseFormat accepts text, json, yaml (or yml) and msgpack (or mp).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "msgpack", "mp":
		return FormatMsgpack, nil
	}
	return FormatText, fmt.Errorf("unknown dump format %q (want text, json, yaml or msgpack)", s)
}
