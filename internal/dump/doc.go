// Package dump exports synthesized definitions. Text goes through the
// canonical printer; JSON, YAML and msgpack serialize a Record tree that
// names every variable slot by its role.
package dump
