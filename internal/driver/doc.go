// Package driver runs whole-catalog verification. Verify synthesizes every
// builtin in a bounded worker pool and checks each definition for presence,
// alpha-determinism, structural validity and its declared shape; catalog
// level checks cover rejection of non-builtins and non-aliasing across
// definitions sharing one store.
package driver
