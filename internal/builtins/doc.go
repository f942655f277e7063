// Package builtins synthesizes canonical definitions for standard-library
// builtins.
//
// A builtin whose result type holds an open tag union (List.get returns
// `Result elem [OutOfBounds]*`) cannot be emitted by code generation with a
// fixed tag id, because the id depends on the union the caller's program
// unifies it with. Such builtins are instead built here as ordinary
// definitions: a handful of low-level opcodes glued together with if, when,
// let, record access, tags and closures. Only the opcodes need native
// support.
//
// Every synthesizer follows one of a few shapes (see Shape). Each call mints
// fresh variables from the caller's store, so two calls for the same symbol
// produce alpha-equivalent trees.
package builtins
