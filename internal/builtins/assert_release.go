//go:build stdsynth_release

package builtins

const debugChecks = false
