// Package cliutil carries the ambient stack the solve driver and cmd/banana
// need but the solver core never touches: a structured logger threaded
// through context.Context, a per-run correlation id, and a toml config
// loader that seeds Options before CLI flags are applied.
package cliutil
