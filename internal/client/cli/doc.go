// Package cli provides the interactive Lufa command-line client.
//
// It wires configuration, the Lufa HTTP client and an interactive REPL.
// Typical flow: log in (email from config or prompt, password read without
// echo), then inspect the profile, saved cards, billing history and the
// current order.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
