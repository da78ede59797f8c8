// Package cli provides the interactive PhotoStudio command-line client.
//
// It wires configuration, local storage, the application services, and the
// generation provider into an interactive REPL. Typical flow: restore the
// previous session (if any), then execute user commands until exit.
//
// Key features:
//   - Sign up / sign in / demo access / sign out
//   - Plan overview and plan switching
//   - Usage display against the active plan's allowances
//   - Image and video generation gated by the quota ledger
//   - Gallery listing, resolution to local files, and removal
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
