// Package cli provides the interactive LifeTrack command-line client.
//
// It wires configuration, the local encrypted store, the application
// services, and an interactive REPL. Typical flow: prompt for the master
// password, unlock a session, and execute user commands against the local
// database.
//
// Key features:
//   - Setup / Login / Logout / password change
//   - Add daily entries and goals, list and filter them
//   - Track goal progress with status transitions and insights
//   - Export to / import from a JSON snapshot, full wipe
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
