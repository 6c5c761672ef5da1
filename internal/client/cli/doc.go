// Package cli provides the interactive survey command-line client.
//
// It wires configuration, the gRPC client and an interactive REPL. A
// background watcher keeps a Subscribe stream open and tells the user when
// surveys change so they can reload.
//
// Key features:
//   - Register / Login / Logout
//   - List participated and invited surveys, show one survey
//   - Create surveys, join or decline by join key
//   - Vote and mark a preferred option
//   - Invite users, close and remove own surveys
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
