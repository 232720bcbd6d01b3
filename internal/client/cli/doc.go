// Package cli provides the interactive InstaGuard command-line client.
//
// It wires configuration, the local session store, the API services and a
// REPL whose command set follows the dashboard the user is on: guest,
// user or admin. A background watcher pings the server and shows whether
// the client is online in the prompt.
//
// Guest commands: login, google, register, check, contact.
// User commands: predict, report, reports, myreports, feedback, profile,
// editprofile, history and more. Admin commands: dashboard, users, deluser,
// allreports, feedbacks, results, settings, export.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
