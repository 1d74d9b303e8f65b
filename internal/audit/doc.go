// Package audit records vault operations as JSON Lines.
//
// Each mutating command (backup, declare, activate, init) appends one
// entry to <vault>/.kubecm-audit.jsonl:
//
//	{"id":"…","ts":"2024-01-15T10:30:00.123456Z","user":"alice","op":"activate","slot":"prod","target":"/home/alice/.kube/config"}
//
// Logging is best effort. A vault that does not exist yet is never
// created just to hold the log, and write failures are dropped.
//
// Read the trail back with ReadEntries, or with `kubecm log`.
package audit
