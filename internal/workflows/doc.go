// Package workflows implements the kubecm vault operations.
//
// Each workflow coordinates the vault store, the duplicate detector, the
// prompter and the audit trail for one user-facing verb. Workflows do not
// parse flags or format output; the cmd package does that with the
// returned result structs.
//
// # Available Workflows
//
//   - Declare: writes the metadata marker for an existing slot directory
//   - Backup: copies the active kubeconfig into a new or existing slot
//   - Activate: restores a slot over the active kubeconfig, offering to
//     back up an unstored active configuration first
//   - View: lists initialized slots
//   - Init: stores the active kubeconfig under a name read from the prompter
//   - Show: reports the active kubeconfig and whether it is stored
//   - Log: reads the audit trail
//
// # Error Handling
//
// Workflows return errors from internal/errors. Each is marked with a kind
// (ErrInvalidState, ErrNotFound, ErrIO); check it with kerrors.Is:
//
//	_, err := workflows.Activate(ctx, env, opts)
//	if kerrors.Is(err, kerrors.ErrBackupRequired) {
//	    // the user declined the backup prompt
//	}
//
// Nothing is rolled back on failure. A backup whose metadata write fails
// leaves a slot without a marker; `kubecm declare` repairs it.
package workflows
