package workflows

import (
	"context"
	"strings"

	"github.com/spf13/afero"

	"github.com/PolarWolf314/kubecm/internal/audit"
	kerrors "github.com/PolarWolf314/kubecm/internal/errors"
)

// LogOptions configures the log workflow.
type LogOptions struct {
	// Limit is the maximum number of entries to return. 0 means no limit.
	Limit int

	// Reverse orders entries from most recent to oldest when true.
	Reverse bool

	// Operations filters entries by operation types (comma-separated).
	Operations string

	// Slot filters entries by slot name.
	Slot string
}

// LogResult contains the outcome of a log operation.
type LogResult struct {
	// Entries are the filtered audit log entries.
	Entries []audit.Entry

	// TotalEntriesBeforeFilter is the count of entries before filtering.
	TotalEntriesBeforeFilter int
}

// Log reads and filters the vault's audit log.
//
// Returns ErrNoAuditLog if no audit log exists.
func Log(ctx context.Context, env *Env, opts LogOptions) (*LogResult, error) {
	fsys := env.Store.Fs()
	logPath := audit.LogPath(env.Store.Root())

	exists, err := afero.Exists(fsys, logPath)
	if err != nil {
		return nil, kerrors.MarkIO(err, "checking %s", logPath)
	}
	if !exists {
		return nil, kerrors.ErrNoAuditLog
	}

	entries, err := audit.ReadEntries(fsys, env.Store.Root())
	if err != nil {
		return nil, kerrors.MarkIO(err, "reading audit log")
	}

	result := &LogResult{TotalEntriesBeforeFilter: len(entries)}
	filtered := entries

	if opts.Slot != "" {
		filtered = filterEntries(filtered, func(e audit.Entry) bool { return e.Slot == opts.Slot })
	}

	if opts.Operations != "" {
		ops := make(map[string]bool)
		for _, op := range strings.Split(opts.Operations, ",") {
			ops[strings.TrimSpace(op)] = true
		}
		filtered = filterEntries(filtered, func(e audit.Entry) bool { return ops[e.Operation] })
	}

	if opts.Reverse {
		for i, j := 0, len(filtered)-1; i < j; i, j = i+1, j-1 {
			filtered[i], filtered[j] = filtered[j], filtered[i]
		}
	}

	if opts.Limit > 0 && len(filtered) > opts.Limit {
		if opts.Reverse {
			// When reversed, limit takes first N (most recent).
			filtered = filtered[:opts.Limit]
		} else {
			// When not reversed, limit takes last N (most recent).
			filtered = filtered[len(filtered)-opts.Limit:]
		}
	}

	result.Entries = filtered
	return result, nil
}

func filterEntries(entries []audit.Entry, keep func(audit.Entry) bool) []audit.Entry {
	var result []audit.Entry
	for _, e := range entries {
		if keep(e) {
			result = append(result, e)
		}
	}
	return result
}
