package cmd

import (
	"context"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/PolarWolf314/kubecm/internal/audit"
	kerrors "github.com/PolarWolf314/kubecm/internal/errors"
	"github.com/PolarWolf314/kubecm/internal/workflows"
)

var (
	logLimit     int
	logReverse   bool
	logOperation string
	logSlot      string
)

func init() {
	logCmd.Flags().IntVarP(&logLimit, "number", "n", 0, "limit number of entries shown")
	logCmd.Flags().BoolVar(&logReverse, "reverse", false, "show most recent entries first")
	logCmd.Flags().StringVar(&logOperation, "operation", "", "filter by operation type (comma-separated)")
	logCmd.Flags().StringVar(&logSlot, "slot", "", "filter by configuration name")
}

// resetLogCommandState resets the log command's global state for testing.
func resetLogCommandState() {
	logLimit = 0
	logReverse = false
	logOperation = ""
	logSlot = ""
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View the vault audit log",
	Long: `Displays the audit log of vault operations.

Examples:
  kubecm log                        # View full log
  kubecm log -n 10                  # Last 10 entries
  kubecm log --reverse              # Most recent first
  kubecm log --operation activate   # Filter by operation
  kubecm log --slot prod            # Filter by configuration`,
	Args: cobra.NoArgs,
	RunE: runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting log command")

	spinner, cleanup := startSpinner("Loading audit log...", verbose)
	defer cleanup()

	env, err := newEnv(cmd)
	if err != nil {
		spinner.FinalMSG = formatError(err)
		return reported(err)
	}

	result, err := workflows.Log(context.Background(), env, workflows.LogOptions{
		Limit:      logLimit,
		Reverse:    logReverse,
		Operations: logOperation,
		Slot:       logSlot,
	})
	if err != nil {
		if kerrors.Is(err, kerrors.ErrNoAuditLog) {
			spinner.FinalMSG = "No audit log entries found."
			return nil
		}
		spinner.FinalMSG = formatError(err)
		return reported(err)
	}

	Logger.Debugf("Parsed %d entries from audit log", result.TotalEntriesBeforeFilter)
	Logger.Debugf("After filtering: %d entries", len(result.Entries))

	if len(result.Entries) == 0 {
		if result.TotalEntriesBeforeFilter == 0 {
			spinner.FinalMSG = "No audit log entries found."
		} else {
			spinner.FinalMSG = "No audit log entries found matching the filters."
		}
		return nil
	}

	spinner.FinalMSG = renderLogTable(result.Entries)
	return nil
}

func renderLogTable(entries []audit.Entry) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Time", "User", "Operation", "Configuration", "Path"})
	for _, e := range entries {
		path := e.Source
		if path == "" {
			path = e.Target
		}
		t.AppendRow(table.Row{formatLogTime(e.Timestamp), e.User, e.Operation, e.Slot, path})
	}
	return t.Render()
}

// formatLogTime shortens audit timestamps to local minutes.
func formatLogTime(ts string) string {
	parsed, err := time.Parse(audit.TimestampFormat, ts)
	if err != nil {
		return ts
	}
	return parsed.Local().Format("2006-01-02 15:04")
}
