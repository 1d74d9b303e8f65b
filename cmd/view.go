package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/PolarWolf314/kubecm/internal/ui"
	"github.com/PolarWolf314/kubecm/internal/workflows"
)

var viewLong bool

func init() {
	viewCmd.Flags().BoolVarP(&viewLong, "long", "l", false, "show metadata and current context for each configuration")
}

// resetViewState resets the view command's global state for testing.
func resetViewState() {
	viewLong = false
}

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "List the stored configurations",
	Long: `Lists every declared slot in the vault.

Examples:
  kubecm view
  kubecm view --long
  kubecm --action view`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runView(cmd, viewLong)
	},
}

func runView(cmd *cobra.Command, long bool) error {
	Logger.Infof("Starting view command")

	spinner, cleanup := startSpinner("Reading vault...", verbose)
	defer cleanup()

	env, err := newEnv(cmd)
	if err != nil {
		spinner.FinalMSG = formatError(err)
		return reported(err)
	}

	result, err := workflows.View(context.Background(), env, workflows.ViewOptions{Detailed: long})
	if err != nil {
		spinner.FinalMSG = formatError(err)
		return reported(err)
	}

	if len(result.Slots) == 0 {
		spinner.FinalMSG = "No configurations found."
		return nil
	}

	if long {
		spinner.FinalMSG = renderSlotTable(result.Slots)
		return nil
	}

	lines := []string{ui.Info.Sprint("Current Stored K8s Configurations:")}
	for _, slot := range result.Slots {
		lines = append(lines, "  "+slot.Name)
	}
	spinner.FinalMSG = strings.Join(lines, "\n")
	return nil
}

func renderSlotTable(slots []workflows.SlotInfo) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Initialized", "Status", "Current Context", "Contexts"})
	for _, slot := range slots {
		initialized, status := "-", "-"
		if slot.Metadata != nil {
			initialized = slot.Metadata.InitializedAt.Local().Format("2006-01-02 15:04:05")
			status = slot.Metadata.Status
		}
		current := slot.CurrentContext
		if current == "" {
			current = "-"
		}
		t.AppendRow(table.Row{slot.Name, initialized, status, current, fmt.Sprint(slot.Contexts)})
	}
	return t.Render()
}
