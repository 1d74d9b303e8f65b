package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/kubecm/internal/ui"
	"github.com/PolarWolf314/kubecm/internal/workflows"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show whether the active kubeconfig is stored in the vault",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting show command")

	spinner, cleanup := startSpinner("Comparing with vault...", verbose)
	defer cleanup()

	env, err := newEnv(cmd)
	if err != nil {
		spinner.FinalMSG = formatError(err)
		return reported(err)
	}

	result, err := workflows.Show(context.Background(), env)
	if err != nil {
		spinner.FinalMSG = formatError(err)
		return reported(err)
	}

	lines := []string{
		fmt.Sprintf("  %-10s %s", "Active:", ui.Path.Sprint(result.ActiveConfigPath)),
		fmt.Sprintf("  %-10s %s", "Vault:", ui.Path.Sprint(result.VaultDir)),
	}
	switch {
	case !result.ActiveExists:
		lines = append(lines, ui.Warning.Sprint("⚠")+" No active configuration found")
	case result.Stored:
		lines = append(lines, ui.Success.Sprint("✓")+" Stored in the vault as "+ui.Slot.Sprint(result.StoredIn))
	default:
		lines = append(lines,
			ui.Warning.Sprint("⚠")+" The active configuration is not stored in the vault",
			ui.Info.Sprint("→")+" Run "+ui.Code.Sprint("kubecm backup <name>")+" to store it")
	}
	spinner.FinalMSG = strings.Join(lines, "\n")
	return nil
}
