package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	logger "github.com/PolarWolf314/kubecm/internal/logging"
	"github.com/PolarWolf314/kubecm/internal/workflows"
)

var backupCmd = &cobra.Command{
	Use:   "backup <name>",
	Short: "Store the active kubeconfig in the vault",
	Long: `Copies the active kubeconfig into the named vault slot and declares it.

An existing slot of the same name is overwritten.

Examples:
  kubecm backup prod
  kubecm --action backup --config prod`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBackup(cmd, firstArg(args))
	},
}

func runBackup(cmd *cobra.Command, name string) error {
	Logger.Infof("Starting backup command for %q", name)

	spinner, cleanup := startSpinner("Backing up configuration...", verbose)
	defer cleanup()

	env, err := newEnv(cmd)
	if err != nil {
		spinner.FinalMSG = formatError(err)
		return reported(err)
	}

	result, err := workflows.Backup(context.Background(), env, workflows.BackupOptions{Name: name})
	if err != nil {
		spinner.FinalMSG = formatError(err)
		return reported(err)
	}

	spinner.FinalMSG = backupLines(result)
	return nil
}

func backupLines(result *workflows.BackupResult) string {
	return strings.Join([]string{
		logger.SuccessString("Generated config vault: %s", result.SlotDir),
		logger.SuccessString("Cloning %s as %s", result.Source, result.ConfigPath),
		logger.SuccessString("Initialize for %s is Complete!", result.Slot),
	}, "\n")
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
