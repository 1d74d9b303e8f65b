package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/kubecm/internal/ui"
	"github.com/PolarWolf314/kubecm/internal/workflows"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Store the active kubeconfig under a name you choose",
	Long: `Asks for a name and stores the active kubeconfig under it.

Nothing happens when there is no active kubeconfig. A slot that already
exists is left untouched.

Examples:
  kubecm init
  kubecm --action init`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(cmd)
	},
}

func runInit(cmd *cobra.Command) error {
	Logger.Infof("Starting init command")

	env, err := newEnv(cmd)
	if err != nil {
		fmt.Println(formatError(err))
		return reported(err)
	}

	result, err := workflows.Init(context.Background(), env)
	if err != nil {
		fmt.Println(formatError(err))
		return reported(err)
	}

	switch {
	case result.Skipped:
		fmt.Println(ui.Warning.Sprint("⚠") + " No active configuration found at " + ui.Path.Sprint(env.Store.ActiveConfigPath()))
	case result.AlreadyExisted:
		Logger.Successf("Configuration %s was already created", result.Slot)
	default:
		Logger.Successf("Initialize for %s is Complete!", result.Slot)
		Logger.Successf("Saving configuration as %s", result.ConfigPath)
	}
	return nil
}
