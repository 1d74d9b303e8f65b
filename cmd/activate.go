package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/kubecm/internal/workflows"
)

var activateYes bool

func init() {
	activateCmd.Flags().BoolVarP(&activateYes, "yes", "y", false, "back up the active configuration without asking")
}

// resetActivateState resets the activate command's global state for testing.
func resetActivateState() {
	activateYes = false
}

var activateCmd = &cobra.Command{
	Use:   "activate <name>",
	Short: "Restore a stored kubeconfig over the active one",
	Long: `Copies the named slot's kubeconfig over the active kubeconfig.

If the active kubeconfig is not already stored in the vault you are asked to
back it up under a new name first. Declining aborts without changes.

Examples:
  kubecm activate staging
  kubecm activate staging --yes
  kubecm --action activate --config staging`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runActivate(cmd, firstArg(args), activateYes)
	},
}

// runActivate does not use a spinner because it may prompt.
func runActivate(cmd *cobra.Command, name string, yes bool) error {
	Logger.Infof("Starting activate command for %q", name)

	env, err := newEnv(cmd)
	if err != nil {
		fmt.Println(formatError(err))
		return reported(err)
	}

	result, err := workflows.Activate(context.Background(), env, workflows.ActivateOptions{
		Name:      name,
		AssumeYes: yes,
	})
	if err != nil {
		fmt.Println(formatError(err))
		return reported(err)
	}

	if result.BackedUpAs != "" {
		Logger.Successf("Initialize for %s is Complete!", result.BackedUpAs)
	}
	Logger.Successf("Activated Configuration from Vault: %s", result.Slot)
	return nil
}
