package cmd

import (
	"context"

	"github.com/spf13/cobra"

	logger "github.com/PolarWolf314/kubecm/internal/logging"
	"github.com/PolarWolf314/kubecm/internal/workflows"
)

var declareCmd = &cobra.Command{
	Use:   "declare <name>",
	Short: "Mark an existing vault slot as initialized",
	Long: `Writes the metadata marker for a slot directory that already exists.

Only declared slots are listed by view. Use declare to repair a slot whose
marker is missing.

Examples:
  kubecm declare prod
  kubecm --action declare --config prod`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDeclare(cmd, firstArg(args))
	},
}

func runDeclare(cmd *cobra.Command, name string) error {
	Logger.Infof("Starting declare command for %q", name)

	spinner, cleanup := startSpinner("Declaring configuration...", verbose)
	defer cleanup()

	env, err := newEnv(cmd)
	if err != nil {
		spinner.FinalMSG = formatError(err)
		return reported(err)
	}

	result, err := workflows.Declare(context.Background(), env, workflows.DeclareOptions{Name: name})
	if err != nil {
		spinner.FinalMSG = formatError(err)
		return reported(err)
	}

	Logger.Debugf("Metadata written to %s", result.MetadataPath)
	spinner.FinalMSG = logger.SuccessString("Initialize for %s is Complete!", result.Slot)
	return nil
}
