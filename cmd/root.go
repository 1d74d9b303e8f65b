package cmd

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	kerrors "github.com/PolarWolf314/kubecm/internal/errors"
	logger "github.com/PolarWolf314/kubecm/internal/logging"
	"github.com/PolarWolf314/kubecm/internal/prompt"
	"github.com/PolarWolf314/kubecm/internal/ui"
)

// Actions accepted by --action.
const (
	ActionBackup   = "backup"
	ActionDeclare  = "declare"
	ActionView     = "view"
	ActionActivate = "activate"
	ActionInit     = "init"
)

var (
	verbose        bool
	debug          bool
	noDebug        bool
	action         string
	configName     string
	assumeYes      bool
	kubeconfigPath string
	vaultDir       string
	exactMatch     bool

	Logger logger.Logger

	fsys     afero.Fs = afero.NewOsFs()
	prompter prompt.Prompter

	RootCmd = &cobra.Command{
		Use:   "kubecm",
		Short: "kubecm - keep named kubeconfig files in a local vault and swap between them.",
		Long: `kubecm stores copies of your active kubeconfig in a vault directory and
restores any of them on demand.

Each stored copy lives in its own named slot. A slot is only listed once it
has been declared, which writes a small metadata marker next to the copy.

Examples:
  # Store the active kubeconfig as "prod" and declare it
  kubecm --action backup --config prod
  kubecm --action declare --config prod

  # Swap to another stored configuration
  kubecm --action activate --config staging

  # The same operations as subcommands
  kubecm backup prod
  kubecm activate staging --yes
  kubecm view --long`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noDebug {
				debug = false
			}
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing kubecm with verbose=%t, debug=%t", verbose, debug)
		},
		RunE: runAction,
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	RootCmd.PersistentFlags().BoolVar(&noDebug, "no-debug", false, "disable debug output")
	RootCmd.PersistentFlags().StringVar(&kubeconfigPath, "kubeconfig", "", "path of the active kubeconfig (default ~/.kube/config)")
	RootCmd.PersistentFlags().StringVar(&vaultDir, "vault-dir", "", "vault directory (default ~/kubecm_vault)")
	RootCmd.PersistentFlags().BoolVar(&exactMatch, "exact", false, "treat the active configuration as stored only on a byte-identical match")

	RootCmd.Flags().StringVarP(&action, "action", "a", "", "action to perform: backup, declare, view, activate or init")
	RootCmd.Flags().StringVarP(&configName, "config", "c", "", "name of the configuration to act on")
	RootCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "back up the active configuration without asking")

	RootCmd.AddCommand(backupCmd)
	RootCmd.AddCommand(declareCmd)
	RootCmd.AddCommand(activateCmd)
	RootCmd.AddCommand(viewCmd)
	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(showCmd)
	RootCmd.AddCommand(logCmd)
	RootCmd.AddCommand(ConfigCmd)
}

// runAction dispatches the legacy --action interface to the same handlers
// the subcommands use.
func runAction(cmd *cobra.Command, args []string) error {
	if action == "" {
		printBanner()
		return nil
	}

	var err error
	switch action {
	case ActionBackup:
		err = runBackup(cmd, configName)
	case ActionDeclare:
		err = runDeclare(cmd, configName)
	case ActionView:
		err = runView(cmd, false)
	case ActionActivate:
		err = runActivate(cmd, configName, assumeYes)
	case ActionInit:
		err = runInit(cmd)
	default:
		return kerrors.Newf(kerrors.ErrInvalidAction, "invalid action %q", action)
	}
	if err != nil {
		return err
	}

	Logger.Debugf("Parsed arguments: action=%q config=%q verbose=%t debug=%t", action, configName, verbose, debug)
	Logger.Debugf("Executed action: %s", action)
	return nil
}

func printBanner() {
	banner := figure.NewColorFigure("kubecm", "small", "cyan", true)
	banner.Print()
	fmt.Println("Run " + ui.Code.Sprint("kubecm --help") + " to see available commands.")
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := RootCmd.Execute(); err != nil {
		if !isReported(err) {
			fmt.Println(formatError(err))
		}
		return 1
	}
	return 0
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	noDebug = false
	action = ""
	configName = ""
	assumeYes = false
	kubeconfigPath = ""
	vaultDir = ""
	exactMatch = false
	fsys = afero.NewOsFs()
	prompter = nil
	resetActivateState()
	resetViewState()
	resetLogCommandState()
	resetConfigInitState()
	resetCobraFlagState(RootCmd)
}

// resetCobraFlagState clears the Changed bit on every flag so bound settings
// fall back to their defaults between test runs.
func resetCobraFlagState(cmd *cobra.Command) {
	unset := func(flag *pflag.Flag) { flag.Changed = false }
	cmd.PersistentFlags().VisitAll(unset)
	cmd.Flags().VisitAll(unset)
	for _, child := range cmd.Commands() {
		resetCobraFlagState(child)
	}
}

// SetFs sets the filesystem commands operate on, for testing.
func SetFs(f afero.Fs) {
	fsys = f
}

// SetPrompter sets the prompter used for confirmations, for testing.
func SetPrompter(p prompt.Prompter) {
	prompter = p
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
