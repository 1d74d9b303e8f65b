package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/kubecm/internal/configs"
	"github.com/PolarWolf314/kubecm/internal/ui"
)

var configInitForce bool

// ConfigCmd groups the settings file commands.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage kubecm settings",
	Long: `Provides commands for the kubecm settings file.

Settings are resolved from, in increasing order of precedence: built-in
defaults, the settings file, KUBECM_* environment variables and the
--kubeconfig and --vault-dir flags.

Examples:
  # Show the effective settings
  kubecm config show

  # Write the effective settings to the settings file
  kubecm config init --vault-dir ~/vaults/kube`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")

		path, settings, err := loadSettings(cmd)
		if err != nil {
			fmt.Println(formatError(err))
			return reported(err)
		}

		source := ui.Muted.Sprint("not present")
		if _, err := os.Stat(path); err == nil {
			source = ui.Path.Sprint(path)
		}

		fmt.Println(ui.Info.Sprint("Settings") + " (" + source + "):")
		fmt.Println()
		fmt.Printf("  %-12s %s\n", "Kubeconfig:", ui.Success.Sprint(settings.ActiveConfigPath))
		fmt.Printf("  %-12s %s\n", "Vault:", ui.Success.Sprint(settings.VaultDir))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective settings to the settings file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config init command")

		path, settings, err := loadSettings(cmd)
		if err != nil {
			fmt.Println(formatError(err))
			return reported(err)
		}

		if _, err := os.Stat(path); err == nil && !configInitForce {
			fmt.Println(ui.Warning.Sprint("⚠") + " Settings file already exists at " + ui.Path.Sprint(path))
			fmt.Println(ui.Info.Sprint("→") + " Use " + ui.Code.Sprint("--force") + " to overwrite it")
			return nil
		}

		if err := configs.WriteSettingsFile(path, settings); err != nil {
			fmt.Println(formatError(err))
			return reported(err)
		}
		fmt.Println(ui.Success.Sprint("✓") + " Settings written to " + ui.Path.Sprint(path))
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing settings file")
	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configInitCmd)
}

// resetConfigInitState resets the config init command's global state for testing.
func resetConfigInitState() {
	configInitForce = false
}

func loadSettings(cmd *cobra.Command) (string, *configs.Settings, error) {
	path, err := configs.SettingsFilePath()
	if err != nil {
		return "", nil, Logger.ErrorfAndReturn("Failed to locate settings file: %v", err)
	}
	settings, err := configs.Load(configs.LoadOptions{Flags: cmd.Flags(), SettingsFile: path})
	if err != nil {
		return "", nil, err
	}
	return path, settings, nil
}
