package configs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// KeyKubeconfig is the settings key for the active configuration path.
	KeyKubeconfig = "kubeconfig"
	// KeyVaultDir is the settings key for the vault root.
	KeyVaultDir = "vault_dir"

	// EnvPrefix prefixes every environment override, e.g. KUBECM_VAULT_DIR.
	EnvPrefix = "KUBECM"

	// VaultDirName is the default vault directory inside the home directory.
	VaultDirName = "kubecm_vault"
)

// Settings holds the resolved filesystem locations.
type Settings struct {
	ActiveConfigPath string `toml:"kubeconfig"`
	VaultDir         string `toml:"vault_dir"`
}

// LoadOptions configures Load.
type LoadOptions struct {
	// Flags are bound over every other source when set.
	Flags *pflag.FlagSet

	// SettingsFile is read when it exists. Empty skips the file layer.
	SettingsFile string
}

// flagKeys maps command-line flag names to settings keys.
var flagKeys = map[string]string{
	"kubeconfig": KeyKubeconfig,
	"vault-dir":  KeyVaultDir,
}

// DefaultSettings returns ~/.kube/config and ~/kubecm_vault.
func DefaultSettings() (*Settings, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "error getting home directory")
	}
	return &Settings{
		ActiveConfigPath: filepath.Join(home, ".kube", "config"),
		VaultDir:         filepath.Join(home, VaultDirName),
	}, nil
}

// SettingsFilePath returns <user config dir>/kubecm/config.toml.
func SettingsFilePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "error getting config directory")
	}
	return filepath.Join(configDir, "kubecm", "config.toml"), nil
}

// Load resolves Settings from defaults, the settings file, the environment
// and flags, in increasing order of precedence.
func Load(opts LoadOptions) (*Settings, error) {
	defaults, err := DefaultSettings()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault(KeyKubeconfig, defaults.ActiveConfigPath)
	v.SetDefault(KeyVaultDir, defaults.VaultDir)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if opts.SettingsFile != "" {
		fileSettings, err := ReadSettingsFile(opts.SettingsFile)
		if err != nil {
			return nil, err
		}
		if fileSettings != nil {
			if err := v.MergeConfigMap(fileSettings.asMap()); err != nil {
				return nil, errors.Wrapf(err, "merging settings from %s", opts.SettingsFile)
			}
		}
	}

	if opts.Flags != nil {
		for name, key := range flagKeys {
			flag := opts.Flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, errors.Wrapf(err, "binding --%s", name)
			}
		}
	}

	return &Settings{
		ActiveConfigPath: ExpandHome(v.GetString(KeyKubeconfig)),
		VaultDir:         ExpandHome(v.GetString(KeyVaultDir)),
	}, nil
}

// ReadSettingsFile decodes the settings file. A missing file returns nil
// settings and no error.
func ReadSettingsFile(path string) (*Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	settings := &Settings{}
	if err := LoadTOML(path, settings); err != nil {
		return nil, errors.Wrapf(err, "failed to load settings file %s", path)
	}
	return settings, nil
}

// WriteSettingsFile writes settings as TOML, creating parent directories.
func WriteSettingsFile(path string, settings *Settings) error {
	if err := SaveTOML(path, settings); err != nil {
		return errors.Wrapf(err, "failed to save settings file %s", path)
	}
	return nil
}

// asMap returns only the populated fields so empty values never shadow
// the defaults.
func (s *Settings) asMap() map[string]any {
	m := make(map[string]any)
	if s.ActiveConfigPath != "" {
		m[KeyKubeconfig] = s.ActiveConfigPath
	}
	if s.VaultDir != "" {
		m[KeyVaultDir] = s.VaultDir
	}
	return m
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
