package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateHome points HOME at a temp directory and clears overrides.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("KUBECM_KUBECONFIG", "")
	t.Setenv("KUBECM_VAULT_DIR", "")
	os.Unsetenv("KUBECM_KUBECONFIG")
	os.Unsetenv("KUBECM_VAULT_DIR")
	return home
}

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("kubeconfig", "", "")
	flags.String("vault-dir", "", "")
	return flags
}

func TestLoadDefaults(t *testing.T) {
	home := isolateHome(t)

	settings, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".kube", "config"), settings.ActiveConfigPath)
	assert.Equal(t, filepath.Join(home, "kubecm_vault"), settings.VaultDir)
}

func TestLoadPrecedence(t *testing.T) {
	home := isolateHome(t)
	settingsFile := filepath.Join(home, "settings", "config.toml")
	require.NoError(t, WriteSettingsFile(settingsFile, &Settings{VaultDir: "/from/file"}))

	t.Run("FileOverridesDefaults", func(t *testing.T) {
		settings, err := Load(LoadOptions{SettingsFile: settingsFile})
		require.NoError(t, err)
		assert.Equal(t, "/from/file", settings.VaultDir)
		assert.Equal(t, filepath.Join(home, ".kube", "config"), settings.ActiveConfigPath)
	})

	t.Run("EnvOverridesFile", func(t *testing.T) {
		t.Setenv("KUBECM_VAULT_DIR", "/from/env")
		settings, err := Load(LoadOptions{SettingsFile: settingsFile})
		require.NoError(t, err)
		assert.Equal(t, "/from/env", settings.VaultDir)
	})

	t.Run("FlagsOverrideEnv", func(t *testing.T) {
		t.Setenv("KUBECM_VAULT_DIR", "/from/env")
		flags := newFlags()
		require.NoError(t, flags.Parse([]string{"--vault-dir", "/from/flag", "--kubeconfig", "/tmp/kc"}))

		settings, err := Load(LoadOptions{Flags: flags, SettingsFile: settingsFile})
		require.NoError(t, err)
		assert.Equal(t, "/from/flag", settings.VaultDir)
		assert.Equal(t, "/tmp/kc", settings.ActiveConfigPath)
	})

	t.Run("UnsetFlagsDoNotShadow", func(t *testing.T) {
		settings, err := Load(LoadOptions{Flags: newFlags(), SettingsFile: settingsFile})
		require.NoError(t, err)
		assert.Equal(t, "/from/file", settings.VaultDir)
	})
}

func TestReadSettingsFileMissing(t *testing.T) {
	settings, err := ReadSettingsFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Nil(t, settings)
}

func TestReadSettingsFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("vault_dir = [unterminated"), 0600))

	_, err := ReadSettingsFile(path)
	assert.Error(t, err)
}

func TestExpandHome(t *testing.T) {
	home := isolateHome(t)

	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, "kubecm_vault"), ExpandHome("~/kubecm_vault"))
	assert.Equal(t, "/abs/path", ExpandHome("/abs/path"))
	assert.Equal(t, "~user/x", ExpandHome("~user/x"))
}

func TestReadSettingsFileRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("vault_dri = \"/typo\"\n"), 0o600))

	_, err := ReadSettingsFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vault_dri")
}

func TestWriteSettingsFileLeavesNoTempFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "kubecm")
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, WriteSettingsFile(path, &Settings{VaultDir: "/a"}))
	require.NoError(t, WriteSettingsFile(path, &Settings{VaultDir: "/b"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "config.toml", entries[0].Name())

	loaded, err := ReadSettingsFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/b", loaded.VaultDir)
}
