package cmd

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PolarWolf314/kubecm/internal/configs"
	kerrors "github.com/PolarWolf314/kubecm/internal/errors"
)

const kubeconfigProd = `apiVersion: v1
kind: Config
current-context: prod-admin
contexts:
- name: prod-admin
  context:
    cluster: prod
    user: admin
- name: prod-readonly
  context:
    cluster: prod
    user: viewer
`

func TestBackupCommand(t *testing.T) {
	env := setupCLITest(t)
	env.write(t, testActive, kubeconfigProd)

	output, err := env.run("backup", "prod")
	require.NoError(t, err)
	assert.Contains(t, output, "Initialize for prod is Complete!")
	assert.Equal(t, kubeconfigProd, env.read(t, testVault+"/prod/config"))

	exists, err := afero.Exists(env.fs, testVault+"/prod/.config.kcv.prod")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestBackupCommandWithoutActiveConfig(t *testing.T) {
	env := setupCLITest(t)

	output, err := env.run("backup", "prod")
	require.Error(t, err)
	assert.True(t, kerrors.Is(err, kerrors.ErrNotFound))
	assert.Contains(t, output, "active configuration "+testActive+" not found")
	assert.Contains(t, output, UsageHint)
}

func TestBackupCommandRejectsPathNames(t *testing.T) {
	env := setupCLITest(t)
	env.write(t, testActive, "ctxA")

	_, err := env.run("backup", "../escape")
	require.Error(t, err)
	assert.True(t, kerrors.Is(err, kerrors.ErrInvalidSlotName))
}

func TestDeclareCommandRepairsSlot(t *testing.T) {
	env := setupCLITest(t)
	env.write(t, testVault+"/legacy/config", "ctxL")

	output, err := env.run("view")
	require.NoError(t, err)
	assert.Contains(t, output, "No configurations found.")

	output, err = env.run("declare", "legacy")
	require.NoError(t, err)
	assert.Contains(t, output, "Initialize for legacy is Complete!")

	output, err = env.run("view")
	require.NoError(t, err)
	assert.Contains(t, output, "legacy")
}

func TestActivateCommandDeclined(t *testing.T) {
	env := setupCLITest(t)
	env.write(t, testActive, "ctxA")
	_, err := env.run("backup", "prod")
	require.NoError(t, err)

	env.write(t, testActive, "ctxB")
	env.prompter.Confirms = []bool{false}

	output, err := env.run("activate", "prod")
	require.Error(t, err)
	assert.True(t, kerrors.Is(err, kerrors.ErrBackupRequired))
	assert.Contains(t, output, UsageHint)
	assert.Equal(t, "ctxB", env.read(t, testActive))
}

func TestActivateCommandYesSkipsConfirmation(t *testing.T) {
	env := setupCLITest(t)
	env.write(t, testActive, "ctxA")
	_, err := env.run("backup", "prod")
	require.NoError(t, err)

	env.write(t, testActive, "ctxB")
	env.prompter.Lines = []string{"staging"}

	output, err := env.run("activate", "prod", "--yes")
	require.NoError(t, err)
	assert.Contains(t, output, "Initialize for staging is Complete!")
	assert.Contains(t, output, "Activated Configuration from Vault: prod")
	assert.Empty(t, env.prompter.Confirms)
	assert.Equal(t, "ctxA", env.read(t, testActive))
}

func TestActivateCommandAlreadyStored(t *testing.T) {
	env := setupCLITest(t)
	env.write(t, testActive, "ctxA")
	_, err := env.run("backup", "prod")
	require.NoError(t, err)
	env.write(t, testVault+"/staging/config", "ctxS")

	output, err := env.run("activate", "staging")
	require.NoError(t, err)
	assert.NotContains(t, output, "First, we need")
	assert.Equal(t, "ctxS", env.read(t, testActive))
}

func TestActivateCommandMissingSlot(t *testing.T) {
	env := setupCLITest(t)
	env.write(t, testActive, "ctxA")
	_, err := env.run("backup", "prod")
	require.NoError(t, err)

	output, err := env.run("activate", "ghost")
	require.Error(t, err)
	assert.True(t, kerrors.Is(err, kerrors.ErrSlotConfigNotFound))
	assert.Contains(t, output, "unable to find configuration source ghost from vault")
	assert.Equal(t, "ctxA", env.read(t, testActive))
}

func TestViewLongCommand(t *testing.T) {
	env := setupCLITest(t)
	env.write(t, testActive, kubeconfigProd)
	_, err := env.run("backup", "prod")
	require.NoError(t, err)

	output, err := env.run("view", "--long")
	require.NoError(t, err)
	assert.Contains(t, output, "prod-admin")
	assert.Contains(t, output, "initialized")
	assert.Contains(t, output, "2")
}

func TestInitCommand(t *testing.T) {
	env := setupCLITest(t)
	env.write(t, testActive, "ctxA")
	env.prompter.Lines = []string{"home"}

	output, err := env.run("init")
	require.NoError(t, err)
	assert.Contains(t, output, "Initialize for home is Complete!")
	assert.Equal(t, "ctxA", env.read(t, testVault+"/home/config"))

	env.prompter.Lines = []string{"home"}
	output, err = env.run("init")
	require.NoError(t, err)
	assert.Contains(t, output, "Configuration home was already created")
}

func TestInitCommandWithoutActiveConfig(t *testing.T) {
	env := setupCLITest(t)

	output, err := env.run("--action", "init")
	require.NoError(t, err)
	assert.Contains(t, output, "No active configuration found")
}

func TestShowCommand(t *testing.T) {
	env := setupCLITest(t)
	env.write(t, testActive, "ctxA")

	output, err := env.run("show")
	require.NoError(t, err)
	assert.Contains(t, output, "not stored in the vault")

	_, err = env.run("backup", "prod")
	require.NoError(t, err)

	output, err = env.run("show")
	require.NoError(t, err)
	assert.Contains(t, output, "Stored in the vault as")
	assert.Contains(t, output, "prod")
}

func TestLogCommand(t *testing.T) {
	env := setupCLITest(t)

	output, err := env.run("log")
	require.NoError(t, err)
	assert.Contains(t, output, "No audit log entries found.")

	env.write(t, testActive, "ctxA")
	_, err = env.run("backup", "prod")
	require.NoError(t, err)
	_, err = env.run("declare", "prod")
	require.NoError(t, err)

	output, err = env.run("log")
	require.NoError(t, err)
	assert.Contains(t, output, "backup")
	assert.Contains(t, output, "declare")

	output, err = env.run("log", "--operation", "activate")
	require.NoError(t, err)
	assert.Contains(t, output, "No audit log entries found matching the filters.")
}

func TestConfigInitAndShow(t *testing.T) {
	env := setupCLITest(t)
	customVault := filepath.Join(t.TempDir(), "vault")

	output, err := env.runRaw("config", "init", "--vault-dir", customVault)
	require.NoError(t, err)
	assert.Contains(t, output, "Settings written to")

	settingsPath := filepath.Join(env.configDir, "kubecm", "config.toml")
	saved, err := configs.ReadSettingsFile(settingsPath)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, customVault, saved.VaultDir)

	output, err = env.runRaw("config", "show")
	require.NoError(t, err)
	assert.Contains(t, output, customVault)

	output, err = env.runRaw("config", "init")
	require.NoError(t, err)
	assert.Contains(t, output, "already exists")
}

func TestEnvironmentOverridesSettingsFile(t *testing.T) {
	env := setupCLITest(t)
	settingsPath := filepath.Join(env.configDir, "kubecm", "config.toml")
	require.NoError(t, configs.WriteSettingsFile(settingsPath, &configs.Settings{VaultDir: "/from/file"}))
	t.Setenv("KUBECM_VAULT_DIR", "/from/env")

	output, err := env.runRaw("config", "show")
	require.NoError(t, err)
	assert.Contains(t, output, "/from/env")
	assert.NotContains(t, output, "/from/file")
}

func TestShowCommandExact(t *testing.T) {
	env := setupCLITest(t)
	env.write(t, testActive, kubeconfigProd)
	_, err := env.run("backup", "prod")
	require.NoError(t, err)

	output, err := env.run("show", "--exact")
	require.NoError(t, err)
	assert.Contains(t, output, "Stored in the vault as")

	env.write(t, testActive, kubeconfigProd+"# edited\n")
	output, err = env.run("show", "--exact")
	require.NoError(t, err)
	assert.Contains(t, output, "not stored in the vault")
}
