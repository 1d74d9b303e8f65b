package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/PolarWolf314/kubecm/internal/prompt"
)

const (
	testVault  = "/home/tester/kubecm_vault"
	testActive = "/home/tester/.kube/config"
)

// cliEnv is an isolated CLI run: an in-memory vault, a scripted prompter and
// a temporary settings directory.
type cliEnv struct {
	fs        afero.Fs
	prompter  *prompt.Scripted
	configDir string
}

func setupCLITest(t *testing.T) *cliEnv {
	t.Helper()

	ResetGlobalState()
	t.Cleanup(ResetGlobalState)

	configDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configDir)
	t.Setenv("KUBECM_KUBECONFIG", "")
	t.Setenv("KUBECM_VAULT_DIR", "")
	os.Unsetenv("KUBECM_KUBECONFIG")
	os.Unsetenv("KUBECM_VAULT_DIR")

	env := &cliEnv{
		fs:        afero.NewMemMapFs(),
		prompter:  &prompt.Scripted{},
		configDir: configDir,
	}
	SetFs(env.fs)
	SetPrompter(env.prompter)
	return env
}

// run executes kubecm with args against the test vault.
func (e *cliEnv) run(args ...string) (string, error) {
	args = append(args, "--vault-dir", testVault, "--kubeconfig", testActive)
	return e.runRaw(args...)
}

// runRaw executes kubecm with exactly args.
func (e *cliEnv) runRaw(args ...string) (string, error) {
	ResetGlobalState()
	SetFs(e.fs)
	SetPrompter(e.prompter)
	if args == nil {
		// nil makes cobra fall back to os.Args.
		args = []string{}
	}
	RootCmd.SetArgs(args)
	return captureOutput(func() error {
		return RootCmd.Execute()
	})
}

func (e *cliEnv) write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, e.fs.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, afero.WriteFile(e.fs, path, []byte(content), 0o600))
}

func (e *cliEnv) read(t *testing.T, path string) string {
	t.Helper()
	data, err := afero.ReadFile(e.fs, path)
	require.NoError(t, err)
	return string(data)
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	stdoutChan := make(chan string, 1)
	stderrChan := make(chan string, 1)

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stdoutReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		stdoutChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stderrReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		stderrChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	return <-stdoutChan + <-stderrChan, err
}
