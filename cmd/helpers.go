package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/PolarWolf314/kubecm/internal/configs"
	kerrors "github.com/PolarWolf314/kubecm/internal/errors"
	"github.com/PolarWolf314/kubecm/internal/fuzzy"
	"github.com/PolarWolf314/kubecm/internal/prompt"
	"github.com/PolarWolf314/kubecm/internal/ui"
	"github.com/PolarWolf314/kubecm/internal/vault"
	"github.com/PolarWolf314/kubecm/internal/workflows"
)

// UsageHint is attached to every error shown to the user.
const UsageHint = "(try '-h' to review usage)"

// errReported marks errors whose message has already been printed.
var errReported = errors.New("error already reported")

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// spinner.FinalMSG values do not need trailing newlines. The cleanup function
// calls ui.EnsureNewline() on the final message before printing it.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if !verbose && !debug {
			s.Stop()
		}

		// Printed with fmt so tests can capture it.
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// newEnv resolves settings for cmd and builds the workflow environment.
func newEnv(cmd *cobra.Command) (*workflows.Env, error) {
	settingsFile, err := configs.SettingsFilePath()
	if err != nil {
		Logger.Debugf("No settings file location: %v", err)
		settingsFile = ""
	}

	settings, err := configs.Load(configs.LoadOptions{
		Flags:        cmd.Flags(),
		SettingsFile: settingsFile,
	})
	if err != nil {
		return nil, err
	}
	Logger.Debugf("Active configuration: %s", settings.ActiveConfigPath)
	Logger.Debugf("Vault directory: %s", settings.VaultDir)

	env := workflows.NewEnv(fsys, settings, currentPrompter(), Logger)
	if exactMatch {
		Logger.Debugf("Comparing configurations by exact digest")
		env.Detector = vault.NewDetector(env.Store, fuzzy.Digest{})
	}
	return env, nil
}

func currentPrompter() prompt.Prompter {
	if prompter != nil {
		return prompter
	}
	if !prompt.Interactive() {
		Logger.Warnf("stdin is not a terminal, answers are read from piped input")
	}
	return prompt.Stdio()
}

// reported marks err as already printed so Execute does not print it twice.
func reported(err error) error {
	return errors.Mark(err, errReported)
}

func isReported(err error) bool {
	return errors.Is(err, errReported)
}

// formatError renders err and its hints for the terminal.
func formatError(err error) string {
	Logger.Errorf("%+v", err)

	if kerrors.Kind(err) == kerrors.ErrIO {
		err = errors.WithHint(err, "Check that the vault directory and kubeconfig are writable")
	}
	err = errors.WithHint(err, UsageHint)

	var b strings.Builder
	b.WriteString(ui.Error.Sprint("✗") + " " + err.Error())
	if hints := errors.FlattenHints(err); hints != "" {
		for _, hint := range strings.Split(hints, "\n") {
			if strings.TrimSpace(hint) == "" || strings.HasPrefix(hint, "--") {
				continue
			}
			b.WriteString("\n" + ui.Info.Sprint("→") + " " + hint)
		}
	}
	return b.String()
}
