package workflows

import (
	"context"

	"github.com/PolarWolf314/kubecm/internal/audit"
	kerrors "github.com/PolarWolf314/kubecm/internal/errors"
	"github.com/PolarWolf314/kubecm/internal/vault"
)

// Prompts shown while activating over an unstored configuration.
const (
	BackupConfirmQuestion = "Proceed?"
	BackupNamePrompt      = "Name the current configuration: "
)

// ActivateOptions configures the activate workflow.
type ActivateOptions struct {
	// Name is the slot to restore.
	Name string

	// AssumeYes skips the backup confirmation. The backup name is still read
	// from the prompter.
	AssumeYes bool
}

// ActivateResult contains the outcome of an activate operation.
type ActivateResult struct {
	Slot   string
	Target string

	// MetadataPath is the slot's marker, empty when it has none.
	MetadataPath string

	// BackedUpAs names the slot the previous active kubeconfig was stored in
	// before activation, empty when no backup was needed.
	BackedUpAs string
}

// Activate restores the named slot over the active kubeconfig.
//
// When an active kubeconfig exists and no vault copy matches it, the user
// must agree to back it up under a new name first.
//
// Returns ErrBackupRequired if the user declines the backup.
// Returns ErrMissingConfigName if the backup name is empty.
// Returns ErrSlotConfigNotFound if the slot has no config copy; the active
// kubeconfig is not modified in that case.
func Activate(ctx context.Context, env *Env, opts ActivateOptions) (*ActivateResult, error) {
	if err := vault.ValidateSlotName(opts.Name); err != nil {
		return nil, err
	}

	result := &ActivateResult{
		Slot:   opts.Name,
		Target: env.Store.ActiveConfigPath(),
	}

	// Informational only; a slot without a marker can still be activated.
	if path, err := env.Store.FindMetadataFile(opts.Name); err == nil {
		env.Logger.Debugf("Found file %s", path)
		result.MetadataPath = path
	} else {
		env.Logger.Debugf("No metadata for slot %s: %v", opts.Name, err)
	}

	backedUpAs, err := ensureActiveStored(env, opts.AssumeYes)
	if err != nil {
		return nil, err
	}
	result.BackedUpAs = backedUpAs

	if err := env.Store.RestoreSlot(opts.Name); err != nil {
		return nil, err
	}

	env.record("activate", opts.Name, func(e *audit.Entry) { e.Target = result.Target })
	return result, nil
}

// ensureActiveStored backs up an active kubeconfig that has no match in the
// vault. It returns the new slot name, or "" when nothing was stored.
func ensureActiveStored(env *Env, assumeYes bool) (string, error) {
	exists, err := env.Store.ActiveConfigExists()
	if err != nil || !exists {
		return "", err
	}

	stored, err := env.Detector.IsActiveConfigBackedUp()
	if err != nil {
		return "", err
	}
	if stored {
		env.Logger.Debugf("Active configuration already stored in the vault")
		return "", nil
	}

	env.Logger.WarnfAlways("First, we need to create a backup of the current configuration!")
	if !assumeYes {
		ok, err := env.Prompter.Confirm(BackupConfirmQuestion)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", kerrors.ErrBackupRequired
		}
	}

	name, err := env.Prompter.ReadLine(BackupNamePrompt)
	if err != nil {
		return "", err
	}
	if err := vault.ValidateSlotName(name); err != nil {
		return "", err
	}

	result, err := backup(env, name)
	if err != nil {
		return "", err
	}
	env.record("backup", name, func(e *audit.Entry) { e.Source = result.Source })
	return name, nil
}
