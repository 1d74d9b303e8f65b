package workflows

import (
	"context"

	"github.com/PolarWolf314/kubecm/internal/audit"
	"github.com/PolarWolf314/kubecm/internal/vault"
)

// BackupOptions configures the backup workflow.
type BackupOptions struct {
	// Name is the slot to store the active kubeconfig in.
	Name string
}

// BackupResult contains the outcome of a backup operation.
type BackupResult struct {
	Slot         string
	SlotDir      string
	ConfigPath   string
	Source       string
	MetadataPath string
}

// Backup copies the active kubeconfig into the named slot and declares it.
// An existing slot's copy and marker are overwritten.
//
// Returns ErrMissingConfigName if the name is empty.
// Returns ErrActiveConfigNotFound if there is no active kubeconfig.
func Backup(ctx context.Context, env *Env, opts BackupOptions) (*BackupResult, error) {
	if err := vault.ValidateSlotName(opts.Name); err != nil {
		return nil, err
	}
	result, err := backup(env, opts.Name)
	if err != nil {
		return nil, err
	}
	env.record("backup", opts.Name, func(e *audit.Entry) { e.Source = result.Source })
	return result, nil
}

func backup(env *Env, name string) (*BackupResult, error) {
	dir, err := env.Store.EnsureSlotDir(name)
	if err != nil {
		return nil, err
	}
	env.Logger.Infof("Generated config vault: %s", dir)

	if err := env.Store.CopyActiveInto(dir); err != nil {
		return nil, err
	}
	env.Logger.Infof("Cloning %s as %s", env.Store.ActiveConfigPath(), env.Store.SlotConfigPath(name))

	declared, err := declare(env, name)
	if err != nil {
		return nil, err
	}

	return &BackupResult{
		Slot:         name,
		SlotDir:      dir,
		ConfigPath:   env.Store.SlotConfigPath(name),
		Source:       env.Store.ActiveConfigPath(),
		MetadataPath: declared.MetadataPath,
	}, nil
}
