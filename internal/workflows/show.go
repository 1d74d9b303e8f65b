package workflows

import (
	"context"
)

// ShowResult describes the active kubeconfig relative to the vault.
type ShowResult struct {
	ActiveConfigPath string
	VaultDir         string
	ActiveExists     bool

	// StoredIn is the first slot whose copy matches the active kubeconfig.
	StoredIn string
	Stored   bool
}

// Show reports whether the active kubeconfig is already in the vault.
func Show(ctx context.Context, env *Env) (*ShowResult, error) {
	result := &ShowResult{
		ActiveConfigPath: env.Store.ActiveConfigPath(),
		VaultDir:         env.Store.Root(),
	}

	exists, err := env.Store.ActiveConfigExists()
	if err != nil {
		return nil, err
	}
	result.ActiveExists = exists
	if !exists {
		return result, nil
	}

	result.StoredIn, result.Stored, err = env.Detector.MatchingSlot()
	if err != nil {
		return nil, err
	}
	return result, nil
}
