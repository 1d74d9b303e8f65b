package workflows

import (
	"context"
	"path/filepath"

	kerrors "github.com/PolarWolf314/kubecm/internal/errors"
	"github.com/PolarWolf314/kubecm/internal/vault"
)

// DeclareOptions configures the declare workflow.
type DeclareOptions struct {
	// Name is the slot to mark as initialized.
	Name string
}

// DeclareResult contains the outcome of a declare operation.
type DeclareResult struct {
	Slot         string
	MetadataPath string
}

// Declare writes the metadata marker for an existing slot directory.
//
// Returns ErrMissingConfigName or ErrInvalidSlotName for unusable names.
// Returns ErrSlotNotFound if the slot directory does not exist.
func Declare(ctx context.Context, env *Env, opts DeclareOptions) (*DeclareResult, error) {
	if err := vault.ValidateSlotName(opts.Name); err != nil {
		return nil, err
	}
	result, err := declare(env, opts.Name)
	if err != nil {
		return nil, err
	}
	env.record("declare", opts.Name, nil)
	return result, nil
}

func declare(env *Env, name string) (*DeclareResult, error) {
	exists, err := env.Store.SlotExists(name)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, kerrors.Newf(kerrors.ErrSlotNotFound, "config source directory %s doesn't exist or no configuration was found", name)
	}

	env.Logger.Debugf("Writing metadata for slot %s", name)
	if err := env.Store.WriteMetadata(name, vault.StatusInitialized); err != nil {
		return nil, err
	}

	return &DeclareResult{
		Slot:         name,
		MetadataPath: filepath.Join(env.Store.SlotDir(name), vault.MetadataFileName(name)),
	}, nil
}
