package workflows

import (
	"context"

	"github.com/PolarWolf314/kubecm/internal/audit"
	"github.com/PolarWolf314/kubecm/internal/vault"
)

// InitNamePrompt asks for the slot name of the current configuration.
const InitNamePrompt = "What is the name of the current configuration?: "

// InitResult contains the outcome of an init operation.
type InitResult struct {
	Slot string

	// Skipped is true when there is no active kubeconfig to store.
	Skipped bool

	// AlreadyExisted is true when the slot was present and left untouched.
	AlreadyExisted bool

	ConfigPath string
}

// Init stores the active kubeconfig under a name read from the prompter.
//
// It does nothing when no active kubeconfig exists. A slot that already
// exists is reported as success without modification.
func Init(ctx context.Context, env *Env) (*InitResult, error) {
	exists, err := env.Store.ActiveConfigExists()
	if err != nil {
		return nil, err
	}
	if !exists {
		env.Logger.Infof("No active configuration at %s", env.Store.ActiveConfigPath())
		return &InitResult{Skipped: true}, nil
	}

	name, err := env.Prompter.ReadLine(InitNamePrompt)
	if err != nil {
		return nil, err
	}
	if err := vault.ValidateSlotName(name); err != nil {
		return nil, err
	}

	result := &InitResult{Slot: name, ConfigPath: env.Store.SlotConfigPath(name)}

	slotExists, err := env.Store.SlotExists(name)
	if err != nil {
		return nil, err
	}
	if slotExists {
		result.AlreadyExisted = true
		return result, nil
	}

	if _, err := backup(env, name); err != nil {
		return nil, err
	}

	env.record("init", name, func(e *audit.Entry) { e.Source = env.Store.ActiveConfigPath() })
	return result, nil
}
