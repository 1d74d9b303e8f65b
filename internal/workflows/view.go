package workflows

import (
	"context"

	"github.com/PolarWolf314/kubecm/internal/vault"
)

// ViewOptions configures the view workflow.
type ViewOptions struct {
	// Detailed loads each slot's metadata and kubeconfig context.
	Detailed bool
}

// SlotInfo describes one initialized slot.
type SlotInfo struct {
	Name string

	// Populated only for detailed views. Metadata is nil when the slot's
	// own marker cannot be parsed.
	Metadata       *vault.Metadata
	CurrentContext string
	Contexts       int
}

// ViewResult contains the outcome of a view operation.
type ViewResult struct {
	VaultDir string

	// Slots are in filesystem walk order.
	Slots []SlotInfo
}

// View lists every slot that has a metadata marker. An empty or missing
// vault yields no slots and no error.
func View(ctx context.Context, env *Env, opts ViewOptions) (*ViewResult, error) {
	result := &ViewResult{VaultDir: env.Store.Root()}

	for name := range env.Store.ListInitializedSlots() {
		info := SlotInfo{Name: name}
		if opts.Detailed {
			md, err := env.Store.ReadMetadata(name)
			if err != nil {
				env.Logger.Debugf("Skipping metadata for %s: %v", name, err)
			} else {
				info.Metadata = md
			}
			info.CurrentContext, info.Contexts = env.Store.CurrentContext(name)
		}
		result.Slots = append(result.Slots, info)
	}

	env.Logger.Debugf("Found %d initialized slot(s) in %s", len(result.Slots), result.VaultDir)
	return result, nil
}
