package workflows

import (
	"github.com/spf13/afero"

	"github.com/PolarWolf314/kubecm/internal/audit"
	"github.com/PolarWolf314/kubecm/internal/configs"
	"github.com/PolarWolf314/kubecm/internal/fuzzy"
	logger "github.com/PolarWolf314/kubecm/internal/logging"
	"github.com/PolarWolf314/kubecm/internal/prompt"
	"github.com/PolarWolf314/kubecm/internal/vault"
)

// Env carries the collaborators shared by every workflow.
type Env struct {
	Store    *vault.Store
	Detector *vault.Detector
	Prompter prompt.Prompter
	Logger   logger.Logger
}

// NewEnv builds an Env over fsys using the ssdeep hasher.
func NewEnv(fsys afero.Fs, settings *configs.Settings, prompter prompt.Prompter, log logger.Logger) *Env {
	store := vault.NewStore(fsys, settings)
	return &Env{
		Store:    store,
		Detector: vault.NewDetector(store, fuzzy.NewSSDeep()),
		Prompter: prompter,
		Logger:   log,
	}
}

// record appends an audit entry for a completed operation.
func (e *Env) record(op, slot string, fill func(*audit.Entry)) {
	entry := audit.LogWithUser(op)
	entry.Slot = slot
	if fill != nil {
		fill(&entry)
	}
	audit.Log(e.Store.Fs(), e.Store.Root(), entry)
}
