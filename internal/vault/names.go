package vault

import (
	"strings"

	kerrors "github.com/PolarWolf314/kubecm/internal/errors"
)

// ValidateSlotName rejects names that cannot be a single directory under
// the vault root.
func ValidateSlotName(name string) error {
	if strings.TrimSpace(name) == "" {
		return kerrors.ErrMissingConfigName
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return kerrors.Newf(kerrors.ErrInvalidSlotName, "invalid configuration name %q", name)
	}
	return nil
}
