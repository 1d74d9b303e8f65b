package vault

import (
	"github.com/cockroachdb/errors"

	"github.com/PolarWolf314/kubecm/internal/fuzzy"
)

// Detector decides whether the active kubeconfig already has a copy in
// the vault.
type Detector struct {
	store  *Store
	hasher fuzzy.Hasher
}

// NewDetector returns a Detector comparing fingerprints with hasher.
func NewDetector(store *Store, hasher fuzzy.Hasher) *Detector {
	return &Detector{store: store, hasher: hasher}
}

// Fingerprint hashes the file at path.
func (d *Detector) Fingerprint(path string) (fuzzy.Fingerprint, error) {
	data, err := d.store.ReadFile(path)
	if err != nil {
		return fuzzy.Fingerprint{}, err
	}
	fp, err := d.hasher.Fingerprint(data)
	if err != nil {
		return fuzzy.Fingerprint{}, errors.Wrapf(err, "fingerprinting %s", path)
	}
	return fp, nil
}

// IsSimilar reports whether two fingerprints describe the same content.
func (d *Detector) IsSimilar(a, b fuzzy.Fingerprint) bool {
	return d.hasher.IsSimilar(a, b)
}

// IsActiveConfigBackedUp scans every config file in the vault and reports
// whether any matches the active kubeconfig.
func (d *Detector) IsActiveConfigBackedUp() (bool, error) {
	_, found, err := d.MatchingSlot()
	return found, err
}

// MatchingSlot returns the first slot whose config copy matches the active
// kubeconfig.
func (d *Detector) MatchingSlot() (slot string, found bool, err error) {
	active, err := d.Fingerprint(d.store.ActiveConfigPath())
	if err != nil {
		return "", false, err
	}
	for path := range d.store.ListConfigFiles() {
		stored, err := d.Fingerprint(path)
		if err != nil {
			return "", false, err
		}
		if d.hasher.IsSimilar(active, stored) {
			return d.store.SlotOf(path), true, nil
		}
	}
	return "", false, nil
}
