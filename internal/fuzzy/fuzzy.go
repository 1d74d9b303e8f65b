// Package fuzzy fingerprints configuration files so near-duplicate copies
// can be recognised without byte-exact comparison.
package fuzzy

import (
	"bytes"

	"github.com/glaslos/ssdeep"
	"golang.org/x/crypto/blake2b"
)

// Fingerprint is a similarity-preserving digest of a file's content.
type Fingerprint struct {
	// Fuzzy is the ssdeep hash. Empty when the content is too small for
	// the algorithm to produce a meaningful hash.
	Fuzzy string

	// Digest is the BLAKE2b-256 sum of the content.
	Digest [blake2b.Size256]byte
}

// Hasher computes and compares fingerprints.
type Hasher interface {
	Fingerprint(data []byte) (Fingerprint, error)
	IsSimilar(a, b Fingerprint) bool
}

// DefaultThreshold is the lowest ssdeep score treated as a match.
const DefaultThreshold = 1

// SSDeep matches content by context-triggered piecewise hashing, falling
// back to exact digest equality when a fuzzy hash is unavailable.
type SSDeep struct {
	// Threshold is the minimum ssdeep score (0-100) reported as similar.
	// Zero means DefaultThreshold.
	Threshold int
}

// NewSSDeep returns an SSDeep hasher using DefaultThreshold.
func NewSSDeep() *SSDeep {
	return &SSDeep{Threshold: DefaultThreshold}
}

func (h *SSDeep) Fingerprint(data []byte) (Fingerprint, error) {
	fp := Fingerprint{Digest: blake2b.Sum256(data)}
	// ssdeep refuses small inputs; kubeconfigs often are, and the digest
	// still covers exact duplicates.
	if hash, err := ssdeep.FuzzyBytes(data); err == nil {
		fp.Fuzzy = hash
	}
	return fp, nil
}

func (h *SSDeep) IsSimilar(a, b Fingerprint) bool {
	if bytes.Equal(a.Digest[:], b.Digest[:]) {
		return true
	}
	if a.Fuzzy == "" || b.Fuzzy == "" {
		return false
	}
	score, err := ssdeep.Distance(a.Fuzzy, b.Fuzzy)
	if err != nil {
		return false
	}
	threshold := h.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return score >= threshold
}

// Digest matches byte-identical content only.
type Digest struct{}

func (Digest) Fingerprint(data []byte) (Fingerprint, error) {
	return Fingerprint{Digest: blake2b.Sum256(data)}, nil
}

func (Digest) IsSimilar(a, b Fingerprint) bool {
	return a.Digest == b.Digest
}
