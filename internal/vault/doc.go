// Package vault stores snapshots of the active kubeconfig in named slots.
//
// # Layout
//
//	<vault>/<slot>/config               copy of the kubeconfig
//	<vault>/<slot>/.config.kcv.<slot>   metadata marker: <unix>|<status>
//
// A slot counts as stored only when its metadata marker exists; a config
// copy alone is not listed.
//
// # Duplicate Detection
//
// Detector fingerprints the active configuration and every config file
// in the vault with a fuzzy.Hasher. The scan is linear in the number of
// files; vaults are small and human managed.
//
// All filesystem access goes through an afero.Fs so callers and tests can
// substitute an in-memory filesystem.
package vault
