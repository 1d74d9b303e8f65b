// Package configs resolves where kubecm finds the active kubeconfig and
// the vault.
//
// Two paths are configurable:
//
//   - kubeconfig: the active configuration file (default ~/.kube/config)
//   - vault_dir:  the vault root holding one directory per slot
//     (default ~/kubecm_vault)
//
// # Precedence
//
// Highest first:
//
//  1. Command-line flags (--kubeconfig, --vault-dir)
//  2. Environment (KUBECM_KUBECONFIG, KUBECM_VAULT_DIR)
//  3. Settings file (<user config dir>/kubecm/config.toml)
//  4. Defaults
//
// Layering is handled by viper. The settings file itself is TOML, read
// and written with LoadTOML and SaveTOML.
package configs
