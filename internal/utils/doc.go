// Package utils provides small operating system helpers shared by kubecm
// packages.
//
// # System Utilities
//
//   - GetUsername: returns the current system username
//   - GetHostname: returns the system hostname
//   - CurrentActor: returns user@host for audit entries
package utils
