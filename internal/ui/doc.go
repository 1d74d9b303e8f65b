// Package ui provides semantic text formatting for kubecm output.
//
// Formatters render with color when the terminal supports it and fall
// back to plain text decorations when NO_COLOR is set or color is
// unavailable.
//
//	ui.Slot.Sprint("prod")                 // Vault slot names
//	ui.Path.Sprint("~/.kube/config")       // File paths
//	ui.Code.Sprint("kubecm backup prod")   // Commands
//	ui.Success.Sprint("✓")
//	ui.Error.Sprint("✗")
//	ui.Warning.Sprint("⚠")
//	ui.Info.Sprint("→")
//	ui.Muted.Sprint("uninitialized")
//
// Without color:
//   - Code: `backticks`
//   - Slot: 'single quotes'
//   - Muted: (parentheses)
//   - Others: no decoration
package ui
