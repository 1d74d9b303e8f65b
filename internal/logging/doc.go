// Package logger provides leveled console output for kubecm commands.
//
// # Verbosity Levels
//
//   - --verbose: shows info and warning messages
//   - --debug: shows all messages including debug details
//
// Without flags only success lines and critical warnings are printed.
//
// # Log Methods
//
//	Logger.Infof()          // Shown with --verbose or --debug
//	Logger.Debugf()         // Shown only with --debug
//	Logger.Warnf()          // Shown with --verbose or --debug
//	Logger.WarnfAlways()    // Always shown
//	Logger.Successf()       // Always shown
//	Logger.Errorf()         // Shown with --debug
//	Logger.ErrorfAndReturn() // Errorf, then returns the message as an error
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Successf("Activated Configuration from Vault: %s", name)
//
// Commands create a logger in their PersistentPreRun and hand it to
// workflows through workflows.Env.
package logger
