// Package exitcode defines the process exit codes used by the CLI.
package exitcode

const (
	// Success indicates the command completed normally.
	Success = 0

	// UserError indicates bad arguments or a recoverable validation failure.
	UserError = 1

	// AuthError indicates a command requiring a session was run logged out,
	// or credentials were rejected.
	AuthError = 2

	// StorageError indicates the persistence layer failed.
	StorageError = 3
)
