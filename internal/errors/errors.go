package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Error kinds. Every error returned by the vault and workflow packages
// belongs to exactly one of these.
var (
	// ErrInvalidState indicates a missing argument, a missing slot, or a
	// declined confirmation.
	ErrInvalidState = errors.New("invalid state")

	// ErrNotFound indicates a file the operation depends on is absent.
	ErrNotFound = errors.New("not found")

	// ErrIO indicates the underlying filesystem operation failed.
	ErrIO = errors.New("i/o failure")
)

// Slot errors indicate issues with the name or presence of a vault slot.
var (
	// ErrMissingConfigName indicates no configuration name was supplied.
	ErrMissingConfigName = errors.New("missing configuration source name")

	// ErrInvalidSlotName indicates the name cannot be used as a slot directory.
	ErrInvalidSlotName = errors.New("invalid configuration name")

	// ErrSlotNotFound indicates the slot directory does not exist.
	ErrSlotNotFound = errors.New("config source directory doesn't exist or no configuration was found")

	// ErrInvalidAction indicates --action named an unknown operation.
	ErrInvalidAction = errors.New("invalid action")

	// ErrBackupRequired indicates the user declined to back up an unstored active configuration.
	ErrBackupRequired = errors.New("backup is required before proceeding")
)

// File errors indicate a configuration or metadata file could not be located or read.
var (
	// ErrActiveConfigNotFound indicates the active kubeconfig does not exist.
	ErrActiveConfigNotFound = errors.New("active configuration not found")

	// ErrSlotConfigNotFound indicates the slot holds no config copy.
	ErrSlotConfigNotFound = errors.New("unable to find configuration source from vault")

	// ErrMetadataNotFound indicates the slot has no metadata marker.
	ErrMetadataNotFound = errors.New("metadata marker not found")

	// ErrInvalidMetadata indicates a metadata marker is not in <timestamp>|<status> form.
	ErrInvalidMetadata = errors.New("metadata marker is malformed")

	// ErrNoAuditLog indicates the vault has no audit trail yet.
	ErrNoAuditLog = errors.New("no audit log found")
)

// kinds assigns each sentinel its kind. Sentinels never match one another.
var kinds = []struct {
	sentinel error
	kind     error
}{
	{ErrMissingConfigName, ErrInvalidState},
	{ErrInvalidSlotName, ErrInvalidState},
	{ErrSlotNotFound, ErrInvalidState},
	{ErrInvalidAction, ErrInvalidState},
	{ErrBackupRequired, ErrInvalidState},
	{ErrActiveConfigNotFound, ErrNotFound},
	{ErrSlotConfigNotFound, ErrNotFound},
	{ErrMetadataNotFound, ErrNotFound},
	{ErrNoAuditLog, ErrNotFound},
}

// Newf returns an error whose message is built from format and args and
// which matches sentinel (and therefore sentinel's kind) under Is.
func Newf(sentinel error, format string, args ...any) error {
	return &detailed{cause: errors.NewWithDepthf(1, format, args...), sentinel: sentinel}
}

// detailed replaces a sentinel's generic message with one naming the
// subject. It matches the sentinel both here and under the standard
// library's errors.Is.
type detailed struct {
	cause    error
	sentinel error
}

func (e *detailed) Error() string                 { return e.cause.Error() }
func (e *detailed) Unwrap() error                 { return e.cause }
func (e *detailed) Is(target error) bool          { return target == e.sentinel }
func (e *detailed) Format(s fmt.State, verb rune) { errors.FormatError(e, s, verb) }

// MarkIO wraps err with context and marks it as an ErrIO failure.
// It returns nil when err is nil.
func MarkIO(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return errors.Mark(errors.Wrapf(err, format, args...), ErrIO)
}

// Is reports whether any error in err's chain matches target. A kind target
// also matches every sentinel of that kind.
func Is(err, target error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, k := range kinds {
		if k.kind == target && errors.Is(err, k.sentinel) {
			return true
		}
	}
	return false
}

// Kind returns the kind err belongs to, or nil.
func Kind(err error) error {
	for _, kind := range []error{ErrInvalidState, ErrNotFound, ErrIO} {
		if Is(err, kind) {
			return kind
		}
	}
	return nil
}
