// Package errors provides typed error values for kubecm.
//
// Errors come in three kinds, mirroring how a failure is reported to the
// user:
//
//   - ErrInvalidState: missing or unusable configuration name, missing
//     slot directory, declined backup confirmation
//   - ErrNotFound: the active kubeconfig or a slot's config copy is absent
//   - ErrIO: directory creation or copy failed in the filesystem
//
// Specific sentinels (ErrSlotNotFound, ErrBackupRequired, ...) each belong
// to one kind, so both checks work through Is:
//
//	if kerrors.Is(err, kerrors.ErrSlotConfigNotFound) { ... }
//	if kerrors.Is(err, kerrors.ErrNotFound) { ... }
//
// Newf builds a message naming the slot while keeping the sentinel:
//
//	return kerrors.Newf(kerrors.ErrSlotConfigNotFound, "unable to find configuration source %s from vault", name)
//
// Wrap filesystem failures with MarkIO:
//
//	if err := fs.MkdirAll(dir, 0o700); err != nil {
//	    return kerrors.MarkIO(err, "creating slot directory %s", dir)
//	}
package errors
