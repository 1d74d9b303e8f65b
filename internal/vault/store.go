package vault

import (
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"

	"github.com/PolarWolf314/kubecm/internal/configs"
	kerrors "github.com/PolarWolf314/kubecm/internal/errors"
)

// errStopWalk ends a walk early once the caller has what it needs.
var errStopWalk = errors.New("stop walk")

// Store is the filesystem-backed vault.
type Store struct {
	fs         afero.Fs
	root       string
	activePath string
	now        func() time.Time
}

// NewStore returns a Store rooted at settings.VaultDir.
func NewStore(fsys afero.Fs, settings *configs.Settings) *Store {
	return &Store{
		fs:         fsys,
		root:       settings.VaultDir,
		activePath: settings.ActiveConfigPath,
		now:        time.Now,
	}
}

// Fs returns the filesystem the store operates on.
func (s *Store) Fs() afero.Fs { return s.fs }

// Root returns the vault root directory.
func (s *Store) Root() string { return s.root }

// ActiveConfigPath returns the path of the active kubeconfig.
func (s *Store) ActiveConfigPath() string { return s.activePath }

// SlotDir returns <vault>/<name>.
func (s *Store) SlotDir(name string) string {
	return filepath.Join(s.root, name)
}

// SlotConfigPath returns <vault>/<name>/config.
func (s *Store) SlotConfigPath(name string) string {
	return filepath.Join(s.root, name, ConfigFileName)
}

// SlotExists reports whether the slot directory exists.
func (s *Store) SlotExists(name string) (bool, error) {
	ok, err := afero.DirExists(s.fs, s.SlotDir(name))
	if err != nil {
		return false, kerrors.MarkIO(err, "checking slot directory %s", s.SlotDir(name))
	}
	return ok, nil
}

// ActiveConfigExists reports whether the active kubeconfig is a regular file.
func (s *Store) ActiveConfigExists() (bool, error) {
	return s.isFile(s.activePath)
}

func (s *Store) isFile(path string) (bool, error) {
	info, err := s.fs.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, kerrors.MarkIO(err, "checking %s", path)
	}
	return info.Mode().IsRegular(), nil
}

// EnsureSlotDir creates the slot directory and any missing parents.
func (s *Store) EnsureSlotDir(name string) (string, error) {
	dir := s.SlotDir(name)
	if err := s.fs.MkdirAll(dir, 0o700); err != nil {
		return "", kerrors.MarkIO(err, "creating slot directory %s", dir)
	}
	return dir, nil
}

// CopyActiveInto copies the active kubeconfig to <slotDir>/config.
func (s *Store) CopyActiveInto(slotDir string) error {
	exists, err := s.ActiveConfigExists()
	if err != nil {
		return err
	}
	if !exists {
		return kerrors.Newf(kerrors.ErrActiveConfigNotFound, "active configuration %s not found", s.activePath)
	}
	return s.copyFile(s.activePath, filepath.Join(slotDir, ConfigFileName))
}

// WriteMetadata overwrites the slot's marker with <unix>|<status>.
func (s *Store) WriteMetadata(slot, status string) error {
	path := filepath.Join(s.SlotDir(slot), MetadataFileName(slot))
	content := FormatMetadata(s.now(), status)
	if err := afero.WriteFile(s.fs, path, []byte(content), 0o600); err != nil {
		return kerrors.MarkIO(err, "writing metadata %s", path)
	}
	return nil
}

// ReadMetadata reads and parses the slot's own marker.
func (s *Store) ReadMetadata(slot string) (*Metadata, error) {
	path := filepath.Join(s.SlotDir(slot), MetadataFileName(slot))
	data, err := afero.ReadFile(s.fs, path)
	if os.IsNotExist(err) {
		return nil, kerrors.Newf(kerrors.ErrMetadataNotFound, "metadata marker for slot %s not found", slot)
	}
	if err != nil {
		return nil, kerrors.MarkIO(err, "reading metadata %s", path)
	}
	return ParseMetadata(slot, string(data))
}

// FindMetadataFile returns the first marker file in the slot's subtree.
func (s *Store) FindMetadataFile(slot string) (string, error) {
	var found string
	err := afero.Walk(s.fs, s.SlotDir(slot), func(path string, info fs.FileInfo, err error) error {
		if err != nil || info == nil {
			return nil
		}
		if !info.IsDir() && strings.HasPrefix(info.Name(), MetadataPrefix) {
			found = path
			return errStopWalk
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStopWalk) {
		return "", kerrors.MarkIO(err, "searching slot %s", slot)
	}
	if found == "" {
		return "", kerrors.Newf(kerrors.ErrMetadataNotFound, "metadata marker for slot %s not found", slot)
	}
	return found, nil
}

// ListInitializedSlots yields the slot name of every metadata marker under
// the vault root. Each iteration walks the tree again; order follows the
// walk. Unreadable directories are skipped.
func (s *Store) ListInitializedSlots() iter.Seq[string] {
	return func(yield func(string) bool) {
		s.walkFiles(func(_ string, info fs.FileInfo) bool {
			slot, ok := SlotFromMetadataFileName(info.Name())
			if !ok {
				return true
			}
			return yield(slot)
		})
	}
}

// ListConfigFiles yields the path of every file under the vault root whose
// name starts with "config".
func (s *Store) ListConfigFiles() iter.Seq[string] {
	return func(yield func(string) bool) {
		s.walkFiles(func(path string, info fs.FileInfo) bool {
			if !strings.HasPrefix(info.Name(), ConfigFileName) {
				return true
			}
			return yield(path)
		})
	}
}

// walkFiles calls fn for every regular file under the root until fn
// returns false.
func (s *Store) walkFiles(fn func(path string, info fs.FileInfo) bool) {
	_ = afero.Walk(s.fs, s.root, func(path string, info fs.FileInfo, err error) error {
		if err != nil || info == nil || info.IsDir() {
			return nil
		}
		if !fn(path, info) {
			return errStopWalk
		}
		return nil
	})
}

// SlotOf returns the slot a path inside the vault belongs to.
func (s *Store) SlotOf(path string) string {
	rel, err := filepath.Rel(s.root, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ""
	}
	first, _, _ := strings.Cut(filepath.ToSlash(rel), "/")
	return first
}

// RestoreSlot overwrites the active kubeconfig with the slot's copy. The
// active file is left untouched when the slot has no copy.
func (s *Store) RestoreSlot(name string) error {
	src := s.SlotConfigPath(name)
	exists, err := s.isFile(src)
	if err != nil {
		return err
	}
	if !exists {
		return kerrors.Newf(kerrors.ErrSlotConfigNotFound, "unable to find configuration source %s from vault", name)
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.activePath), 0o700); err != nil {
		return kerrors.MarkIO(err, "creating %s", filepath.Dir(s.activePath))
	}
	return s.copyFile(src, s.activePath)
}

// ReadFile reads a file through the store's filesystem.
func (s *Store) ReadFile(path string) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, path)
	if os.IsNotExist(err) {
		return nil, errors.Mark(errors.Wrapf(err, "reading %s", path), kerrors.ErrNotFound)
	}
	if err != nil {
		return nil, kerrors.MarkIO(err, "reading %s", path)
	}
	return data, nil
}

// copyFile copies src to dst byte for byte, keeping src's permissions.
func (s *Store) copyFile(src, dst string) error {
	in, err := s.fs.Open(src)
	if err != nil {
		return kerrors.MarkIO(err, "opening %s", src)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return kerrors.MarkIO(err, "checking %s", src)
	}

	out, err := s.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return kerrors.MarkIO(err, "creating %s", dst)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return kerrors.MarkIO(err, "copying %s to %s", src, dst)
	}
	return kerrors.MarkIO(out.Close(), "closing %s", dst)
}

// WithClock replaces the clock used for metadata timestamps.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}
