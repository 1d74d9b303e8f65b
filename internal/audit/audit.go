package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/PolarWolf314/kubecm/internal/utils"
)

// FileName is the audit trail's name inside the vault root. It starts with
// neither "config" nor the metadata prefix, so vault scans ignore it.
const FileName = ".kubecm-audit.jsonl"

// TimestampFormat is RFC3339 with microseconds, always UTC.
const TimestampFormat = "2006-01-02T15:04:05.000000Z"

// Entry represents a single audit log entry.
type Entry struct {
	ID        string `json:"id"`
	Timestamp string `json:"ts"`
	User      string `json:"user"` // user@host performing the action.
	Operation string `json:"op"`

	Slot   string `json:"slot,omitempty"`   // Slot acted on.
	Source string `json:"source,omitempty"` // For backup/init: active config copied.
	Target string `json:"target,omitempty"` // For activate: file overwritten.
}

// Log appends an entry to the vault's audit log.
// Failures are ignored; operations never fail because auditing did.
func Log(fsys afero.Fs, vaultDir string, entry Entry) {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format(TimestampFormat)
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	if ok, err := afero.DirExists(fsys, vaultDir); err != nil || !ok {
		return
	}

	f, err := fsys.OpenFile(LogPath(vaultDir), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	_, _ = f.Write(append(data, '\n'))
}

// LogWithUser returns an entry for op with the current user@host filled in.
func LogWithUser(op string) Entry {
	return Entry{Operation: op, User: utils.CurrentActor()}
}

// LogPath returns the path to the audit log file.
func LogPath(vaultDir string) string {
	return filepath.Join(vaultDir, FileName)
}

// ReadEntries reads all entries from the audit log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries(fsys afero.Fs, vaultDir string) ([]Entry, error) {
	data, err := afero.ReadFile(fsys, LogPath(vaultDir))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
