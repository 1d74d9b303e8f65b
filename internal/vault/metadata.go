package vault

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	kerrors "github.com/PolarWolf314/kubecm/internal/errors"
)

const (
	// MetadataPrefix starts the name of every metadata marker.
	MetadataPrefix = ".config.kcv"

	// ConfigFileName is the name of the kubeconfig copy inside a slot.
	ConfigFileName = "config"

	// StatusInitialized is the only status kubecm writes.
	StatusInitialized = "initialized"
)

// Metadata is the parsed content of a slot's marker file.
type Metadata struct {
	Slot          string
	InitializedAt time.Time
	Status        string
}

// MetadataFileName returns .config.kcv.<slot>.
func MetadataFileName(slot string) string {
	return MetadataPrefix + "." + slot
}

// SlotFromMetadataFileName strips the prefix and its separator. ok is
// false when name is not a marker.
func SlotFromMetadataFileName(name string) (slot string, ok bool) {
	if !strings.HasPrefix(name, MetadataPrefix) {
		return "", false
	}
	rest := name[len(MetadataPrefix):]
	if rest == "" {
		return "", true
	}
	return rest[1:], true
}

// FormatMetadata renders <unix-seconds>|<status>.
func FormatMetadata(at time.Time, status string) string {
	return fmt.Sprintf("%d|%s", at.Unix(), status)
}

// ParseMetadata parses marker content written by FormatMetadata.
func ParseMetadata(slot, content string) (*Metadata, error) {
	ts, status, found := strings.Cut(strings.TrimSpace(content), "|")
	if !found || status == "" {
		return nil, kerrors.Newf(kerrors.ErrInvalidMetadata, "metadata marker for slot %s is malformed", slot)
	}
	seconds, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return nil, kerrors.Newf(kerrors.ErrInvalidMetadata, "metadata marker for slot %s has malformed timestamp %q", slot, ts)
	}
	return &Metadata{
		Slot:          slot,
		InitializedAt: time.Unix(seconds, 0),
		Status:        status,
	}, nil
}
