package vault

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kerrors "github.com/PolarWolf314/kubecm/internal/errors"
)

func TestSlotFromMetadataFileName(t *testing.T) {
	tests := []struct {
		input  string
		slot   string
		marker bool
	}{
		{".config.kcv.prod", "prod", true},
		{".config.kcv.my-cluster.eu", "my-cluster.eu", true},
		{".config.kcv", "", true},
		{"config", "", false},
		{".kubecm-audit.jsonl", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			slot, ok := SlotFromMetadataFileName(tt.input)
			assert.Equal(t, tt.marker, ok)
			assert.Equal(t, tt.slot, slot)
		})
	}
}

func TestParseMetadata(t *testing.T) {
	md, err := ParseMetadata("prod", FormatMetadata(time.Unix(42, 0), StatusInitialized)+"\n")
	require.NoError(t, err)
	assert.Equal(t, int64(42), md.InitializedAt.Unix())
	assert.Equal(t, StatusInitialized, md.Status)

	for _, bad := range []string{"", "42", "42|", "yesterday|initialized"} {
		_, err := ParseMetadata("prod", bad)
		assert.ErrorIs(t, err, kerrors.ErrInvalidMetadata, "content %q", bad)
	}
}

func TestValidateSlotName(t *testing.T) {
	assert.NoError(t, ValidateSlotName("prod"))
	assert.NoError(t, ValidateSlotName("eu-west.staging"))

	assert.ErrorIs(t, ValidateSlotName(""), kerrors.ErrMissingConfigName)
	assert.ErrorIs(t, ValidateSlotName("   "), kerrors.ErrMissingConfigName)
	assert.ErrorIs(t, ValidateSlotName("\t\n"), kerrors.ErrMissingConfigName)
	assert.NoError(t, ValidateSlotName("..prod"))

	for _, bad := range []string{".", "..", "a/b", `a\b`, "../escape"} {
		err := ValidateSlotName(bad)
		assert.ErrorIs(t, err, kerrors.ErrInvalidSlotName, "name %q", bad)
		assert.True(t, kerrors.Is(err, kerrors.ErrInvalidState))
	}
}
