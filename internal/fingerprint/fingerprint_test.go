package fingerprint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytes_Deterministic(t *testing.T) {
	a := Bytes([]byte("survival manual"))
	b := Bytes([]byte("survival manual"))
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestBytes_KnownVector(t *testing.T) {
	// SHA-256 of the empty string.
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		Bytes(nil))
}

func TestFile_MatchesBytes(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "doc.pdf")
	content := []byte("%PDF-1.4 fake content for hashing")
	require.NoError(t, os.WriteFile(path, content, 0644))

	got, err := File(path)
	require.NoError(t, err)
	assert.Equal(t, Bytes(content), got)
}

func TestFile_Missing(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "absent.pdf"))
	assert.Error(t, err)
}
