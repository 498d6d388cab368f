package filestore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStore_Save(t *testing.T) {
	root := t.TempDir()
	store, err := NewDiskStore(root)
	require.NoError(t, err)

	err = store.Save("report.csv", strings.NewReader("date,asset,amount\n"))
	assert.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "report.csv"))
	assert.NoError(t, err)
	assert.Equal(t, "date,asset,amount\n", string(data))
}

func TestDiskStore_Delete(t *testing.T) {
	root := t.TempDir()
	store, err := NewDiskStore(root)
	require.NoError(t, err)

	require.NoError(t, store.Save("report.csv", strings.NewReader("x")))

	assert.NoError(t, store.Delete("report.csv"))
	_, err = os.Stat(filepath.Join(root, "report.csv"))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, store.Delete("report.csv"), "deleting a missing file is not an error")
}

func TestNewDiskStore_CreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := NewDiskStore(root)
	assert.NoError(t, err)

	info, err := os.Stat(root)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}
