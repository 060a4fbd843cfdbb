package util

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempPNG(t *testing.T) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))

	path := filepath.Join(t.TempDir(), "grain.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestLoadImageFile(t *testing.T) {
	path := writeTempPNG(t)

	file, err := LoadImageFile(path)
	require.NoError(t, err)

	assert.Equal(t, path, file.Path)
	assert.Equal(t, "image/png", file.MIME)
	assert.NotEmpty(t, file.Data)
}

func TestLoadImageFileRejectsNonImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("just text"), 0o644))

	_, err := LoadImageFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreadable image")
}

func TestLoadImageFileMissing(t *testing.T) {
	_, err := LoadImageFile(filepath.Join(t.TempDir(), "nope.jpg"))
	assert.Error(t, err)
}
