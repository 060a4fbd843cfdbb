package riceclass

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestRunMissingModel(t *testing.T) {
	image := writeTempFile(t, "grain.jpg", []byte("stub"))

	var out bytes.Buffer
	err := run(&out, zap.NewNop(), "/does/not/exist/model.tflite", image)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errPreflight))
	assert.Equal(t, "Model not found: /does/not/exist/model.tflite\n", out.String())
}

func TestRunMissingImage(t *testing.T) {
	model := writeTempFile(t, "model.tflite", []byte("stub"))

	var out bytes.Buffer
	err := run(&out, zap.NewNop(), model, "/does/not/exist/grain.jpg")

	require.Error(t, err)
	assert.True(t, errors.Is(err, errPreflight))
	assert.Equal(t, "Image not found: /does/not/exist/grain.jpg\n", out.String())
}

func TestRunModelCheckedBeforeImage(t *testing.T) {
	// Both paths missing: the model message wins, matching the gate order.
	var out bytes.Buffer
	err := run(&out, zap.NewNop(), "missing.tflite", "missing.jpg")

	require.Error(t, err)
	assert.Equal(t, "Model not found: missing.tflite\n", out.String())
}

func TestRunUnsupportedModelFormat(t *testing.T) {
	// Files exist, so the failure belongs to the generic class: nothing is
	// written to stdout and the error is not a pre-flight error.
	model := writeTempFile(t, "model.pb", []byte("stub"))
	image := writeTempFile(t, "grain.jpg", []byte("stub"))

	var out bytes.Buffer
	err := run(&out, zap.NewNop(), model, image)

	require.Error(t, err)
	assert.False(t, errors.Is(err, errPreflight))
	assert.Contains(t, err.Error(), "unsupported model format")
	assert.Empty(t, out.String())
}

func TestDefaultModelPath(t *testing.T) {
	assert.Equal(t, "../models/tflite/rice_classifier.tflite", DefaultModelPath)
}
