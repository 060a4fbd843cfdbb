// Package inference - Inference engine interface and backend registry.
package inference

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Backend is the type of the inference runtime.
type Backend string

const (
	// BackendTFLite is the TensorFlow Lite backend that uses the tflite C library.
	BackendTFLite Backend = "tflite"
	// BackendONNX is the ONNX backend that uses the onnxruntime library.
	BackendONNX Backend = "onnx"
)

// Backends is a list of all supported backends.
var Backends = []Backend{BackendTFLite, BackendONNX}

// Engine executes forward passes against a loaded model artifact.
//
// An Engine is created with all backend buffers already allocated to the
// model's static tensor shapes, so Run never allocates backend memory.
type Engine interface {
	// InputShape returns the model's declared input tensor dimensions.
	InputShape() []int64
	// OutputShape returns the model's declared output tensor dimensions.
	OutputShape() []int64
	// Run executes one forward pass and returns a copy of the output vector.
	Run(input []float32) ([]float32, error)
	// Close releases all backend resources.
	Close()
}

// DetectBackend resolves the backend from the model file extension.
//
// Arguments:
//   - path: Path to the model artifact.
//
// Returns:
//   - Backend: The backend matching the artifact format.
//   - error: An error if the extension maps to no supported backend.
func DetectBackend(path string) (Backend, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tflite":
		return BackendTFLite, nil
	case ".onnx":
		return BackendONNX, nil
	default:
		return "", errors.Errorf("unsupported model format: %q", filepath.Ext(path))
	}
}
