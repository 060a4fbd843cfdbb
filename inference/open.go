package inference

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/grainlab/riceclass/inference/onnx"
	"github.com/grainlab/riceclass/inference/tflite"
)

// Open loads the model at path with the backend matching its extension.
//
// Arguments:
//   - path: Path to the model artifact.
//   - logger: Logger passed through to the backend for load diagnostics.
//
// Returns:
//   - Engine: A fully allocated engine ready for Run.
//   - error: An error if the format is unsupported or the backend fails to load.
func Open(path string, logger *zap.Logger) (Engine, error) {
	backend, err := DetectBackend(path)
	if err != nil {
		return nil, err
	}

	logger.Debug("loading model",
		zap.String("path", path),
		zap.String("backend", string(backend)))

	switch backend {
	case BackendTFLite:
		return tflite.Load(path, logger)
	case BackendONNX:
		return onnx.Load(path, logger)
	default:
		return nil, errors.Errorf("no loader registered for backend %q", backend)
	}
}
