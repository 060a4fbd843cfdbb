// Package onnx - ONNX Runtime execution backend.
package onnx

import (
	"github.com/pkg/errors"
	ort "github.com/yalue/onnxruntime_go"
	"go.uber.org/zap"
)

// Rice classifier artifacts exported from Keras keep the NHWC layout and the
// five-way output head, so the session binds fixed-shape tensors up front.
var (
	inputShape  = ort.NewShape(1, 128, 128, 3)
	outputShape = ort.NewShape(1, 5)
)

// Engine wraps an onnxruntime session with pre-allocated input and output
// tensors.
type Engine struct {
	session *ort.AdvancedSession
	input   *ort.Tensor[float32]
	output  *ort.Tensor[float32]
	logger  *zap.Logger
}

// Load creates an onnxruntime session for the model at path.
//
// Arguments:
//   - path: Path to the .onnx file.
//   - logger: Logger for load diagnostics.
//
// Returns:
//   - *Engine: A ready-to-run engine.
//   - error: An error if the environment, tensors, or session cannot be created.
func Load(path string, logger *zap.Logger) (*Engine, error) {
	// Required once per process; loads the native library and prepares
	// internal state.
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize ONNX environment")
	}

	input, err := ort.NewEmptyTensor[float32](inputShape)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create input tensor")
	}

	output, err := ort.NewEmptyTensor[float32](outputShape)
	if err != nil {
		input.Destroy()
		return nil, errors.Wrap(err, "failed to create output tensor")
	}

	session, err := ort.NewAdvancedSession(path,
		[]string{"input"}, []string{"output"},
		[]ort.ArbitraryTensor{input}, []ort.ArbitraryTensor{output},
		nil)
	if err != nil {
		output.Destroy()
		input.Destroy()
		return nil, errors.Wrap(err, "failed to create ONNX session")
	}

	logger.Debug("onnx model loaded",
		zap.String("path", path),
		zap.Int64s("input_shape", inputShape),
		zap.Int64s("output_shape", outputShape))

	return &Engine{
		session: session,
		input:   input,
		output:  output,
		logger:  logger,
	}, nil
}

// InputShape returns the model's input tensor dimensions.
func (e *Engine) InputShape() []int64 {
	return e.input.GetShape()
}

// OutputShape returns the model's output tensor dimensions.
func (e *Engine) OutputShape() []int64 {
	return e.output.GetShape()
}

// Run copies the input into the bound input tensor, executes the session, and
// returns a copy of the output vector.
func (e *Engine) Run(input []float32) ([]float32, error) {
	buf := e.input.GetData()
	if len(input) != len(buf) {
		return nil, errors.Errorf("input has %d values, model expects %d", len(input), len(buf))
	}
	copy(buf, input)

	if err := e.session.Run(); err != nil {
		return nil, errors.Wrap(err, "inference failed")
	}

	out := e.output.GetData()
	result := make([]float32, len(out))
	copy(result, out)
	return result, nil
}

// Close destroys the session, tensors, and environment.
func (e *Engine) Close() {
	if e.session != nil {
		e.session.Destroy()
	}
	if e.output != nil {
		e.output.Destroy()
	}
	if e.input != nil {
		e.input.Destroy()
	}
	ort.DestroyEnvironment()
}
