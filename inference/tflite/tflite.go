// Package tflite - TensorFlow Lite execution backend.
package tflite

import (
	tfl "github.com/mattn/go-tflite"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Engine wraps a TFLite interpreter with tensors allocated at load time.
type Engine struct {
	model       *tfl.Model
	options     *tfl.InterpreterOptions
	interpreter *tfl.Interpreter
	logger      *zap.Logger
}

// Load reads a .tflite model artifact and allocates its tensors.
//
// Arguments:
//   - path: Path to the .tflite file.
//   - logger: Logger for load diagnostics.
//
// Returns:
//   - *Engine: A ready-to-run engine.
//   - error: An error if the file is not a loadable TFLite model.
func Load(path string, logger *zap.Logger) (*Engine, error) {
	model := tfl.NewModelFromFile(path)
	if model == nil {
		return nil, errors.Errorf("failed to load TFLite model: %s", path)
	}

	options := tfl.NewInterpreterOptions()
	options.SetNumThread(1)

	interpreter := tfl.NewInterpreter(model, options)
	if interpreter == nil {
		options.Delete()
		model.Delete()
		return nil, errors.Errorf("failed to create TFLite interpreter: %s", path)
	}

	if status := interpreter.AllocateTensors(); status != tfl.OK {
		interpreter.Delete()
		options.Delete()
		model.Delete()
		return nil, errors.Errorf("failed to allocate TFLite tensors: %s", path)
	}

	e := &Engine{
		model:       model,
		options:     options,
		interpreter: interpreter,
		logger:      logger,
	}

	logger.Debug("tflite model loaded",
		zap.String("path", path),
		zap.Int64s("input_shape", e.InputShape()),
		zap.Int64s("output_shape", e.OutputShape()))

	return e, nil
}

// InputShape returns the model's input tensor dimensions.
func (e *Engine) InputShape() []int64 {
	return tensorShape(e.interpreter.GetInputTensor(0))
}

// OutputShape returns the model's output tensor dimensions.
func (e *Engine) OutputShape() []int64 {
	return tensorShape(e.interpreter.GetOutputTensor(0))
}

// Run copies the input into the interpreter's input tensor, invokes the
// interpreter, and returns a copy of the output vector.
func (e *Engine) Run(input []float32) ([]float32, error) {
	buf := e.interpreter.GetInputTensor(0).Float32s()
	if len(input) != len(buf) {
		return nil, errors.Errorf("input has %d values, model expects %d", len(input), len(buf))
	}
	copy(buf, input)

	if status := e.interpreter.Invoke(); status != tfl.OK {
		return nil, errors.New("TFLite invoke failed")
	}

	out := e.interpreter.GetOutputTensor(0).Float32s()
	result := make([]float32, len(out))
	copy(result, out)
	return result, nil
}

// Close releases the interpreter, options, and model in reverse order of
// creation.
func (e *Engine) Close() {
	if e.interpreter != nil {
		e.interpreter.Delete()
	}
	if e.options != nil {
		e.options.Delete()
	}
	if e.model != nil {
		e.model.Delete()
	}
}

func tensorShape(t *tfl.Tensor) []int64 {
	dims := make([]int64, t.NumDims())
	for i := range dims {
		dims[i] = int64(t.Dim(i))
	}
	return dims
}
