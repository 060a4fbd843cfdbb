package rice

import (
	"github.com/chewxy/math32"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorgonia.org/tensor"

	"github.com/grainlab/riceclass/inference"
)

// Prediction is the outcome of a single forward pass.
type Prediction struct {
	// Index is the arg-max position in the raw output vector.
	Index int
	// Class is the variety name at Index in the label table.
	Class string
	// Confidence is the maximum value of the output vector.
	Confidence float32
}

// Classifier runs rice variety predictions against a loaded engine.
type Classifier struct {
	engine inference.Engine
	logger *zap.Logger
}

// NewClassifier creates a classifier backed by the given engine.
func NewClassifier(engine inference.Engine, logger *zap.Logger) *Classifier {
	return &Classifier{engine: engine, logger: logger}
}

// Classify feeds a preprocessed batch tensor through the engine and arg-maxes
// the resulting score vector.
//
// The tensor is handed to the backend as-is; a preprocessing target size that
// disagrees with the model's input shape surfaces as a backend error here,
// not as an explicit pre-check.
func (c *Classifier) Classify(input *tensor.Dense) (*Prediction, error) {
	data, ok := input.Data().([]float32)
	if !ok {
		return nil, errors.Errorf("input tensor must be float32, got %v", input.Dtype())
	}

	c.logger.Debug("running forward pass", zap.Ints("input_shape", input.Shape()))

	scores, err := c.engine.Run(data)
	if err != nil {
		return nil, errors.Wrap(err, "inference failed")
	}

	return Argmax(scores)
}

// Argmax converts a raw score vector into a Prediction.
//
// Non-finite scores are rejected rather than compared; a NaN would otherwise
// poison the max silently.
func Argmax(scores []float32) (*Prediction, error) {
	if len(scores) != len(Classes) {
		return nil, errors.Errorf("model returned %d scores, expected %d", len(scores), len(Classes))
	}

	idx := 0
	best := scores[0]
	for i, score := range scores {
		if math32.IsNaN(score) || math32.IsInf(score, 0) {
			return nil, errors.Errorf("model returned a non-finite score at index %d", i)
		}
		if score > best {
			best = score
			idx = i
		}
	}

	return &Prediction{Index: idx, Class: Classes[idx], Confidence: best}, nil
}
