package riceclass

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/grainlab/riceclass/images"
	"github.com/grainlab/riceclass/inference"
	"github.com/grainlab/riceclass/rice"
	"github.com/grainlab/riceclass/util"
)

// errPreflight marks failures already reported on stdout before any model
// work started.
var errPreflight = errors.New("preflight check failed")

// run classifies one image with one model and writes the report to out.
//
// The two path checks are the only pre-flight validation; every later failure
// propagates to the caller for stderr reporting.
func run(out io.Writer, logger *zap.Logger, modelPath, imagePath string) error {
	if _, err := os.Stat(modelPath); err != nil {
		fmt.Fprintf(out, "Model not found: %s\n", modelPath)
		return errPreflight
	}
	if _, err := os.Stat(imagePath); err != nil {
		fmt.Fprintf(out, "Image not found: %s\n", imagePath)
		return errPreflight
	}

	engine, err := inference.Open(modelPath, logger)
	if err != nil {
		return err
	}
	defer engine.Close()

	file, err := util.LoadImageFile(imagePath)
	if err != nil {
		return err
	}

	// The target resolution comes from the model's own input shape, so the
	// preprocessed tensor always matches the buffers allocated at load time.
	shape := engine.InputShape()
	if len(shape) != 4 {
		return errors.Errorf("model input must be a 4D batch tensor, got shape %v", shape)
	}

	input, err := images.Preprocess(file.Data, int(shape[1]))
	if err != nil {
		return err
	}

	pred, err := rice.NewClassifier(engine, logger).Classify(input)
	if err != nil {
		return err
	}

	logger.Debug("classified image",
		zap.String("image", imagePath),
		zap.String("class", pred.Class),
		zap.Float32("confidence", pred.Confidence))

	rice.WriteReport(out, imagePath, pred)
	return nil
}
