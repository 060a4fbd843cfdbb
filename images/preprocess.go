// Package images - image decoding and preprocessing for classifier inference.
package images

import (
	"bytes"
	"image"

	// Register the decoders the classifier accepts.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"github.com/chai2010/webp"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

func init() {
	image.RegisterFormat("webp", "RIFF????WEBP", webp.Decode, webp.DecodeConfig)
}

// Channels is the number of color channels the classifier expects.
const Channels = 3

// Preprocess decodes raw image bytes, resizes them to size x size, scales
// every pixel intensity to [0,1] by dividing by 255, and packs the result
// into a single-item NHWC batch tensor of shape (1, size, size, 3).
//
// Nearest-neighbor resampling matches the resize used to build the training
// set; changing the filter silently degrades accuracy.
//
// Arguments:
//   - data: Raw bytes of a JPEG, PNG, BMP, or WebP image.
//   - size: Target spatial resolution for both height and width.
//
// Returns:
//   - *tensor.Dense: A float32 tensor of shape (1, size, size, 3).
//   - error: An error if the bytes do not decode or size is not positive.
func Preprocess(data []byte, size int) (*tensor.Dense, error) {
	if size <= 0 {
		return nil, errors.Errorf("invalid target size: %d", size)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode image")
	}

	resized := resize.Resize(uint(size), uint(size), img, resize.NearestNeighbor)

	backing := make([]float32, size*size*Channels)
	bounds := resized.Bounds()
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := resized.At(x, y).RGBA()
			// RGBA returns 16-bit values; fold back to 8-bit before scaling.
			backing[i] = float32(r>>8) / 255.0
			backing[i+1] = float32(g>>8) / 255.0
			backing[i+2] = float32(b>>8) / 255.0
			i += Channels
		}
	}

	return tensor.New(tensor.WithShape(1, size, size, Channels), tensor.WithBacking(backing)), nil
}
