package util

import (
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

// ImageFile represents an image file read from disk.
type ImageFile struct {
	// Path is the path to the image file.
	Path string
	// Data is the raw bytes of the image file.
	Data []byte
	// MIME is the detected media type of the file content.
	MIME string
}

// LoadImageFile reads a single image file and verifies that its content is an
// image before any decoding is attempted.
//
// Arguments:
//   - path: Path to the image file.
//
// Returns:
//   - *ImageFile: The file contents with its detected media type.
//   - error: An error if the file cannot be read or is not an image.
func LoadImageFile(path string) (*ImageFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read image %s", path)
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, errors.Errorf("unreadable image %s: content is %s", path, mtype.String())
	}

	return &ImageFile{Path: path, Data: data, MIME: mtype.String()}, nil
}
