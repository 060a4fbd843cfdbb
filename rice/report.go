package rice

import (
	"fmt"
	"io"
	"strings"
)

const reportWidth = 60

// WriteReport prints the fixed-format classification report block.
//
// Arguments:
//   - w: Destination writer, normally stdout.
//   - imagePath: The image path as the user supplied it.
//   - pred: The prediction to report.
func WriteReport(w io.Writer, imagePath string, pred *Prediction) {
	heavy := strings.Repeat("=", reportWidth)
	light := strings.Repeat("-", reportWidth)

	fmt.Fprintln(w)
	fmt.Fprintln(w, heavy)
	fmt.Fprintln(w, "RICE GRAIN CLASSIFICATION RESULTS")
	fmt.Fprintln(w, heavy)
	fmt.Fprintf(w, "Image: %s\n", imagePath)
	fmt.Fprintln(w, light)
	fmt.Fprintf(w, "Prediction: %s (%.2f%% confidence)\n", pred.Class, pred.Confidence*100)
	fmt.Fprintln(w, heavy)
}
