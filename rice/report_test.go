package rice

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	WriteReport(&buf, "grain.jpg", &Prediction{Index: 3, Class: "Basmati", Confidence: 0.98765})

	rule := strings.Repeat("=", 60)
	expected := "\n" +
		rule + "\n" +
		"RICE GRAIN CLASSIFICATION RESULTS\n" +
		rule + "\n" +
		"Image: grain.jpg\n" +
		strings.Repeat("-", 60) + "\n" +
		"Prediction: Basmati (98.77% confidence)\n" +
		rule + "\n"

	assert.Equal(t, expected, buf.String())
}

func TestWriteReportConfidenceFormat(t *testing.T) {
	// Confidence is always a percentage with exactly two decimal places.
	re := regexp.MustCompile(`\(\d+\.\d{2}% confidence\)`)

	for _, confidence := range []float32{0, 0.5, 0.333333, 1} {
		var buf bytes.Buffer
		WriteReport(&buf, "img.png", &Prediction{Index: 0, Class: "Karacadag", Confidence: confidence})
		assert.Regexp(t, re, buf.String(), "confidence %v", confidence)
	}
}
