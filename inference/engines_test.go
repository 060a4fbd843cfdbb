package inference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectBackend(t *testing.T) {
	tests := []struct {
		path    string
		want    Backend
		wantErr bool
	}{
		{path: "rice_classifier.tflite", want: BackendTFLite},
		{path: "../models/tflite/rice_classifier.tflite", want: BackendTFLite},
		{path: "RICE.TFLITE", want: BackendTFLite},
		{path: "rice_classifier.onnx", want: BackendONNX},
		{path: "model.Onnx", want: BackendONNX},
		{path: "model.pb", wantErr: true},
		{path: "model", wantErr: true},
		{path: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DetectBackend(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
