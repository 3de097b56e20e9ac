//go:build !((linux || darwin || windows) && (amd64 || arm64))

package json

import (
	"encoding/json"
	"io"

	"github.com/bytedance/sonic"
)

// Marshal encodes a Go value as JSON.
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes a JSON payload into the provided destination.
func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// NewDecoder creates a streaming decoder.
func NewDecoder(r io.Reader) Decoder {
	return json.NewDecoder(r)
}

// Decoder is a JSON decoder.
type Decoder = sonic.Decoder

// SetConfig is a no-op here; encoding/json always behaves like
// sonic.ConfigStd.
func SetConfig(config *sonic.Config) {}
