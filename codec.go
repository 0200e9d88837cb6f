package filevalue

import "encoding/json"

// Codec converts a value to and from the byte representation stored in the
// backing file. Unmarshal failures are surfaced to callers as a *DecodeError,
// kept distinct from I/O errors on the file itself.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// JSONCodec is the default Codec. The backing file holds a single JSON
// document encoding the value exactly, with no envelope or metadata.
type JSONCodec struct{}

// Marshal implements the Codec interface.
func (JSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal implements the Codec interface.
func (JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
