package conf

import (
	"encoding/json"
)

// JSONCodec reads and writes JSON documents with fixed 4-space indentation
// for human readability.
type JSONCodec struct{}

func (JSONCodec) Ext() string { return ".json" }

func (JSONCodec) Load(data []byte) (any, error) {
	payload := map[string]any{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (JSONCodec) Dump(payload any) ([]byte, error) {
	m, ok := asStringMap(payload)
	if !ok {
		return nil, &TypeMismatchError{Format: "JSON", Want: "a string-keyed mapping", Got: payload}
	}
	out, err := json.MarshalIndent(m, "", "    ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
