package conf

import (
	"bytes"

	"github.com/pelletier/go-toml/v2"
)

// TOMLCodec reads and writes TOML documents. The document root must be a
// table, so Dump rejects non-mapping payloads. Output uses multiline arrays
// (one element per line) and indented sub-tables for readability.
type TOMLCodec struct{}

func (TOMLCodec) Ext() string { return ".toml" }

func (TOMLCodec) Load(data []byte) (any, error) {
	payload := map[string]any{}
	if err := toml.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (TOMLCodec) Dump(payload any) ([]byte, error) {
	m, ok := asStringMap(payload)
	if !ok {
		return nil, &TypeMismatchError{Format: "TOML", Want: "a table (string-keyed mapping)", Got: payload}
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetArraysMultiline(true)
	enc.SetIndentTables(true)
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
