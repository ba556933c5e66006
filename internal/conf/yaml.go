package conf

import (
	"go.yaml.in/yaml/v3"
)

// YAMLCodec reads and writes YAML documents. Parsing is safe: yaml/v3 never
// executes custom tags, it only builds plain values.
type YAMLCodec struct{}

func (YAMLCodec) Ext() string { return ".yaml" }

func (YAMLCodec) Load(data []byte) (any, error) {
	payload := map[string]any{}
	if err := yaml.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (YAMLCodec) Dump(payload any) ([]byte, error) {
	m, ok := asStringMap(payload)
	if !ok {
		return nil, &TypeMismatchError{Format: "YAML", Want: "a string-keyed mapping", Got: payload}
	}
	return yaml.Marshal(m)
}
