package conf

// MarkerCodec handles empty marker files such as the PEP 561 py.typed
// marker. The only valid payload is an empty mapping; the file content is
// always zero bytes.
type MarkerCodec struct {
	Name string // marker filename, used in validation messages
}

func (MarkerCodec) Ext() string { return "" }

func (MarkerCodec) Load(data []byte) (any, error) {
	return map[string]any{}, nil
}

func (c MarkerCodec) Dump(payload any) ([]byte, error) {
	m, ok := asStringMap(payload)
	if !ok {
		return nil, &TypeMismatchError{Format: "marker", Want: "an empty mapping", Got: payload}
	}
	if len(m) > 0 {
		return nil, &ValidationError{Path: c.Name, Msg: "marker file payload must be empty"}
	}
	return []byte{}, nil
}
