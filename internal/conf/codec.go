package conf

// Codec is the serialize/deserialize strategy for one file format.
// Structured codecs (TOML, YAML, JSON) round-trip nested string-keyed
// mappings; the text codec round-trips a literal line sequence; the marker
// codec accepts only an empty mapping.
type Codec interface {
	// Ext returns the file extension including the dot (e.g., ".toml").
	// Marker files have no extension and return "".
	Ext() string

	// Load parses on-disk bytes into the codec's payload representation.
	Load(data []byte) (any, error)

	// Dump serializes a payload into on-disk bytes.
	Dump(payload any) ([]byte, error)
}

// asStringMap returns the payload as a string-keyed mapping, or false if the
// payload has a different shape.
func asStringMap(payload any) (map[string]any, bool) {
	m, ok := payload.(map[string]any)
	return m, ok
}
