package conf

import (
	"strings"
)

// TextCodec reads and writes plain-text files as a literal line sequence.
// Markdown artifacts use this codec with a ".md" extension.
type TextCodec struct {
	Extension string // e.g., ".md", ".txt", or "" for dotfiles like .gitignore
}

func (c TextCodec) Ext() string { return c.Extension }

func (TextCodec) Load(data []byte) (any, error) {
	s := strings.TrimSuffix(string(data), "\n")
	if s == "" {
		return []string{}, nil
	}
	return strings.Split(s, "\n"), nil
}

func (TextCodec) Dump(payload any) ([]byte, error) {
	lines, ok := payload.([]string)
	if !ok {
		return nil, &TypeMismatchError{Format: "text", Want: "a line sequence ([]string)", Got: payload}
	}
	if len(lines) == 0 {
		return []byte{}, nil
	}
	return []byte(strings.Join(lines, "\n") + "\n"), nil
}
