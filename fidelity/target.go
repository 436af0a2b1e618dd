package fidelity

import (
	"fmt"
	"strings"
)

// Target selects how the compressed output reaches the destination file.
type Target int

const (
	// TargetFile lets the encoder write the destination directly.
	TargetFile Target = iota
	// TargetBuffer encodes into memory and persists the bytes afterwards.
	TargetBuffer
)

func (t Target) String() string {
	switch t {
	case TargetFile:
		return "file"
	case TargetBuffer:
		return "buffer"
	default:
		return fmt.Sprintf("Target(%d)", int(t))
	}
}

// ParseTarget parses "file" or "buffer".
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "file":
		return TargetFile, nil
	case "buffer":
		return TargetBuffer, nil
	default:
		return 0, fmt.Errorf("unknown target %q: %w", s, ErrInvalidArguments)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Target) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Target) UnmarshalText(text []byte) error {
	v, err := ParseTarget(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
