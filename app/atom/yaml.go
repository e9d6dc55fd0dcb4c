package atom

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

var timestampLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// UnmarshalYAML accepts RFC 3339 timestamps and plain dates (local time).
// Any other string is kept as a raw timestamp; numbers and booleans are rejected.
func (ts *Timestamp) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: timestamp must be a scalar", value.Line)
	}
	switch tag := value.ShortTag(); tag {
	case "!!null":
		*ts = Timestamp{}
		return nil
	case "!!str", "!!timestamp":
	default:
		return fmt.Errorf("line %d: could not convert %s %q to a timestamp", value.Line, tag, value.Value)
	}
	if value.Value == "" {
		*ts = Timestamp{}
		return nil
	}

	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, value.Value, time.Local); err == nil {
			*ts = At(t)
			return nil
		}
	}
	*ts = RawTimestamp(value.Value)
	return nil
}

// UnmarshalYAML accepts a bare string as plain text.
func (t *TextOptions) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*t = *PlainText(value.Value)
		return nil
	}

	type plain TextOptions
	return value.Decode((*plain)(t))
}
