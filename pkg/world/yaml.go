package world

import "gopkg.in/yaml.v3"

// MarshalYAML renders the world as a sequence of equal-length ' '/'X'
// strings, one per row.
func (w World) MarshalYAML() (interface{}, error) {
	return w.rowStrings(), nil
}

// UnmarshalYAML parses the ' '/'X' row-string sequence produced by
// MarshalYAML.
func (w *World) UnmarshalYAML(value *yaml.Node) error {
	var rows []string
	if err := value.Decode(&rows); err != nil {
		return err
	}
	parsed, err := fromRowStrings(rows)
	if err != nil {
		return err
	}
	*w = *parsed
	return nil
}
