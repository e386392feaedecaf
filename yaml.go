package tabular

import (
	"io"

	"gopkg.in/yaml.v3"
)

// writeYAML emits the table model as one YAML document.
func (t *Table) writeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(t.doc()); err != nil {
		return err
	}
	return enc.Close()
}
