package scenario

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// LoadAssumptions reads scenario dials from a YAML file. Fields absent from
// the file keep their neutral defaults, so a file can override just the
// dials it cares about.
func LoadAssumptions(path string) (Assumptions, error) {
	a := Neutral()

	data, err := os.ReadFile(path)
	if err != nil {
		return a, eris.Wrap(err, "scenario: read assumptions file")
	}
	if err := yaml.Unmarshal(data, &a); err != nil {
		return a, eris.Wrap(err, "scenario: parse assumptions yaml")
	}
	return a.Clamp(), nil
}
