package province

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Load reads province statistics from a YAML or JSON file.
func Load(path string) (*Statistics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "reading province file")
	}

	var s Statistics
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, eris.Wrapf(err, "parsing province file %s", path)
	}
	Normalize(&s)

	return &s, nil
}

// LoadDir loads every .yaml, .yml and .json file in dir, sorted by province name.
func LoadDir(dir string) ([]*Statistics, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, eris.Wrapf(err, "reading province directory %s", dir)
	}

	var out []*Statistics
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml", ".json":
		default:
			continue
		}
		s, err := Load(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Province.Name < out[j].Province.Name
	})
	return out, nil
}
