package food

import (
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// LoadOverrides merges a YAML file of label -> kcal into the catalog. Existing
// labels keep their position in the fuzzy-match scan; new labels are appended
// in sorted order so the scan stays deterministic. Call before serving
// requests: the catalog is not guarded for concurrent mutation.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var overrides map[string]int
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return err
	}

	var added []string
	for name, kcal := range overrides {
		name = normalizeName(name)
		if _, ok := catalog[name]; !ok {
			added = append(added, name)
		}
		catalog[name] = kcal
	}

	sort.Strings(added)
	catalogOrder = append(catalogOrder, added...)
	return nil
}
