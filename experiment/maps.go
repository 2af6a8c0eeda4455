package experiment

import (
	"fmt"
	"sort"
)

// DefaultMap is the catalogue layout used when a config names none.
const DefaultMap = "classic"

// catalogue holds the built-in map layouts by name. Every layout parses
// into a fully connected grid, so any two cells always have a route.
var catalogue = map[string][]string{
	// The well-known 5x5 taxi layout.
	"classic": {
		"+---------+",
		"|R: | : :G|",
		"| : | : : |",
		"| : : : : |",
		"| | : | : |",
		"|Y| : |B: |",
		"+---------+",
	},
	// A wider 5x7 layout with staggered wall segments.
	"crosstown": {
		"+-------------+",
		"| : | : : : : |",
		"| : | : | : : |",
		"| : : : | : : |",
		"| | : : | : : |",
		"| | : : : : : |",
		"+-------------+",
	},
	// A 7x9 layout with longer wall runs and two inner corridors.
	"midtown": {
		"+-----------------+",
		"| : : | : : : | : |",
		"| : : | : : : | : |",
		"| : : : : | : : : |",
		"| | : : : | : : : |",
		"| | : : : : : | : |",
		"| : : | : : : | : |",
		"| : : | : : : : : |",
		"+-----------------+",
	},
}

// MapNames returns the catalogue names in sorted order.
func MapNames() []string {
	names := make([]string, 0, len(catalogue))
	for name := range catalogue {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// MapByName returns the named catalogue layout, or ErrUnknownMap.
func MapByName(name string) ([]string, error) {
	desc, ok := catalogue[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownMap, name, MapNames())
	}

	return desc, nil
}
