package task

import "fmt"

// templates is the fixed reference catalog. The groups of five share a
// profile: balanced, cheap local energy, cheap offload energy, slow edge.
var templates = [...]Task{
	{LocalTime: 5.0, LocalEnergy: 6.0, CommTime: 1.0, EdgeTime: 1.0, CommEnergy: 1.0},
	{LocalTime: 6.0, LocalEnergy: 5.5, CommTime: 1.2, EdgeTime: 1.0, CommEnergy: 1.0},
	{LocalTime: 5.0, LocalEnergy: 6.0, CommTime: 0.8, EdgeTime: 1.0, CommEnergy: 1.2},
	{LocalTime: 5.5, LocalEnergy: 5.0, CommTime: 1.0, EdgeTime: 0.8, CommEnergy: 1.0},
	{LocalTime: 6.0, LocalEnergy: 7.0, CommTime: 1.0, EdgeTime: 1.0, CommEnergy: 1.0},

	{LocalTime: 10.0, LocalEnergy: 1.1, CommTime: 0.1, EdgeTime: 0.9, CommEnergy: 11.1},
	{LocalTime: 11.8, LocalEnergy: 1.2, CommTime: 0.5, EdgeTime: 0.5, CommEnergy: 11.3},
	{LocalTime: 11.5, LocalEnergy: 2.0, CommTime: 1.0, EdgeTime: 1.0, CommEnergy: 13.0},
	{LocalTime: 11.2, LocalEnergy: 1.5, CommTime: 1.0, EdgeTime: 1.0, CommEnergy: 13.4},
	{LocalTime: 11.6, LocalEnergy: 2.0, CommTime: 1.1, EdgeTime: 1.0, CommEnergy: 13.1},

	{LocalTime: 1.0, LocalEnergy: 10.5, CommTime: 11.5, EdgeTime: 0.5, CommEnergy: 1.0},
	{LocalTime: 1.0, LocalEnergy: 10.2, CommTime: 11.0, EdgeTime: 0.1, CommEnergy: 1.0},
	{LocalTime: 1.5, LocalEnergy: 10.0, CommTime: 10.5, EdgeTime: 1.0, CommEnergy: 1.5},
	{LocalTime: 1.5, LocalEnergy: 11.0, CommTime: 11.0, EdgeTime: 0.5, CommEnergy: 1.2},
	{LocalTime: 1.3, LocalEnergy: 9.3, CommTime: 11.2, EdgeTime: 0.1, CommEnergy: 1.4},

	{LocalTime: 2.0, LocalEnergy: 2.0, CommTime: 2.2, EdgeTime: 9.0, CommEnergy: 9.5},
	{LocalTime: 2.2, LocalEnergy: 2.5, CommTime: 2.2, EdgeTime: 9.0, CommEnergy: 9.8},
	{LocalTime: 2.0, LocalEnergy: 2.5, CommTime: 2.0, EdgeTime: 9.0, CommEnergy: 9.0},
	{LocalTime: 2.5, LocalEnergy: 2.5, CommTime: 2.8, EdgeTime: 9.0, CommEnergy: 9.4},
	{LocalTime: 2.1, LocalEnergy: 2.3, CommTime: 2.2, EdgeTime: 9.0, CommEnergy: 9.3},
}

// CatalogSize is the number of templates in the reference catalog.
const CatalogSize = len(templates)

// Catalog returns a copy of the reference catalog.
func Catalog() []Task {
	out := make([]Task, len(templates))
	copy(out, templates[:])
	return out
}

// Template returns the catalog entry at index i.
func Template(i int) (Task, error) {
	if i < 0 || i >= len(templates) {
		return Task{}, fmt.Errorf("template index %d out of range [0,%d)", i, len(templates))
	}
	return templates[i], nil
}
