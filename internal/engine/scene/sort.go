package scene

import (
	"cmp"
	"slices"
)

// SortEntities orders entities by model then skin so the renderer binds each
// model and texture as few times as possible. The order carries no meaning
// for drawing correctness.
func SortEntities(ents []Entity) {
	slices.SortStableFunc(ents, compareEntities)
}

func compareEntities(a, b Entity) int {
	if c := cmp.Compare(a.Model, b.Model); c != 0 {
		return c
	}
	return cmp.Compare(a.Skin, b.Skin)
}
