package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/q2view/internal/engine/asset"
)

type pair struct{ model, skin asset.Handle }

func pairs(ents []Entity) []pair {
	out := make([]pair, len(ents))
	for i, e := range ents {
		out[i] = pair{e.Model, e.Skin}
	}
	return out
}

func TestSortEntities(t *testing.T) {
	models := []asset.Handle{3, 1, 2, 1}
	skins := []asset.Handle{0, 5, 0, 1}

	ents := make([]Entity, len(models))
	for i := range ents {
		ents[i] = Entity{ID: int32(i), Model: models[i], Skin: skins[i]}
	}

	SortEntities(ents)
	want := []pair{{1, 1}, {1, 5}, {2, 0}, {3, 0}}
	assert.Equal(t, want, pairs(ents))

	once := append([]Entity(nil), ents...)
	SortEntities(ents)
	assert.Equal(t, once, ents, "sorting is idempotent")
}

func TestSortEntitiesStable(t *testing.T) {
	ents := []Entity{
		{ID: 1, Model: 2},
		{ID: 2, Model: 1},
		{ID: 3, Model: 2},
		{ID: 4, Model: 1},
	}
	SortEntities(ents)

	ids := []int32{}
	for _, e := range ents {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []int32{2, 4, 1, 3}, ids)
}
