package asset

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterReturnsStableHandles(t *testing.T) {
	r := NewRegistry()

	a := r.Register(KindImage, "flashlight_profile")
	b := r.Register(KindImage, "flashlight_profile")
	c := r.Register(KindModel, "flashlight_profile")

	assert.NotEqual(t, None, a)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c, "images and models live in separate namespaces")
	assert.Equal(t, 2, r.Len())
}

func TestRegisterEmptyName(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, None, r.Register(KindModel, ""))
	assert.Equal(t, 0, r.Len())
}

func TestLookupAndUnregister(t *testing.T) {
	r := NewRegistry()
	h := r.Register(KindModel, "models/weapons/v_blast/tris.md2")

	a, ok := r.Lookup(h)
	require.True(t, ok)
	assert.Equal(t, KindModel, a.Kind)
	assert.Equal(t, "models/weapons/v_blast/tris.md2", a.Name)
	_, err := uuid.Parse(a.ID)
	assert.NoError(t, err)

	r.Unregister(h)
	_, ok = r.Lookup(h)
	assert.False(t, ok)

	// re-registering allocates a fresh handle
	h2 := r.Register(KindModel, "models/weapons/v_blast/tris.md2")
	assert.NotEqual(t, h, h2)

	r.Unregister(Handle(999))
}
