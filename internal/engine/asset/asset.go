// Package asset provides renderer handles and the image/model registration service.
package asset

import (
	"sync"

	"github.com/google/uuid"
)

// Handle identifies a registered image or model. Zero means "none".
type Handle int32

// None is the empty handle.
const None Handle = 0

// Kind distinguishes registered resource types.
type Kind uint8

const (
	KindImage Kind = iota
	KindModel
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindModel:
		return "model"
	default:
		return "unknown"
	}
}

// Asset describes a registered resource.
type Asset struct {
	Handle Handle
	Kind   Kind
	Name   string
	ID     string
}

// Registry hands out stable handles for named images and models.
// Registering the same name twice returns the existing handle.
type Registry struct {
	mu     sync.Mutex
	next   Handle
	byName map[string]Handle
	assets map[Handle]Asset
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		next:   1,
		byName: make(map[string]Handle),
		assets: make(map[Handle]Asset),
	}
}

// Register returns the handle for name, allocating one if needed.
func (r *Registry) Register(kind Kind, name string) Handle {
	if name == "" {
		return None
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := kind.String() + ":" + name
	if h, ok := r.byName[key]; ok {
		return h
	}

	h := r.next
	r.next++
	r.byName[key] = h
	r.assets[h] = Asset{
		Handle: h,
		Kind:   kind,
		Name:   name,
		ID:     uuid.NewString(),
	}
	return h
}

// Unregister releases a handle. Unknown handles are ignored.
func (r *Registry) Unregister(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.assets[h]
	if !ok {
		return
	}
	delete(r.assets, h)
	delete(r.byName, a.Kind.String()+":"+a.Name)
}

// Lookup returns the asset registered under h.
func (r *Registry) Lookup(h Handle) (Asset, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.assets[h]
	return a, ok
}

// Len returns the number of registered assets.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.assets)
}
