package mapdata

import (
	"github.com/yohamta/donburi"

	"github.com/feralgiant/duskhollow/surface"
)

// LayerBelow marks entities that render before upper wall geometry. Any
// other layer value renders after it.
const LayerBelow = 1

// Entity is the renderer's view of a world object. Simulation owns position
// and layer; the renderer only queries and draws.
type Entity interface {
	GetPosition() (float64, float64)
	GetLayer() int
	Render(target surface.Surface)
}

type entityRef struct {
	Entity Entity
}

var refComponent = donburi.NewComponentType[entityRef]()

// AddEntity registers an entity with the engine and returns its handle.
// Iteration order of Entities follows insertion order.
func (m *Engine) AddEntity(e Entity) donburi.Entity {
	id := m.world.Create(refComponent)
	entry := m.world.Entry(id)
	refComponent.Set(entry, &entityRef{Entity: e})
	m.entitiesDirty = true
	return id
}

// RemoveEntity unregisters an entity previously added with AddEntity.
func (m *Engine) RemoveEntity(id donburi.Entity) {
	if m.world.Valid(id) {
		m.world.Remove(id)
	}
	m.entitiesDirty = true
}

// Entities returns the world entities in insertion order. The slice is
// rebuilt lazily after adds and removes; callers must not retain it across
// frames.
func (m *Engine) Entities() []Entity {
	if m.entitiesDirty {
		m.entities = m.entities[:0]
		refComponent.Each(m.world, func(entry *donburi.Entry) {
			m.entities = append(m.entities, refComponent.Get(entry).Entity)
		})
		m.entitiesDirty = false
	}
	return m.entities
}
