// Package registry holds the process-wide directory of live entities.
// Integrations register their entities at startup; consumers enumerate
// them to find the integration they need, the same way they would query
// the platform's state machine.
package registry

import (
	"sort"
	"sync"
)

// Entity is the minimal contract every registered entity satisfies.
// Richer capabilities (coordinators, clients) are discovered by the
// consumer through type assertions.
type Entity interface {
	EntityID() string
	Domain() string
}

type Registry struct {
	mu       sync.RWMutex
	entities map[string]Entity
}

func New() *Registry {
	return &Registry{
		entities: map[string]Entity{},
	}
}

// Add registers an entity, replacing any previous entity with the same id.
func (r *Registry) Add(entity Entity) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entities[entity.EntityID()] = entity
}

// Remove deregisters an entity and reports whether it was present.
func (r *Registry) Remove(entityID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entities[entityID]; !ok {
		return false
	}
	delete(r.entities, entityID)

	return true
}

// Get returns the entity registered under entityID.
func (r *Registry) Get(entityID string) (Entity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entity, ok := r.entities[entityID]

	return entity, ok
}

// EntityIDs returns the ids of all live entities, sorted for stable
// iteration.
func (r *Registry) EntityIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.entities))
	for id := range r.entities {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Domain returns the live entities belonging to one domain, sorted by id.
func (r *Registry) Domain(name string) []Entity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.entities))
	for id, entity := range r.entities {
		if entity.Domain() == name {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	entities := make([]Entity, 0, len(ids))
	for _, id := range ids {
		entities = append(entities, r.entities[id])
	}

	return entities
}
