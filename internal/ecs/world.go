package ecs

import "github.com/TSandvaer/platformgame-sub000/internal/domain/entity"

// Registry holds per-entity view state for one simulation instance.
// It is owned by the presentation layer; the simulation never reads it.
type Registry struct {
	// Components
	Transform map[entity.EntityID]Transform
	Health    map[entity.EntityID]Health
	Clip      map[entity.EntityID]Clip
	Flash     map[entity.EntityID]Flash

	// Tags
	IsPlayer map[entity.EntityID]struct{}
	IsEnemy  map[entity.EntityID]struct{}

	// Singleton references
	PlayerID entity.EntityID

	// scratch set reused by Sync
	seen map[entity.EntityID]struct{}
}

// NewRegistry creates a new empty registry
func NewRegistry() *Registry {
	return &Registry{
		Transform: make(map[entity.EntityID]Transform),
		Health:    make(map[entity.EntityID]Health),
		Clip:      make(map[entity.EntityID]Clip),
		Flash:     make(map[entity.EntityID]Flash),
		IsPlayer:  make(map[entity.EntityID]struct{}),
		IsEnemy:   make(map[entity.EntityID]struct{}),
		seen:      make(map[entity.EntityID]struct{}),
	}
}

// DestroyEntity removes all components for an entity
func (r *Registry) DestroyEntity(id entity.EntityID) {
	delete(r.Transform, id)
	delete(r.Health, id)
	delete(r.Clip, id)
	delete(r.Flash, id)
	delete(r.IsPlayer, id)
	delete(r.IsEnemy, id)
	if r.PlayerID == id {
		r.PlayerID = 0
	}
}

// Exists checks if an entity has a Transform component
func (r *Registry) Exists(id entity.EntityID) bool {
	_, ok := r.Transform[id]
	return ok
}

// CountEnemies returns the number of tracked enemies
func (r *Registry) CountEnemies() int {
	return len(r.IsEnemy)
}

// Reset drops every entity
func (r *Registry) Reset() {
	clear(r.Transform)
	clear(r.Health)
	clear(r.Clip)
	clear(r.Flash)
	clear(r.IsPlayer)
	clear(r.IsEnemy)
	r.PlayerID = 0
}
