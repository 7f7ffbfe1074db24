package entity

// World is the overworld scene's entity set
type World struct {
	Name     string
	Width    float64
	Height   float64
	Spawn    Point
	Entities []*Entity
}

// Bounds returns the world rectangle
func (w *World) Bounds() Rect {
	return Rect{Width: w.Width, Height: w.Height}
}

// Add places an entity in the world
func (w *World) Add(e *Entity) {
	w.Entities = append(w.Entities, e)
}

// Find returns the entity with the given ID, or nil
func (w *World) Find(id string) *Entity {
	for _, e := range w.Entities {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// Remove takes the entity with the given ID out of the world.
// Returns the removed entity, or nil if it was not present.
func (w *World) Remove(id string) *Entity {
	for i, e := range w.Entities {
		if e.ID == id {
			w.Entities = append(w.Entities[:i], w.Entities[i+1:]...)
			return e
		}
	}
	return nil
}

// Interactables returns entities that can currently be interacted with, in world order
func (w *World) Interactables() []*Entity {
	out := make([]*Entity, 0, len(w.Entities))
	for _, e := range w.Entities {
		if e.Has(Interactable) {
			out = append(out, e)
		}
	}
	return out
}
