package board

// EntityMap associates coordinates with opaque external objects, typically
// the rendering layer's per-square visual handles. It is owned and mutated
// by that layer, not by the Position, and carries no game-logic invariant:
// the core only ever hands the layer a completed (from, to) pair.
type EntityMap struct {
	entities map[Coord]any
}

// NewEntityMap returns an empty association table.
func NewEntityMap() *EntityMap {
	return &EntityMap{entities: make(map[Coord]any)}
}

// Get returns the object associated with c, if any.
func (e *EntityMap) Get(c Coord) (any, bool) {
	v, ok := e.entities[c]
	return v, ok
}

// Set associates obj with c, replacing any previous association.
func (e *EntityMap) Set(c Coord, obj any) { e.entities[c] = obj }

// Clear removes the association for c.
func (e *EntityMap) Clear(c Coord) { delete(e.entities, c) }

// Move reassociates the object at from with to, dropping whatever was at to.
// Callers invoke this when they observe a completed move.
func (e *EntityMap) Move(from, to Coord) {
	v, ok := e.entities[from]
	delete(e.entities, from)
	if ok {
		e.entities[to] = v
	} else {
		delete(e.entities, to)
	}
}

// Len returns the number of associations.
func (e *EntityMap) Len() int { return len(e.entities) }

// Coords returns the associated coordinates in square-index order.
func (e *EntityMap) Coords() []Coord {
	out := make([]Coord, 0, len(e.entities))
	for c := range e.entities {
		out = append(out, c)
	}
	SortCoords(out)
	return out
}
