package pheromone

// Cursor points at one particle of a Field through a (cell, particle) index
// pair. Adding to or evaporating the field invalidates it.
type Cursor struct {
	field *Field
	outer int
	inner int
}

func (f *Field) cursorAt(c *cell, index int) Cursor {
	return Cursor{field: f, outer: c.slot, inner: index}
}

// Begin returns a cursor on the first particle, or End if the field is empty.
func (f *Field) Begin() Cursor {
	return Cursor{field: f}
}

// End returns the sentinel cursor past the last particle.
func (f *Field) End() Cursor {
	return Cursor{field: f, outer: len(f.order)}
}

// IsEnd reports whether the cursor is past the last particle.
func (c Cursor) IsEnd() bool {
	return c.field == nil || c.outer >= len(c.field.order)
}

// Next returns the cursor on the following particle. Next on End is End.
func (c Cursor) Next() Cursor {
	if c.IsEnd() {
		return c
	}
	c.inner++
	if c.inner >= len(c.field.order[c.outer].particles) {
		c.outer++
		c.inner = 0
	}
	return c
}

// Particle returns the particle under the cursor. It panics on End.
func (c Cursor) Particle() Particle {
	return c.field.order[c.outer].particles[c.inner]
}

// Equal reports whether both cursors point at the same particle, or are both
// at the end regardless of how they got there.
func (c Cursor) Equal(other Cursor) bool {
	if c.IsEnd() || other.IsEnd() {
		return c.IsEnd() && other.IsEnd()
	}
	return c.field == other.field && c.outer == other.outer && c.inner == other.inner
}
