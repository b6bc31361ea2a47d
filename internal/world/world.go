package world

// World is the fixed demo scene: a vertical column of hollow chunks,
// generated once at startup and never mutated afterwards.
type World struct {
	chunks []*Chunk
}

// New builds the scene column with count chunks stacked along +Y
func New(count int) *World {
	if count < 1 {
		count = 1
	}

	w := &World{chunks: make([]*Chunk, 0, count)}
	for i := 0; i < count; i++ {
		c := NewChunk(i, KindForIndex(i, count))
		GenerateShell(c)
		w.chunks = append(w.chunks, c)
	}
	return w
}

// Chunks returns the scene's chunks in ascending height order
func (w *World) Chunks() []*Chunk {
	return w.chunks
}

// SolidCount returns the total number of solid blocks in the scene
func (w *World) SolidCount() int {
	n := 0
	for _, c := range w.chunks {
		n += c.SolidCount()
	}
	return n
}
