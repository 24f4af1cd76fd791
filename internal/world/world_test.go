package world

import "testing"

func TestGenerateIsPure(t *testing.T) {
	w := New(NewHeightmapGenerator(DefaultTerrainParams()))
	coord := ChunkCoord{X: 2, Y: 0, Z: -1}
	a := w.Generate(coord)
	b := w.Generate(coord)
	if a == b {
		t.Fatal("Generate returned the same chunk twice")
	}
	if hashChunk(a) != hashChunk(b) {
		t.Error("Generate not deterministic for the same coordinate")
	}
	if w.Chunks().Len() != 0 {
		t.Error("Generate published chunks to the store")
	}
}

func TestGenerateParallelMatchesSequential(t *testing.T) {
	gen := NewHeightmapGenerator(DefaultTerrainParams())
	e := Extent{Min: ChunkCoord{-1, 0, -1}, Max: ChunkCoord{1, 2, 1}}

	seq := New(gen)
	seq.GenerateExtent(e)
	par := New(gen)
	par.GenerateParallel(e.Coords(), 4)

	if seq.Chunks().Len() != e.Count() || par.Chunks().Len() != e.Count() {
		t.Fatalf("stored %d / %d chunks, want %d", seq.Chunks().Len(), par.Chunks().Len(), e.Count())
	}
	sm, pm := seq.Chunks().Freeze(), par.Chunks().Freeze()
	for _, coord := range e.Coords() {
		if hashChunk(sm[coord]) != hashChunk(pm[coord]) {
			t.Errorf("chunk %v differs between sequential and parallel generation", coord)
		}
		if sm[coord].Position != coord {
			t.Errorf("chunk stored at %v has position %v", coord, sm[coord].Position)
		}
	}
}

func TestGenerateChunkReplaces(t *testing.T) {
	w := New(NewFlatGenerator(DefaultTerrainParams(), 16))
	first := w.GenerateChunk(ChunkCoord{})
	second := w.GenerateChunk(ChunkCoord{})
	got, _ := w.Chunks().Chunk(ChunkCoord{})
	if got != second || got == first {
		t.Error("GenerateChunk did not replace the stored chunk")
	}
}

func BenchmarkGenerateParallel(b *testing.B) {
	gen := NewHeightmapGenerator(DefaultTerrainParams())
	coords := Extent{Max: ChunkCoord{4, 2, 4}}.Coords()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		New(gen).GenerateParallel(coords, 4)
	}
}
