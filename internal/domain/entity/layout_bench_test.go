package entity

import (
	"fmt"
	"testing"
)

const benchEntities = 10_000

// benchWorld spreads entities on a grid; every fourth one is a prop
func benchWorld() *World {
	w := &World{Width: 4000, Height: 4000}
	for i := 0; i < benchEntities; i++ {
		kind := KindItem
		if i%4 == 3 {
			kind = KindProp
		}
		w.Add(&Entity{
			ID:   fmt.Sprintf("e%d", i),
			Kind: kind,
			Rect: Rect{X: float64(i%100) * 40, Y: float64(i/100) * 40, Width: 24, Height: 24},
		})
	}
	return w
}

// rectColumns is the same world stored column-wise
type rectColumns struct {
	X, Y, W, H   []float64
	Interactable []bool
}

func columnsOf(w *World) rectColumns {
	c := rectColumns{
		X:            make([]float64, len(w.Entities)),
		Y:            make([]float64, len(w.Entities)),
		W:            make([]float64, len(w.Entities)),
		H:            make([]float64, len(w.Entities)),
		Interactable: make([]bool, len(w.Entities)),
	}
	for i, e := range w.Entities {
		c.X[i], c.Y[i], c.W[i], c.H[i] = e.X, e.Y, e.Width, e.Height
		c.Interactable[i] = e.Has(Interactable)
	}
	return c
}

// the player sits on the last item cell so the scan walks the whole world
var benchPlayer = Rect{X: 98 * 40, Y: 99 * 40, Width: 32, Height: 32}

func BenchmarkFirstOverlap_Entities(b *testing.B) {
	w := benchWorld()
	b.ResetTimer()
	found := -1
	for n := 0; n < b.N; n++ {
		found = -1
		for i, e := range w.Entities {
			if e.Has(Interactable) && Overlaps(benchPlayer, e.Rect) {
				found = i
				break
			}
		}
	}
	if found < 0 {
		b.Fatal("no overlap")
	}
}

func BenchmarkFirstOverlap_Columns(b *testing.B) {
	c := columnsOf(benchWorld())
	b.ResetTimer()
	found := -1
	for n := 0; n < b.N; n++ {
		found = -1
		for i := range c.X {
			if c.Interactable[i] && Overlaps(benchPlayer, Rect{X: c.X[i], Y: c.Y[i], Width: c.W[i], Height: c.H[i]}) {
				found = i
				break
			}
		}
	}
	if found < 0 {
		b.Fatal("no overlap")
	}
}

func BenchmarkInteractables(b *testing.B) {
	w := benchWorld()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		_ = w.Interactables()
	}
}
