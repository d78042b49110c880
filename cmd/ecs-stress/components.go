package main

import (
	"math/rand"

	"github.com/plus3/ecscore/ecs"
)

const componentTypeCount = 5

type Position struct{ X, Y float32 }
type Velocity struct{ DX, DY float32 }
type Health struct{ HP int }
type Age struct{ Seconds float32 }
type Tag struct{ Name string }

type componentAdder func(*ecs.World, ecs.Entity)

func addPosition(w *ecs.World, e ecs.Entity) {
	ecs.AddComponent[Position](w, e, func(p *Position) {
		p.X, p.Y = rand.Float32()*1000, rand.Float32()*1000
	})
}

func addVelocity(w *ecs.World, e ecs.Entity) {
	ecs.AddComponent[Velocity](w, e, func(v *Velocity) {
		v.DX, v.DY = rand.Float32()*10-5, rand.Float32()*10-5
	})
}

func addHealth(w *ecs.World, e ecs.Entity) {
	ecs.AddComponent[Health](w, e, func(h *Health) {
		h.HP = rand.Intn(100) + 1
	})
}

func addAge(w *ecs.World, e ecs.Entity) {
	ecs.AddComponent[Age](w, e, nil)
}

func addTag(w *ecs.World, e ecs.Entity) {
	ecs.AddComponent[Tag](w, e, func(t *Tag) {
		t.Name = "entity"
	})
}

// stressComponentAdders returns n distinct component adders chosen without
// repetition from the full set, used to give each spawned entity a varied
// archetype-like component mix.
func stressComponentAdders(n int) []componentAdder {
	all := []componentAdder{addPosition, addVelocity, addHealth, addAge, addTag}
	if n > len(all) {
		n = len(all)
	}
	rand.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
	return all[:n]
}
