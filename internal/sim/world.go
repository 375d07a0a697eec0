// Package sim is a headless creature-seeks-target world. Creatures are
// point masses steered by a genome of per-tick thrust forces; they crash on
// world bounds and obstacles and complete by touching the target.
package sim

import (
	"github.com/rj79/genetic/vec"
)

// Body is a point mass moving under accumulated forces with linear velocity
// drag.
type Body struct {
	Pos    vec.Vec2
	Vel    vec.Vec2
	Acc    vec.Vec2
	Radius float64
	Active bool
}

// ApplyForce adds f to the forces acting on the body this tick.
func (b *Body) ApplyForce(f vec.Vec2) {
	b.Acc = b.Acc.Add(f)
}

// Step integrates one tick and clears the accumulated forces.
func (b *Body) Step(dt, drag float64) {
	if !b.Active {
		return
	}
	b.ApplyForce(b.Vel.Scale(-drag))
	b.Vel = b.Vel.Add(b.Acc.Scale(dt))
	b.Pos = b.Pos.Add(b.Vel)
	b.Acc = vec.Vec2{}
}

// Creature is one simulated agent. ArrivalTick records when it crashed or
// completed; -1 means it was still flying when its life span ran out.
type Creature struct {
	Body
	Crashed     bool
	Completed   bool
	ArrivalTick int
}

// NewCreature creates an inactive creature at the given position.
func NewCreature(start vec.Vec2, radius float64) *Creature {
	c := &Creature{}
	c.Radius = radius
	c.Reset(start)
	return c
}

// Reset moves the creature back to the start position and clears its state
// for a new run.
func (c *Creature) Reset(start vec.Vec2) {
	c.Pos = start
	c.Vel = vec.Vec2{}
	c.Acc = vec.Vec2{}
	c.Active = true
	c.Crashed = false
	c.Completed = false
	c.ArrivalTick = -1
}

// Crash marks the creature as crashed at the given tick.
func (c *Creature) Crash(tick int) {
	if !c.Crashed && !c.Completed {
		c.Crashed = true
		c.ArrivalTick = tick
	}
}

// Complete marks the creature as having reached the target at the given
// tick.
func (c *Creature) Complete(tick int) {
	if !c.Crashed && !c.Completed {
		c.Completed = true
		c.ArrivalTick = tick
	}
}

// Circle is a static scene object: the target or an obstacle.
type Circle struct {
	Pos    vec.Vec2
	Radius float64
}

// World is the scene a creature flies through. LifeSpan is the number of
// ticks a run lasts and equals the creature's genome length.
type World struct {
	Width     float64
	Height    float64
	Start     vec.Vec2
	Target    Circle
	Obstacles []Circle
	LifeSpan  int
	Dt        float64
	Drag      float64
}

// Run resets the creature and plays its genome of per-tick forces until it
// crashes, completes, or runs out of life span.
func (w *World) Run(c *Creature, forces []vec.Vec2) {
	c.Reset(w.Start)
	for tick := 0; tick < w.LifeSpan && c.Active; tick++ {
		if tick < len(forces) {
			c.ApplyForce(forces[tick])
		}
		c.Step(w.Dt, w.Drag)
		w.check(c, tick)
	}
}

func (w *World) check(c *Creature, tick int) {
	if c.Pos.X < 0 || c.Pos.X > w.Width || c.Pos.Y < 0 || c.Pos.Y > w.Height {
		c.Crash(tick)
	}
	if c.Pos.Distance(w.Target.Pos) < c.Radius+w.Target.Radius {
		c.Complete(tick)
	}
	for _, ob := range w.Obstacles {
		if c.Pos.Distance(ob.Pos) < c.Radius+ob.Radius {
			c.Crash(tick)
		}
	}
	if c.Crashed || c.Completed {
		c.Active = false
	}
}

// Fitness scores a finished run. The base score is the inverse square of
// the final distance to the target; crashing early is penalized and
// completing early is boosted by the cube of the normalized arrival time.
// The result is never negative.
func (w *World) Fitness(c *Creature) float64 {
	d := c.Pos.Distance(w.Target.Pos)
	if d < 1 {
		d = 1
	}
	fitness := 1 / (d * d)

	arrival := c.ArrivalTick
	if arrival < 0 {
		arrival = w.LifeSpan
	}
	factor := float64(arrival) / float64(w.LifeSpan)
	if factor <= 0 {
		factor = 1 / float64(w.LifeSpan)
	}

	if c.Crashed {
		fitness *= factor * factor * factor
	}
	if c.Completed {
		fitness /= factor * factor * factor
	}
	return fitness
}
