// Package projectile implements a minimal ballistic stepping model
// over geom tuples. It treats the tuple type as an opaque value with
// add and scale semantics: a projectile's position is a point, its
// velocity and the forces acting on it are vectors.
package projectile

import (
	"iter"

	"github.com/geomkit/geom/tuple"
)

// Projectile is the state of a flying body at one instant.
type Projectile struct {
	Position tuple.Tuple
	Velocity tuple.Tuple
}

// Environment holds the constant forces applied on every step.
type Environment struct {
	Gravity tuple.Tuple
	Wind    tuple.Tuple
}

// Step advances p by one time unit: the position moves by the
// velocity, and the velocity picks up gravity and wind.
func (e Environment) Step(p Projectile) Projectile {
	return Projectile{
		Position: p.Position.Add(p.Velocity),
		Velocity: p.Velocity.Add(e.Gravity).Add(e.Wind),
	}
}

// Flight returns an iterator over the successive states of p,
// starting with p itself. It ends with the first state whose
// position has dropped to Y <= 0, so a projectile launched at or
// below ground level yields only its initial state.
func (e Environment) Flight(p Projectile) iter.Seq[Projectile] {
	return func(yield func(Projectile) bool) {
		if !yield(p) {
			return
		}
		for p.Position.Y > 0 {
			p = e.Step(p)
			if !yield(p) {
				return
			}
		}
	}
}
