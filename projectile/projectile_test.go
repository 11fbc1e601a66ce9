package projectile_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/geomkit/geom/projectile"
	"github.com/geomkit/geom/tuple"
)

var calmEnv = projectile.Environment{
	Gravity: tuple.Vector(0, -0.1, 0),
	Wind:    tuple.Vector(-0.01, 0, 0),
}

func TestStep(t *testing.T) {
	p := projectile.Projectile{
		Position: tuple.Point(0, 1, 0),
		Velocity: tuple.Vector(1, 1, 0),
	}
	got := calmEnv.Step(p)
	qt.Assert(t, qt.IsTrue(got.Position.Equal(tuple.Point(1, 2, 0))), qt.Commentf("position %v", got.Position))
	qt.Assert(t, qt.IsTrue(got.Velocity.Equal(tuple.Vector(0.99, 0.9, 0))), qt.Commentf("velocity %v", got.Velocity))
	// Position stays a point; velocity stays a vector.
	qt.Assert(t, qt.IsTrue(got.Position.IsPoint()))
	qt.Assert(t, qt.IsTrue(got.Velocity.IsVector()))
}

func TestStepDoesNotMutate(t *testing.T) {
	p := projectile.Projectile{
		Position: tuple.Point(0, 1, 0),
		Velocity: tuple.Vector(1, 1, 0),
	}
	before := p
	calmEnv.Step(p)
	qt.Assert(t, qt.Equals(p, before))
}

func TestFlight(t *testing.T) {
	p := projectile.Projectile{
		Position: tuple.Point(0, 1, 0),
		Velocity: tuple.Vector(1, 1, 0),
	}
	var states []projectile.Projectile
	for s := range calmEnv.Flight(p) {
		states = append(states, s)
	}
	qt.Assert(t, qt.IsTrue(len(states) > 2))
	// Starts from the launch state and ends at or below ground.
	qt.Assert(t, qt.Equals(states[0], p))
	last := states[len(states)-1]
	qt.Assert(t, qt.IsTrue(last.Position.Y <= 0))
	// Every state but the last is airborne.
	for _, s := range states[:len(states)-1] {
		qt.Assert(t, qt.IsTrue(s.Position.Y > 0))
	}
	// Each state follows from stepping its predecessor.
	for i, s := range states[1:] {
		qt.Assert(t, qt.Equals(s, calmEnv.Step(states[i])))
	}
}

func TestFlightGrounded(t *testing.T) {
	p := projectile.Projectile{
		Position: tuple.Point(0, 0, 0),
		Velocity: tuple.Vector(1, 1, 0),
	}
	var n int
	for range calmEnv.Flight(p) {
		n++
	}
	qt.Assert(t, qt.Equals(n, 1))
}

func TestFlightEarlyStop(t *testing.T) {
	p := projectile.Projectile{
		Position: tuple.Point(0, 1, 0),
		Velocity: tuple.Vector(0, 2, 0),
	}
	var n int
	for range calmEnv.Flight(p) {
		n++
		if n == 3 {
			break
		}
	}
	qt.Assert(t, qt.Equals(n, 3))
}
