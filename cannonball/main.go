// Command cannonball fires a projectile and prints its state on
// every step until it hits the ground.
package main

import (
	"fmt"

	"github.com/geomkit/geom/projectile"
	"github.com/geomkit/geom/tuple"
)

func main() {
	p := projectile.Projectile{
		Position: tuple.Point(0, 1, 0),
		Velocity: tuple.Vector(1, 1, 0),
	}
	env := projectile.Environment{
		Gravity: tuple.Vector(0, -0.1, 0),
		Wind:    tuple.Vector(-0.01, 0, 0),
	}
	step := 0
	for s := range env.Flight(p) {
		fmt.Printf("Step %d: position=%v, velocity=%v\n", step, s.Position, s.Velocity)
		step++
	}
}
