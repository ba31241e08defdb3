package sim

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Entity outlines in local coordinates, nose or front pointing along +X.

var shipOutline = core.Shape{core.ClosedPoly(
	core.V(21, 0), core.V(-21, 12), core.V(-14, 10), core.V(-14, -10), core.V(-21, -12),
)}

var shipFlame = core.Shape{core.Polyline(
	core.V(-14, 6), core.V(-26, 0), core.V(-14, -6),
)}

// shipNose is the muzzle point bullets leave from.
var shipNose = core.V(20, 0)

// AsteroidVarieties is the number of distinct asteroid outlines.
const AsteroidVarieties = 4

var asteroidOutlines = [AsteroidVarieties]core.Polygon{
	core.ClosedPoly(
		core.V(0, -30), core.V(28, -15), core.V(20, 20), core.V(4, 8), core.V(-1, 30),
		core.V(-12, 15), core.V(-5, 2), core.V(-25, 7), core.V(-10, -25),
	),
	core.ClosedPoly(
		core.V(10, -28), core.V(7, -16), core.V(30, -9), core.V(30, 9), core.V(10, 13), core.V(5, 30),
		core.V(-8, 28), core.V(-6, 6), core.V(-27, 12), core.V(-30, -11), core.V(-6, -15), core.V(-6, -28),
	),
	core.ClosedPoly(
		core.V(10, -30), core.V(30, 0), core.V(15, 30), core.V(0, 15),
		core.V(-15, 30), core.V(-30, 0), core.V(-10, -30),
	),
	core.ClosedPoly(
		core.V(30, -18), core.V(5, 5), core.V(30, 15), core.V(15, 30), core.V(0, 25),
		core.V(-15, 30), core.V(-25, 8), core.V(-10, -25), core.V(0, -30), core.V(10, -30),
	),
}

// The saucer is three stacked closed sections: hull bottom, hull top, dome.
var alienOutline = core.Shape{
	core.ClosedPoly(core.V(10, 8), core.V(-10, 8), core.V(-20, 0), core.V(20, 0)),
	core.ClosedPoly(core.V(20, 0), core.V(10, -8), core.V(-10, -8), core.V(-20, 0)),
	core.ClosedPoly(core.V(10, -8), core.V(6, -15), core.V(-6, -15), core.V(-10, -8)),
}

var bulletOutline = core.Shape{core.ClosedPoly(
	core.V(0, -1), core.V(-1, 0), core.V(0, 1), core.V(1, 0),
)}

var missileOutline = core.Shape{core.ClosedPoly(
	core.V(25, 0), core.V(18, -7), core.V(0, -7), core.V(0, 7), core.V(18, 7),
)}

var missileFlame = core.Shape{core.Polyline(
	core.V(0, -4), core.V(-10, 0), core.V(0, 4),
)}

var (
	debrisLong  = core.Shape{core.Polyline(core.V(12, 0), core.V(0, 12))}
	debrisShort = core.Shape{core.Polyline(core.V(3, 0), core.V(-3, 0))}
	debrisSpeck = core.Shape{core.ClosedPoly(
		core.V(0, -0.5), core.V(-0.5, 0), core.V(0, 0.5), core.V(0.5, 0),
	)}
)

func scaled(s core.Shape, k float64) core.Shape {
	return s.Transform(k, 0, core.Vec2{})
}
