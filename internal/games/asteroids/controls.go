package asteroids

import (
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// controls tracks which held actions are currently down. Presses and
// releases arrive as edges in the input frame.
type controls struct {
	left, right, thrust, fire bool
}

// edges reports which held actions went down this frame.
type edges struct {
	thrustOn, thrustOff, fireOn bool
}

// apply folds the frame into the held state. A press and release of the same
// action within one frame counts as a tap: the press edge is reported and
// the action ends up released.
func (c *controls) apply(in core.InputFrame) edges {
	var e edges
	press := func(a core.Action, held *bool) bool {
		was := *held
		if in.Has(a) {
			*held = true
		}
		pressed := !was && *held
		if in.HasRelease(a) {
			*held = false
		}
		return pressed
	}

	wasThrust := c.thrust
	press(core.ActionTurnLeft, &c.left)
	press(core.ActionTurnRight, &c.right)
	e.thrustOn = press(core.ActionThrust, &c.thrust)
	e.thrustOff = (wasThrust || e.thrustOn) && !c.thrust
	e.fireOn = press(core.ActionFire, &c.fire)
	return e
}

func (c *controls) clear() {
	*c = controls{}
}

// applyControls drives the ship from the held state: turning and thrust are
// continuous, fire shoots once on the press edge and then every tick while
// held, subject to the bullet limit.
func (g *Game) applyControls(in core.InputFrame) {
	e := g.held.apply(in)
	ship := g.world.Arena.Get(g.ship)
	if ship == nil {
		if e.thrustOff {
			g.world.Sound.Stop(core.SoundThrust)
		}
		return
	}

	ship.TurningLeft = g.held.left
	ship.TurningRight = g.held.right
	ship.Thrusting = g.held.thrust
	switch {
	case e.thrustOn && g.held.thrust:
		g.world.Sound.Loop(core.SoundThrust)
	case e.thrustOff:
		g.world.Sound.Stop(core.SoundThrust)
	}

	if e.fireOn || g.held.fire {
		g.world.FireBullet(ship)
	}
	if in.Has(core.ActionMissile) {
		g.world.FireMissile(ship)
	}
}
