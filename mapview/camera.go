package mapview

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	vec "github.com/yohamta/donburi/features/math"

	"github.com/feralgiant/duskhollow/config"
)

// Camera holds the world position the viewport centers on, and optionally a
// target it glides toward. Position is only mutated through the methods
// below; the renderer and input picking read it through a shared handle.
type Camera struct {
	position vec.Vec2
	target   *vec.Vec2
	start    vec.Vec2
	tween    *gween.Tween
}

// Position returns the current world position.
func (c *Camera) Position() vec.Vec2 {
	return c.position
}

// Target returns the active target, or nil when the camera is at rest.
func (c *Camera) Target() *vec.Vec2 {
	return c.target
}

// MoveTo repositions the camera absolutely and cancels any active target.
func (c *Camera) MoveTo(position vec.Vec2) {
	c.position = position
	c.clearTarget()
}

// MoveBy shifts the camera by a world-space vector. An active glide shifts
// with it, so the approach continues toward the equally shifted target.
func (c *Camera) MoveBy(v vec.Vec2) {
	c.position = vec.Vec2{X: c.position.X + v.X, Y: c.position.Y + v.Y}
	if c.target != nil {
		c.start = vec.Vec2{X: c.start.X + v.X, Y: c.start.Y + v.Y}
		c.target = &vec.Vec2{X: c.target.X + v.X, Y: c.target.Y + v.Y}
	}
}

// SetTarget begins gliding toward the given position. The glide duration
// scales with distance so the speed stays constant regardless of frame rate.
func (c *Camera) SetTarget(target vec.Vec2) {
	dist := distance(c.position, target)
	if dist <= config.Camera.SnapEpsilon {
		c.position = target
		c.clearTarget()
		return
	}

	c.start = c.position
	c.target = &target
	c.tween = gween.New(0, 1, float32(dist/config.Camera.Speed), ease.OutQuad)
}

// MoveTargetBy shifts the active target, or starts a glide relative to the
// current position when no target is set.
func (c *Camera) MoveTargetBy(v vec.Vec2) {
	if c.target == nil {
		c.SetTarget(vec.Vec2{X: c.position.X + v.X, Y: c.position.Y + v.Y})
		return
	}
	c.SetTarget(vec.Vec2{X: c.target.X + v.X, Y: c.target.Y + v.Y})
}

// Advance moves the camera toward its target for the elapsed time. The
// interpolation never overshoots; once within the snap epsilon the position
// lands exactly on the target and the target clears.
func (c *Camera) Advance(elapsed float64) {
	if c.target == nil {
		return
	}

	t, done := c.tween.Update(float32(elapsed))
	c.position = vec.Vec2{
		X: c.start.X + (c.target.X-c.start.X)*float64(t),
		Y: c.start.Y + (c.target.Y-c.start.Y)*float64(t),
	}

	if done || distance(c.position, *c.target) <= config.Camera.SnapEpsilon {
		c.position = *c.target
		c.clearTarget()
	}
}

func (c *Camera) clearTarget() {
	c.target = nil
	c.tween = nil
}

func distance(a, b vec.Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
